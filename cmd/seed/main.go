// Seeds the snapshot store with demo users, a package catalog and a
// couple of example bookings.
// Re-running is safe: existing rows are left untouched.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"holiday-booker/internal/domain/holiday"
	"holiday-booker/internal/infra/db"
	"holiday-booker/internal/infra/repository"
	"holiday-booker/internal/infra/store"
	"holiday-booker/internal/pkg/config"
	"holiday-booker/internal/pkg/password"

	"github.com/joho/godotenv"
)

type demoUser struct {
	id    string
	name  string
	email string
	phone string
	role  string
}

var demoUsers = []demoUser{
	{id: "c5f1c0a2-46f5-4f2a-9c62-0d8f4d1f3e01", name: "Admin User", email: "admin@example.com", phone: "+44 20 7946 0001", role: "admin"},
	{id: "7a9e2b14-3c14-49a5-8a14-6f2f9d6b1e02", name: "Jane Cooper", email: "jane@example.com", phone: "+44 20 7946 0002", role: "user"},
	{id: "1d3b8c76-95ab-4d0e-b1c4-2e7a5f8c9e03", name: "Tom Harris", email: "tom@example.com", phone: "+44 20 7946 0003", role: "user"},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	s, cleanup, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx := context.Background()

	if err := seedUsers(ctx, s); err != nil {
		slog.Error("failed to seed users", "error", err)
		os.Exit(1)
	}

	catalog := repository.NewCatalogRepository(s)
	if err := catalog.Seed(ctx, demoPackages()); err != nil {
		slog.Error("failed to seed packages", "error", err)
		os.Exit(1)
	}

	if err := seedBookings(ctx, s); err != nil {
		slog.Error("failed to seed bookings", "error", err)
		os.Exit(1)
	}

	slog.Info("database seeded successfully")
}

func openStore(cfg config.Config) (store.Store, func(), error) {
	switch cfg.Store.Driver {
	case "file":
		return store.NewFileStore(cfg.Store.Path), func() {}, nil
	case "memory":
		return store.NewMemoryStore(), func() {}, nil
	case "postgres":
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		return store.NewPGStore(pool), cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
}

func seedUsers(ctx context.Context, s store.Store) error {
	// Every demo account uses the same password
	hash, err := password.Hash("password")
	if err != nil {
		return err
	}

	return s.Update(ctx, func(snap *store.Snapshot) error {
		existing := make(map[string]bool, len(snap.Users))
		for _, u := range snap.Users {
			existing[u.Email] = true
		}
		for _, du := range demoUsers {
			if existing[du.email] {
				continue
			}
			snap.Users = append(snap.Users, store.UserRecord{
				ID:       du.id,
				Name:     du.name,
				Email:    du.email,
				Phone:    du.phone,
				Password: hash,
				Role:     du.role,
			})
		}
		return nil
	})
}

func seedBookings(ctx context.Context, s store.Store) error {
	demo := []store.BookingRecord{
		{
			ID:          "b7e4d9a1-20c3-4f6b-8d15-4a9e7c2f1e01",
			PackageID:   "pkg-bali-escape",
			UserID:      "7a9e2b14-3c14-49a5-8a14-6f2f9d6b1e02",
			PackageName: "Bali Tropical Escape",
			Destination: "Bali, Indonesia",
			Travelers:   2,
			StartDate:   "2026-10-05",
			TotalPrice:  2598,
			Status:      "confirmed",
			BookingDate: "2026-08-12",
			ContactInfo: store.ContactInfoRecord{Name: "Jane Cooper", Email: "jane@example.com", Phone: "+44 20 7946 0002"},
		},
		{
			ID:          "f2c8a3b5-61d7-4e09-9b32-8c1d5e6f7a02",
			PackageID:   "pkg-rome-classics",
			UserID:      "1d3b8c76-95ab-4d0e-b1c4-2e7a5f8c9e03",
			PackageName: "Rome City Classics",
			Destination: "Rome, Italy",
			Travelers:   1,
			StartDate:   "2026-09-20",
			TotalPrice:  899,
			Status:      "cancelled",
			BookingDate: "2026-07-30",
			ContactInfo: store.ContactInfoRecord{Name: "Tom Harris", Email: "tom@example.com", Phone: "+44 20 7946 0003"},
		},
	}

	return s.Update(ctx, func(snap *store.Snapshot) error {
		existing := make(map[string]bool, len(snap.Bookings))
		for _, b := range snap.Bookings {
			existing[b.ID] = true
		}
		for _, b := range demo {
			if existing[b.ID] {
				continue
			}
			snap.Bookings = append(snap.Bookings, b)
		}
		return nil
	})
}

func demoPackages() []*holiday.Package {
	strPtr := func(s string) *string { return &s }
	f64Ptr := func(f float64) *float64 { return &f }

	return []*holiday.Package{
		{
			ID:            "pkg-bali-escape",
			Name:          "Bali Tropical Escape",
			Destination:   "Bali, Indonesia",
			Duration:      "7 days",
			Price:         1299,
			OriginalPrice: f64Ptr(1599),
			Rating:        4.8,
			Reviews:       214,
			Image:         "/images/bali.jpg",
			Description:   "Seven days across Ubud and Seminyak with temple visits, rice terrace walks and beach time.",
			Highlights:    []string{"Ubud rice terraces", "Uluwatu sunset temple", "Seminyak beach club"},
			Inclusions:    []string{"Flights", "4-star accommodation", "Daily breakfast", "Airport transfers"},
			Exclusions:    []string{"Travel insurance", "Lunches and dinners"},
			Itinerary: []holiday.ItineraryDay{
				{Day: 1, Title: "Arrival in Denpasar", Description: "Transfer to Seminyak and welcome dinner.", Meals: []string{"Dinner"}, Accommodation: strPtr("The Haven Seminyak")},
				{Day: 2, Title: "Uluwatu Temple", Description: "Clifftop temple visit and kecak dance at sunset.", Meals: []string{"Breakfast"}, Accommodation: strPtr("The Haven Seminyak")},
				{Day: 3, Title: "Transfer to Ubud", Description: "Tegallalang rice terraces en route.", Meals: []string{"Breakfast", "Lunch"}, Accommodation: strPtr("Ubud Village Resort")},
			},
			Category:       holiday.CategoryBeach,
			AvailableDates: []string{"2026-10-05", "2026-11-02", "2026-12-07"},
		},
		{
			ID:            "pkg-swiss-alps",
			Name:          "Swiss Alps Adventure",
			Destination:   "Interlaken, Switzerland",
			Duration:      "5 days",
			Price:         1899,
			OriginalPrice: nil,
			Rating:        4.9,
			Reviews:       167,
			Image:         "/images/alps.jpg",
			Description:   "Five days of alpine hiking, the Jungfraujoch railway and lake cruises from Interlaken.",
			Highlights:    []string{"Jungfraujoch - Top of Europe", "Lake Brienz cruise", "Grindelwald hiking"},
			Inclusions:    []string{"Hotel with breakfast", "Rail passes", "Guided hikes"},
			Exclusions:    []string{"Flights", "Ski equipment"},
			Itinerary: []holiday.ItineraryDay{
				{Day: 1, Title: "Arrival in Interlaken", Description: "Check in and orientation walk along the Höheweg.", Meals: []string{"Dinner"}, Accommodation: strPtr("Hotel Interlaken")},
				{Day: 2, Title: "Jungfraujoch", Description: "Cogwheel railway to 3,454m with glacier views.", Meals: []string{"Breakfast"}, Accommodation: strPtr("Hotel Interlaken")},
			},
			Category:       holiday.CategoryAdventure,
			AvailableDates: []string{"2026-09-14", "2026-10-12"},
		},
		{
			ID:            "pkg-rome-classics",
			Name:          "Rome City Classics",
			Destination:   "Rome, Italy",
			Duration:      "4 days",
			Price:         899,
			OriginalPrice: f64Ptr(1099),
			Rating:        4.6,
			Reviews:       342,
			Image:         "/images/rome.jpg",
			Description:   "A long weekend covering the Colosseum, Vatican museums and the historic centre on foot.",
			Highlights:    []string{"Skip-the-line Colosseum", "Vatican and Sistine Chapel", "Trastevere food walk"},
			Inclusions:    []string{"Central hotel", "Breakfast", "Two guided tours"},
			Exclusions:    []string{"Flights", "City tax"},
			Itinerary: []holiday.ItineraryDay{
				{Day: 1, Title: "Arrival", Description: "Evening stroll to the Trevi Fountain and Pantheon.", Meals: nil, Accommodation: strPtr("Hotel Artemide")},
				{Day: 2, Title: "Ancient Rome", Description: "Colosseum, Forum and Palatine Hill with a guide.", Meals: []string{"Breakfast"}, Accommodation: strPtr("Hotel Artemide")},
			},
			Category:       holiday.CategoryCultural,
			AvailableDates: []string{"2026-09-20", "2026-10-18", "2026-11-15"},
		},
		{
			ID:          "pkg-kenya-safari",
			Name:        "Masai Mara Safari",
			Destination: "Masai Mara, Kenya",
			Duration:    "6 days",
			Price:       2750,
			Rating:      4.9,
			Reviews:     98,
			Image:       "/images/mara.jpg",
			Description: "Game drives across the Mara with a chance to see the big five, staying in a tented camp.",
			Highlights:  []string{"Big five game drives", "Maasai village visit", "Sunrise balloon option"},
			Inclusions:  []string{"All meals", "Park fees", "4x4 game drives"},
			Exclusions:  []string{"International flights", "Visas", "Balloon flight"},
			Itinerary: []holiday.ItineraryDay{
				{Day: 1, Title: "Nairobi to the Mara", Description: "Road transfer with a stop at the Great Rift Valley viewpoint.", Meals: []string{"Lunch", "Dinner"}, Accommodation: strPtr("Mara Tented Camp")},
			},
			Category:       holiday.CategoryWildlife,
			AvailableDates: []string{"2026-09-08", "2026-10-06"},
		},
		{
			ID:          "pkg-maldives-luxury",
			Name:        "Maldives Overwater Retreat",
			Destination: "South Ari Atoll, Maldives",
			Duration:    "5 days",
			Price:       3499,
			Rating:      4.7,
			Reviews:     76,
			Image:       "/images/maldives.jpg",
			Description: "Overwater villa with house reef snorkelling, spa credit and sunset dolphin cruise.",
			Highlights:  []string{"Overwater villa", "House reef snorkelling", "Sunset dolphin cruise"},
			Inclusions:  []string{"Seaplane transfers", "Half board", "Spa credit"},
			Exclusions:  []string{"International flights", "Diving"},
			Itinerary: []holiday.ItineraryDay{
				{Day: 1, Title: "Seaplane arrival", Description: "Transfer to the resort and villa check-in.", Meals: []string{"Dinner"}, Accommodation: strPtr("Reef Villa Resort")},
			},
			Category:       holiday.CategoryHoneymoon,
			AvailableDates: []string{"2026-11-09", "2026-12-14"},
		},
	}
}
