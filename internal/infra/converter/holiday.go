package converter

import (
	"holiday-booker/internal/domain/holiday"
	"holiday-booker/internal/infra/store"
)

func PackageToRecord(p *holiday.Package) store.PackageRecord {
	rec := store.PackageRecord{
		ID:             p.ID,
		Name:           p.Name,
		Destination:    p.Destination,
		Duration:       p.Duration,
		Price:          p.Price,
		OriginalPrice:  p.OriginalPrice,
		Rating:         p.Rating,
		Reviews:        p.Reviews,
		Image:          p.Image,
		Description:    p.Description,
		Highlights:     p.Highlights,
		Inclusions:     p.Inclusions,
		Exclusions:     p.Exclusions,
		Category:       p.Category.String(),
		AvailableDates: p.AvailableDates,
	}
	rec.Itinerary = make([]store.ItineraryDayRecord, len(p.Itinerary))
	for i, d := range p.Itinerary {
		rec.Itinerary[i] = store.ItineraryDayRecord{
			Day:           d.Day,
			Title:         d.Title,
			Description:   d.Description,
			Meals:         d.Meals,
			Accommodation: d.Accommodation,
		}
	}
	return rec
}

func PackageFromRecord(rec store.PackageRecord) *holiday.Package {
	p := &holiday.Package{
		ID:             rec.ID,
		Name:           rec.Name,
		Destination:    rec.Destination,
		Duration:       rec.Duration,
		Price:          rec.Price,
		OriginalPrice:  rec.OriginalPrice,
		Rating:         rec.Rating,
		Reviews:        rec.Reviews,
		Image:          rec.Image,
		Description:    rec.Description,
		Highlights:     rec.Highlights,
		Inclusions:     rec.Inclusions,
		Exclusions:     rec.Exclusions,
		Category:       holiday.Category(rec.Category),
		AvailableDates: rec.AvailableDates,
	}
	p.Itinerary = make([]holiday.ItineraryDay, len(rec.Itinerary))
	for i, d := range rec.Itinerary {
		p.Itinerary[i] = holiday.ItineraryDay{
			Day:           d.Day,
			Title:         d.Title,
			Description:   d.Description,
			Meals:         d.Meals,
			Accommodation: d.Accommodation,
		}
	}
	return p
}
