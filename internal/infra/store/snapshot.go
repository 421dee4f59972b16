package store

// Snapshot is the full decoded state of the three collections at one point
// in time. Repositories work on a snapshot for the duration of a single
// operation and never retain it across operations.
//
// The JSON field names are the persisted contract and must round-trip every
// field losslessly, including nested itineraries and absent optional fields.
type Snapshot struct {
	Users    []UserRecord    `json:"users"`
	Packages []PackageRecord `json:"packages"`
	Bookings []BookingRecord `json:"bookings"`
}

type UserRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type PackageRecord struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Destination    string               `json:"destination"`
	Duration       string               `json:"duration"`
	Price          float64              `json:"price"`
	OriginalPrice  *float64             `json:"originalPrice,omitempty"`
	Rating         float64              `json:"rating"`
	Reviews        int                  `json:"reviews"`
	Image          string               `json:"image"`
	Description    string               `json:"description"`
	Highlights     []string             `json:"highlights"`
	Inclusions     []string             `json:"inclusions"`
	Exclusions     []string             `json:"exclusions"`
	Itinerary      []ItineraryDayRecord `json:"itinerary"`
	Category       string               `json:"category"`
	AvailableDates []string             `json:"availableDates"`
}

type ItineraryDayRecord struct {
	Day           int      `json:"day"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Meals         []string `json:"meals"`
	Accommodation *string  `json:"accommodation,omitempty"`
}

type BookingRecord struct {
	ID          string            `json:"id"`
	PackageID   string            `json:"packageId"`
	UserID      string            `json:"userId"`
	PackageName string            `json:"packageName"`
	Destination string            `json:"destination"`
	Travelers   int               `json:"travelers"`
	StartDate   string            `json:"startDate"`
	TotalPrice  float64           `json:"totalPrice"`
	Status      string            `json:"status"`
	BookingDate string            `json:"bookingDate"`
	ContactInfo ContactInfoRecord `json:"contactInfo"`
}

type ContactInfoRecord struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func NewEmptySnapshot() *Snapshot {
	return &Snapshot{
		Users:    []UserRecord{},
		Packages: []PackageRecord{},
		Bookings: []BookingRecord{},
	}
}

// Clone returns a deep copy. The memory store hands out clones so callers
// can never mutate shared state behind the serialization point's back.
// Nil slices must stay nil so absent optional fields round-trip unchanged
// through the memory store, exactly as they do through the file store.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{}
	if s.Users != nil {
		out.Users = make([]UserRecord, len(s.Users))
		copy(out.Users, s.Users)
	}
	if s.Bookings != nil {
		out.Bookings = make([]BookingRecord, len(s.Bookings))
		copy(out.Bookings, s.Bookings)
	}
	if s.Packages != nil {
		out.Packages = make([]PackageRecord, len(s.Packages))
		for i, p := range s.Packages {
			out.Packages[i] = p.clone()
		}
	}
	return out
}

func (p PackageRecord) clone() PackageRecord {
	out := p
	out.Highlights = append([]string(nil), p.Highlights...)
	out.Inclusions = append([]string(nil), p.Inclusions...)
	out.Exclusions = append([]string(nil), p.Exclusions...)
	out.AvailableDates = append([]string(nil), p.AvailableDates...)
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		out.OriginalPrice = &v
	}
	if p.Itinerary != nil {
		out.Itinerary = make([]ItineraryDayRecord, len(p.Itinerary))
		for i, d := range p.Itinerary {
			day := d
			day.Meals = append([]string(nil), d.Meals...)
			if d.Accommodation != nil {
				a := *d.Accommodation
				day.Accommodation = &a
			}
			out.Itinerary[i] = day
		}
	}
	return out
}
