package holiday

// Package is a catalog item. The catalog is read-mostly reference data:
// the booking flow only reads it to validate the package id and copy the
// denormalized name/destination/price into the booking.
//
// Price is a plain number in the catalog's currency; no minor-unit
// conversion is applied anywhere.
type Package struct {
	ID             string
	Name           string
	Destination    string
	Duration       string
	Price          float64
	OriginalPrice  *float64
	Rating         float64
	Reviews        int
	Image          string
	Description    string
	Highlights     []string
	Inclusions     []string
	Exclusions     []string
	Itinerary      []ItineraryDay
	Category       Category
	AvailableDates []string
}

// ItineraryDay is one day of a package itinerary. Dates across the domain
// are date-only strings in 2006-01-02 form.
type ItineraryDay struct {
	Day           int
	Title         string
	Description   string
	Meals         []string
	Accommodation *string
}

// SearchFilters narrows catalog listings. Zero values mean "no filter".
type SearchFilters struct {
	Destination string
	Category    string
	MinPrice    float64
	MaxPrice    float64
}

func (f SearchFilters) Matches(p *Package) bool {
	if f.Destination != "" && !containsFold(p.Destination, f.Destination) {
		return false
	}
	if f.Category != "" && p.Category.String() != f.Category {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	return true
}
