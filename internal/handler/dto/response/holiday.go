package response

import (
	"holiday-booker/internal/domain/holiday"
)

type PackageResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Destination    string                 `json:"destination"`
	Duration       string                 `json:"duration"`
	Price          float64                `json:"price"`
	OriginalPrice  *float64               `json:"originalPrice,omitempty"`
	Rating         float64                `json:"rating"`
	Reviews        int                    `json:"reviews"`
	Image          string                 `json:"image"`
	Description    string                 `json:"description"`
	Highlights     []string               `json:"highlights"`
	Inclusions     []string               `json:"inclusions"`
	Exclusions     []string               `json:"exclusions"`
	Itinerary      []ItineraryDayResponse `json:"itinerary"`
	Category       string                 `json:"category"`
	AvailableDates []string               `json:"availableDates"`
}

type ItineraryDayResponse struct {
	Day           int      `json:"day"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Meals         []string `json:"meals"`
	Accommodation *string  `json:"accommodation,omitempty"`
}

func FromPackage(p *holiday.Package) *PackageResponse {
	resp := &PackageResponse{
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
	resp.Itinerary = make([]ItineraryDayResponse, len(p.Itinerary))
	for i, d := range p.Itinerary {
		resp.Itinerary[i] = ItineraryDayResponse{
			Day:           d.Day,
			Title:         d.Title,
			Description:   d.Description,
			Meals:         d.Meals,
			Accommodation: d.Accommodation,
		}
	}
	return resp
}

func FromPackages(pkgs []*holiday.Package) []*PackageResponse {
	out := make([]*PackageResponse, len(pkgs))
	for i, p := range pkgs {
		out[i] = FromPackage(p)
	}
	return out
}
