package response

import (
	"holiday-booker/internal/domain/booking"
)

// BookingResponse uses the same field names as the persisted records so
// existing clients keep working unchanged.
type BookingResponse struct {
	ID          string              `json:"id"`
	PackageID   string              `json:"packageId"`
	UserID      string              `json:"userId"`
	PackageName string              `json:"packageName"`
	Destination string              `json:"destination"`
	Travelers   int                 `json:"travelers"`
	StartDate   string              `json:"startDate"`
	TotalPrice  float64             `json:"totalPrice"`
	Status      string              `json:"status"`
	BookingDate string              `json:"bookingDate"`
	ContactInfo ContactInfoResponse `json:"contactInfo"`
}

type ContactInfoResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CancelBookingResponse struct {
	Message string `json:"message"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		PackageID:   b.PackageID,
		UserID:      b.UserID,
		PackageName: b.PackageName,
		Destination: b.Destination,
		Travelers:   b.Travelers,
		StartDate:   b.StartDate,
		TotalPrice:  b.TotalPrice,
		Status:      b.Status.String(),
		BookingDate: b.BookingDate,
		ContactInfo: ContactInfoResponse{
			Name:  b.ContactInfo.Name,
			Email: b.ContactInfo.Email,
			Phone: b.ContactInfo.Phone,
		},
	}
}

func FromBookings(bs []*booking.Booking) []*BookingResponse {
	out := make([]*BookingResponse, len(bs))
	for i, b := range bs {
		out[i] = FromBooking(b)
	}
	return out
}
