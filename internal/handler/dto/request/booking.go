package request

import (
	"holiday-booker/internal/domain/booking"
	"holiday-booker/internal/usecase"
)

type CreateBookingRequest struct {
	PackageID   string             `json:"packageId" binding:"required"`
	Travelers   int                `json:"travelers" binding:"required,min=1"`
	StartDate   string             `json:"startDate" binding:"required"`
	ContactInfo ContactInfoRequest `json:"contactInfo" binding:"required"`

	// Accepted for compatibility with older clients but never trusted:
	// the server recomputes the total from the catalog price.
	TotalPrice float64 `json:"totalPrice"`
}

type ContactInfoRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

func (r CreateBookingRequest) ToParams() usecase.CreateBookingParams {
	return usecase.CreateBookingParams{
		PackageID: r.PackageID,
		Travelers: r.Travelers,
		StartDate: r.StartDate,
		ContactInfo: booking.ContactInfo{
			Name:  r.ContactInfo.Name,
			Email: r.ContactInfo.Email,
			Phone: r.ContactInfo.Phone,
		},
	}
}
