package converter

import (
	"holiday-booker/internal/domain/booking"
	"holiday-booker/internal/infra/store"
)

func BookingToRecord(b *booking.Booking) store.BookingRecord {
	return store.BookingRecord{
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
		ContactInfo: store.ContactInfoRecord{
			Name:  b.ContactInfo.Name,
			Email: b.ContactInfo.Email,
			Phone: b.ContactInfo.Phone,
		},
	}
}

func BookingFromRecord(rec store.BookingRecord) *booking.Booking {
	return &booking.Booking{
		ID:          rec.ID,
		PackageID:   rec.PackageID,
		UserID:      rec.UserID,
		PackageName: rec.PackageName,
		Destination: rec.Destination,
		Travelers:   rec.Travelers,
		StartDate:   rec.StartDate,
		TotalPrice:  rec.TotalPrice,
		Status:      booking.Status(rec.Status),
		BookingDate: rec.BookingDate,
		ContactInfo: booking.ContactInfo{
			Name:  rec.ContactInfo.Name,
			Email: rec.ContactInfo.Email,
			Phone: rec.ContactInfo.Phone,
		},
	}
}
