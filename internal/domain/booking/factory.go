package booking

import (
	"strings"
	"time"

	"holiday-booker/internal/domain/holiday"
	"holiday-booker/internal/pkg/clock"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// CreateBooking builds a new confirmed booking against a catalog package.
// The total price is always recomputed from the catalog price; any
// client-supplied total is ignored. Creation is treated as synchronous
// confirmation since there is no payment-authorization step; the pending
// status is reserved for when one is added.
func (f *Factory) CreateBooking(
	pkg *holiday.Package,
	userID string,
	travelers int,
	startDate string,
	contact ContactInfo,
) (*Booking, error) {
	if travelers < 1 {
		return nil, ErrInvalidTravelers
	}
	if _, err := time.Parse(DateLayout, startDate); err != nil {
		return nil, ErrInvalidStartDate
	}
	if strings.TrimSpace(contact.Name) == "" || strings.TrimSpace(contact.Email) == "" {
		return nil, ErrMissingContact
	}

	return &Booking{
		ID:          uuid.NewString(),
		PackageID:   pkg.ID,
		UserID:      userID,
		PackageName: pkg.Name,
		Destination: pkg.Destination,
		Travelers:   travelers,
		StartDate:   startDate,
		TotalPrice:  pkg.Price * float64(travelers),
		Status:      StatusConfirmed,
		BookingDate: f.Clock.Now().Format(DateLayout),
		ContactInfo: contact,
	}, nil
}
