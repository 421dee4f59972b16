package booking

import "errors"

var (
	ErrInvalidTravelers = errors.New("travelers must be at least 1")
	ErrInvalidStartDate = errors.New("start date must be a valid date (YYYY-MM-DD)")
	ErrMissingContact   = errors.New("contact name and email are required")
)

// Booking is the transactional record of one purchase. PackageName,
// Destination and TotalPrice are copied from the catalog at creation time
// and intentionally not kept in sync with later catalog edits.
type Booking struct {
	ID          string
	PackageID   string
	UserID      string
	PackageName string
	Destination string
	Travelers   int
	StartDate   string
	TotalPrice  float64
	Status      Status
	BookingDate string
	ContactInfo ContactInfo
}

type ContactInfo struct {
	Name  string
	Email string
	Phone string
}

// Cancel moves the booking into the terminal cancelled state. Cancelling an
// already-cancelled booking is a no-op; callers treat it as success.
func (b *Booking) Cancel() bool {
	if !b.Status.CanTransitionTo(StatusCancelled) {
		return false
	}
	b.Status = StatusCancelled
	return true
}
