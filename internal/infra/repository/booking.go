package repository

import (
	"context"
	"errors"

	"holiday-booker/internal/domain/booking"
	"holiday-booker/internal/infra/converter"
	"holiday-booker/internal/infra/store"
	"holiday-booker/internal/pkg/errs"
)

// errNoChange aborts an Update whose outcome is already persisted, so
// idempotent cancels do not rewrite the snapshot.
var errNoChange = errors.New("no change")

type BookingRepository struct {
	store store.Store
}

func NewBookingRepository(s store.Store) *BookingRepository {
	return &BookingRepository{store: s}
}

// Create appends the booking inside one serialized read-modify-write.
// Referential integrity is checked at write time: the user and package must
// exist in the same snapshot the booking lands in.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	return r.store.Update(ctx, func(snap *store.Snapshot) error {
		if !userExists(snap, b.UserID) {
			return errs.ErrUserNotFound
		}
		if !packageExists(snap, b.PackageID) {
			return errs.ErrPackageNotFound
		}
		snap.Bookings = append(snap.Bookings, converter.BookingToRecord(b))
		return nil
	})
}

// ListAll returns every booking in storage (insertion) order.
func (r *BookingRepository) ListAll(ctx context.Context) ([]*booking.Booking, error) {
	snap, err := r.store.ReadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*booking.Booking, len(snap.Bookings))
	for i, rec := range snap.Bookings {
		out[i] = converter.BookingFromRecord(rec)
	}
	return out, nil
}

// ListForUser filters a single snapshot read, so the result reflects one
// consistency point.
func (r *BookingRepository) ListForUser(ctx context.Context, userID string) ([]*booking.Booking, error) {
	snap, err := r.store.ReadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := []*booking.Booking{}
	for _, rec := range snap.Bookings {
		if rec.UserID == userID {
			out = append(out, converter.BookingFromRecord(rec))
		}
	}
	return out, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*booking.Booking, error) {
	snap, err := r.store.ReadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range snap.Bookings {
		if rec.ID == id {
			return converter.BookingFromRecord(rec), nil
		}
	}
	return nil, errs.ErrBookingNotFound
}

// Cancel marks the booking cancelled. A missing id is a normal outcome
// reported as false; cancelling twice is idempotent and reports true both
// times without rewriting the snapshot.
func (r *BookingRepository) Cancel(ctx context.Context, id string) (bool, error) {
	err := r.store.Update(ctx, func(snap *store.Snapshot) error {
		for i := range snap.Bookings {
			if snap.Bookings[i].ID != id {
				continue
			}
			// the entity owns the status machine
			b := converter.BookingFromRecord(snap.Bookings[i])
			if !b.Cancel() {
				return errNoChange
			}
			snap.Bookings[i] = converter.BookingToRecord(b)
			return nil
		}
		return errs.ErrBookingNotFound
	})

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errNoChange):
		return true, nil
	case errors.Is(err, errs.ErrBookingNotFound):
		return false, nil
	default:
		return false, err
	}
}

func userExists(snap *store.Snapshot, id string) bool {
	for _, rec := range snap.Users {
		if rec.ID == id {
			return true
		}
	}
	return false
}

func packageExists(snap *store.Snapshot, id string) bool {
	for _, rec := range snap.Packages {
		if rec.ID == id {
			return true
		}
	}
	return false
}
