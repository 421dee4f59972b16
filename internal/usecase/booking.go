package usecase

import (
	"context"
	"log/slog"

	"holiday-booker/internal/domain/booking"
	"holiday-booker/internal/pkg/errs"
)

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id string) (*booking.Booking, error)
	ListAll(ctx context.Context) ([]*booking.Booking, error)
	ListForUser(ctx context.Context, userID string) ([]*booking.Booking, error)
	Cancel(ctx context.Context, id string) (bool, error)
}

// EventPublisher is optional. Publish failures are logged and never fail
// the booking operation.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, b *booking.Booking) error
}

type CreateBookingParams struct {
	PackageID   string
	Travelers   int
	StartDate   string
	ContactInfo booking.ContactInfo
}

type BookingUseCase interface {
	Create(ctx context.Context, userID string, params CreateBookingParams) (*booking.Booking, error)
	Cancel(ctx context.Context, bookingID string) (bool, error)
	ListAll(ctx context.Context) ([]*booking.Booking, error)
	ListForUser(ctx context.Context, userID string) ([]*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	catalog     CatalogUseCase
	factory     *booking.Factory
	producer    EventPublisher
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	catalog CatalogUseCase,
	factory *booking.Factory,
	producer EventPublisher,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		factory:     factory,
		producer:    producer,
	}
}

// Create books a package for the authenticated user. The total price is
// recomputed from the catalog; a client-supplied total is never trusted.
func (b *bookingUseCaseImpl) Create(ctx context.Context, userID string, params CreateBookingParams) (*booking.Booking, error) {
	pkg, err := b.catalog.GetPackage(ctx, params.PackageID)
	if err != nil {
		return nil, err
	}

	entity, err := b.factory.CreateBooking(pkg, userID, params.Travelers, params.StartDate, params.ContactInfo)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidBooking)
	}

	if err := b.bookingRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	b.publish(ctx, "booking_created", entity)
	return entity, nil
}

func (b *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID string) (bool, error) {
	cancelled, err := b.bookingRepo.Cancel(ctx, bookingID)
	if err != nil || !cancelled {
		return cancelled, err
	}

	if entity, findErr := b.bookingRepo.FindByID(ctx, bookingID); findErr == nil {
		b.publish(ctx, "booking_cancelled", entity)
	}
	return true, nil
}

func (b *bookingUseCaseImpl) ListAll(ctx context.Context) ([]*booking.Booking, error) {
	return b.bookingRepo.ListAll(ctx)
}

func (b *bookingUseCaseImpl) ListForUser(ctx context.Context, userID string) ([]*booking.Booking, error) {
	return b.bookingRepo.ListForUser(ctx, userID)
}

func (b *bookingUseCaseImpl) publish(ctx context.Context, eventType string, entity *booking.Booking) {
	if b.producer == nil {
		return
	}
	if err := b.producer.Publish(ctx, eventType, entity); err != nil {
		slog.Warn("failed to publish booking event",
			"type", eventType,
			"booking_id", entity.ID,
			"error", err.Error())
	}
}
