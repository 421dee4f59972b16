package repository

import (
	"context"

	"holiday-booker/internal/domain/user"
	"holiday-booker/internal/infra/converter"
	"holiday-booker/internal/infra/store"
	"holiday-booker/internal/pkg/errs"
)

type UserRepository struct {
	store store.Store
}

func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{store: s}
}

// Create persists a new user. The uniqueness check and the append happen
// inside one store.Update, so two concurrent registrations with the same
// email can never both pass the check.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	return r.store.Update(ctx, func(snap *store.Snapshot) error {
		for _, rec := range snap.Users {
			if rec.Email == u.Email {
				return errs.ErrDuplicateEmail
			}
		}
		snap.Users = append(snap.Users, converter.UserToRecord(u))
		return nil
	})
}

// FindByEmail does an exact, case-sensitive match against the stored email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	snap, err := r.store.ReadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range snap.Users {
		if rec.Email == email {
			return converter.UserFromRecord(rec), nil
		}
	}
	return nil, errs.ErrUserNotFound
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	snap, err := r.store.ReadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range snap.Users {
		if rec.ID == id {
			return converter.UserFromRecord(rec), nil
		}
	}
	return nil, errs.ErrUserNotFound
}
