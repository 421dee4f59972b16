package converter

import (
	"holiday-booker/internal/domain/user"
	"holiday-booker/internal/infra/store"
)

func UserToRecord(u *user.User) store.UserRecord {
	return store.UserRecord{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Password: u.PasswordHash,
		Role:     u.Role.String(),
	}
}

func UserFromRecord(rec store.UserRecord) *user.User {
	return &user.User{
		ID:           rec.ID,
		Name:         rec.Name,
		Email:        rec.Email,
		Phone:        rec.Phone,
		PasswordHash: rec.Password,
		Role:         user.Role(rec.Role),
	}
}
