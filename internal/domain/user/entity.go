package user

import (
	"strings"

	"github.com/google/uuid"
)

// User identity record. PasswordHash never leaves the persistence and
// usecase layers; API responses are built from sanitized views.
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         Role
}

func NewUser(name string, email Email, phone, passwordHash string, role Role) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email.Value(),
		Phone:        strings.TrimSpace(phone),
		PasswordHash: passwordHash,
		Role:         role,
	}, nil
}
