//go:build unit

package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"holiday-booker/internal/domain/user"
	"holiday-booker/internal/pkg/errs"
	"holiday-booker/internal/pkg/jwt"
	"holiday-booker/internal/pkg/password"
	"holiday-booker/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserRepo is an in-memory UserRepository with optional forced errors.
type stubUserRepo struct {
	users     map[string]*user.User // by email
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*user.User{}}
}

func (r *stubUserRepo) Create(_ context.Context, u *user.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.users[u.Email]; ok {
		return errs.ErrDuplicateEmail
	}
	r.users[u.Email] = u
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, errs.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errs.ErrUserNotFound
}

func newAuthUseCase(repo usecase.UserRepository) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(repo, jwt.NewService("test-secret", time.Hour))
}

func registerParams() usecase.RegisterParams {
	return usecase.RegisterParams{
		Name:     "Jane Cooper",
		Email:    "jane@example.com",
		Phone:    "+44 20 7946 0002",
		Password: "password123",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns a sanitized view", func(t *testing.T) {
		repo := newStubUserRepo()
		uc := newAuthUseCase(repo)

		view, err := uc.Register(ctx, registerParams())
		require.NoError(t, err)
		assert.NotEmpty(t, view.ID)
		assert.Equal(t, "jane@example.com", view.Email)
		assert.Equal(t, "user", view.Role)

		// the view must never expose credentials, even via JSON
		data, err := json.Marshal(view)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "password")

		// hash, not plaintext, is persisted
		stored := repo.users["jane@example.com"]
		assert.NotEqual(t, "password123", stored.PasswordHash)
		assert.True(t, password.Verify(stored.PasswordHash, "password123"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc := newAuthUseCase(newStubUserRepo())
		_, err := uc.Register(ctx, registerParams())
		require.NoError(t, err)
		_, err = uc.Register(ctx, registerParams())
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
	})

	t.Run("validation failures", func(t *testing.T) {
		uc := newAuthUseCase(newStubUserRepo())

		bad := registerParams()
		bad.Email = "not-an-email"
		_, err := uc.Register(ctx, bad)
		assert.ErrorIs(t, err, user.ErrInvalidEmail)

		bad = registerParams()
		bad.Password = "short"
		_, err = uc.Register(ctx, bad)
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

		bad = registerParams()
		bad.Name = "  "
		_, err = uc.Register(ctx, bad)
		assert.ErrorIs(t, err, user.ErrEmptyName)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := newStubUserRepo()
	uc := newAuthUseCase(repo)
	_, err := uc.Register(ctx, registerParams())
	require.NoError(t, err)

	t.Run("valid credentials issue a verifiable token", func(t *testing.T) {
		token, view, err := uc.Login(ctx, "jane@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "jane@example.com", view.Email)

		userID, role, err := uc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, view.ID, userID)
		assert.Equal(t, user.RoleUser, role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := uc.Login(ctx, "jane@example.com", "wrong-password")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to the same error as a wrong password", func(t *testing.T) {
		_, _, err := uc.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()
	repo := newStubUserRepo()
	uc := newAuthUseCase(repo)
	view, err := uc.Register(ctx, registerParams())
	require.NoError(t, err)

	got, err := uc.GetCurrentUser(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, view.Email, got.Email)

	_, err = uc.GetCurrentUser(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	uc := newAuthUseCase(newStubUserRepo())
	_, _, err := uc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
