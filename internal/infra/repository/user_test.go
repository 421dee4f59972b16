//go:build unit

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"holiday-booker/internal/domain/user"
	"holiday-booker/internal/infra/repository"
	"holiday-booker/internal/infra/store"
	"holiday-booker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T, emailStr string) *user.User {
	t.Helper()
	email, err := user.NewEmail(emailStr)
	require.NoError(t, err)
	u, err := user.NewUser("Jane Cooper", email, "+44 20 7946 0002", "$2a$10$hash", user.RoleUser)
	require.NoError(t, err)
	return u
}

func TestUserRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(store.NewMemoryStore())

	t.Run("create then find round-trips", func(t *testing.T) {
		u := newUser(t, "jane@example.com")
		require.NoError(t, repo.Create(ctx, u))

		found, err := repo.FindByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, found.ID)
		assert.Equal(t, u.PasswordHash, found.PasswordHash)
		assert.Equal(t, user.RoleUser, found.Role)

		byID, err := repo.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u.Email, byID.Email)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		err := repo.Create(ctx, newUser(t, "jane@example.com"))
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
	})

	t.Run("email match is exact", func(t *testing.T) {
		// differs only by case, treated as a distinct address
		require.NoError(t, repo.Create(ctx, newUser(t, "Jane@example.com")))

		_, err := repo.FindByEmail(ctx, "JANE@EXAMPLE.COM")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestUserRepositoryFindMissing(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(store.NewMemoryStore())

	_, err := repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	_, err = repo.FindByID(ctx, "missing-id")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

// Two racing registrations for one email: exactly one may win.
func TestUserRepositoryConcurrentRegistration(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	repo := repository.NewUserRepository(s)

	const racers = 10
	errCh := make(chan error, racers)

	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errCh <- repo.Create(ctx, newUser(t, "contested@example.com"))
		}(i)
	}
	wg.Wait()
	close(errCh)

	var created, rejected int
	for err := range errCh {
		switch {
		case err == nil:
			created++
		case errors.Is(err, errs.ErrDuplicateEmail):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, racers-1, rejected)

	snap, err := s.ReadSnapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Users, 1)
}

// Distinct emails registered concurrently must all land with unique ids.
func TestUserRepositoryConcurrentDistinctEmails(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	repo := repository.NewUserRepository(s)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, repo.Create(ctx, newUser(t, fmt.Sprintf("user%d@example.com", i))))
		}(i)
	}
	wg.Wait()

	snap, err := s.ReadSnapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Users, n)

	ids := map[string]bool{}
	for _, rec := range snap.Users {
		assert.False(t, ids[rec.ID], "duplicate id %s", rec.ID)
		ids[rec.ID] = true
	}
}
