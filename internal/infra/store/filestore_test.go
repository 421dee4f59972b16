//go:build unit

package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"holiday-booker/internal/infra/store"
	"holiday-booker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreInitialization(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "holidaydb.json")

	s := store.NewFileStore(path)
	_, err := s.ReadSnapshot(ctx)
	require.NoError(t, err)

	// first read materializes the file with empty collections
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"users":[],"packages":[],"bookings":[]}`, string(data))
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "holidaydb.json")

	first := store.NewFileStore(path)
	require.NoError(t, first.Update(ctx, func(snap *store.Snapshot) error {
		snap.Users = append(snap.Users, store.UserRecord{ID: "u1", Email: "jane@example.com"})
		return nil
	}))

	second := store.NewFileStore(path)
	snap, err := second.ReadSnapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Users, 1)
	assert.Equal(t, "jane@example.com", snap.Users[0].Email)
}

func TestFileStoreCorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "holidaydb.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"users": [`), 0o600))

	s := store.NewFileStore(path)

	_, err := s.ReadSnapshot(ctx)
	assert.ErrorIs(t, err, errs.ErrCorruptState)

	// an update against corrupt state must fail without clobbering the file
	err = s.Update(ctx, func(snap *store.Snapshot) error { return nil })
	assert.ErrorIs(t, err, errs.ErrCorruptState)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"users": [`, string(data))
}

func TestFileStoreCancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidaydb.json")
	s := store.NewFileStore(path)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ReadSnapshot(ctx)
	assert.ErrorIs(t, err, errs.ErrStorageUnavailable)

	err = s.Update(ctx, func(*store.Snapshot) error { return nil })
	assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := store.NewFileStore(filepath.Join(dir, "holidaydb.json"))

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Update(ctx, func(snap *store.Snapshot) error {
			snap.Bookings = append(snap.Bookings, store.BookingRecord{ID: "b"})
			return nil
		}))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "holidaydb.json", entries[0].Name())
}
