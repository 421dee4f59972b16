//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"holiday-booker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Run("mark is visible to errors.Is", func(t *testing.T) {
		cause := errors.New("disk full")
		err := errs.Mark(cause, errs.ErrStorageUnavailable)

		assert.True(t, errors.Is(err, errs.ErrStorageUnavailable))
	})

	t.Run("cause stays visible through the mark", func(t *testing.T) {
		cause := errors.New("disk full")
		err := errs.Mark(cause, errs.ErrStorageUnavailable)

		assert.True(t, errors.Is(err, cause))
		assert.Equal(t, "disk full", err.Error())
	})

	t.Run("mark survives wrapping", func(t *testing.T) {
		cause := errs.Wrap(errors.New("unexpected EOF"), "decode snapshot")
		err := errs.Mark(cause, errs.ErrCorruptState)

		assert.True(t, errors.Is(err, errs.ErrCorruptState))
		assert.False(t, errors.Is(err, errs.ErrStorageUnavailable))
	})

	t.Run("nil cause collapses to the mark", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrInvalidBooking)
		require.ErrorIs(t, err, errs.ErrInvalidBooking)
		assert.Equal(t, errs.ErrInvalidBooking.Error(), err.Error())
	})

	t.Run("verbose rendering keeps the cause detail", func(t *testing.T) {
		cause := errs.Wrap(errors.New("unexpected EOF"), "decode snapshot")
		err := errs.Mark(cause, errs.ErrCorruptState)

		assert.Contains(t, fmt.Sprintf("%+v", err), "decode snapshot")
	})
}

func TestWrap(t *testing.T) {
	assert.Nil(t, errs.Wrap(nil, "ignored"))
	assert.Nil(t, errs.Wrapf(nil, "ignored %d", 1))

	cause := errors.New("boom")
	err := errs.Wrap(cause, "reading file")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "reading file")
}
