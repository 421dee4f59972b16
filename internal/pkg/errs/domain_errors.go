package errs

import "errors"

// Sentinel errors shared across the repository and usecase layers.
// Infrastructure failures (storage, credentials) are kept distinct from
// expected business outcomes so handlers can pick the right status code.
var (
	// Storage errors
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrCorruptState       = errors.New("corrupt stored state")

	// User errors
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrCredentialHashing  = errors.New("credential hashing failed")

	// Catalog errors
	ErrPackageNotFound = errors.New("package not found")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidBooking  = errors.New("invalid booking request")
)
