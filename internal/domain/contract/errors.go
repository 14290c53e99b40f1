package contract

import "errors"

// Sentinel errors shared between repositories and usecases so neither layer
// has to import the other's implementation package.
var (
	// ErrPostNotFound is returned when a post does not exist.
	ErrPostNotFound = errors.New("post not found")

	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrTokenNotFound is returned when a stored token does not exist.
	ErrTokenNotFound = errors.New("token not found")

	// ErrTxConflict is returned when the storage layer detects a write
	// conflict or serialization failure inside a transaction. The whole
	// read-decide-write unit may be retried.
	ErrTxConflict = errors.New("transaction conflict")

	// ErrStorageUnavailable is returned when the store cannot be reached or
	// a write fails for reasons other than a conflict.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
