package storage

import "errors"

// Common client storage errors
var (
	// ErrStorageUnavailable indicates that the persistent store could not
	// be initialized; callers must degrade to network-only behavior
	ErrStorageUnavailable = errors.New("persistent storage unavailable")

	// ErrRecordNotFound indicates that a cached record was not found
	ErrRecordNotFound = errors.New("cached record not found")

	// ErrActionNotFound indicates that a pending action was not found
	ErrActionNotFound = errors.New("pending action not found")

	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
