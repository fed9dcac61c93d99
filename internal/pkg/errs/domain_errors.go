package errs

import "errors"

// Shared sentinel errors the HTTP layer maps to status codes
var (
	// Input errors
	ErrInvalidInput = errors.New("invalid input")

	// Lookup errors
	ErrNotFound = errors.New("not found")

	// State errors
	ErrConflict    = errors.New("conflicting state")
	ErrUnavailable = errors.New("dependency unavailable")
)
