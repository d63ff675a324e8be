package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned when no persisted session exists,
	// typically on first launch or after a logout.
	ErrSessionNotFound = errors.New("local session not found")
)
