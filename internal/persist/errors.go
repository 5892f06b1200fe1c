package persist

import "errors"

var (
	// ErrMalformedSnapshot marks a stored document that fails to parse or is
	// missing every collection. Callers fall back to the seed dataset.
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	// ErrSlotUnavailable marks a durable slot that cannot be reached. Saves
	// are logged and dropped; loads fall back to the seed dataset.
	ErrSlotUnavailable = errors.New("slot unavailable")
)
