package types

import "errors"

// Sentinel errors for record type classification.
//
// These errors provide type-safe error checking using errors.Is(). Callers
// wrap them with context using fmt.Errorf("%s: %w", msg, err).
var (
	// ErrAmbiguousCategory is returned when a type claims both the trigger
	// and the job instance capability.
	ErrAmbiguousCategory = errors.New("type matches both trigger and instance categories")
)
