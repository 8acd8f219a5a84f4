package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidConfig    = errors.New("invalid configuration")

	// ErrNoJudgment is returned when no label strictly dominates the
	// other two probabilities.
	ErrNoJudgment = errors.New("cannot form judgment")
)
