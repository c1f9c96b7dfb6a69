package repositories

import "context"

// StepReader defines read operations on sealed pipeline steps.
type StepReader interface {
	// FindStep returns the sealed blob stored under key, or apperrors.ErrNotFound.
	FindStep(ctx context.Context, key string) ([]byte, error)
}

// StepWriter defines write operations on sealed pipeline steps.
type StepWriter interface {
	// SaveStep stores sealed under key, replacing any previous value.
	SaveStep(ctx context.Context, key string, sealed []byte) error
	// DeleteStep removes key. Deleting a missing key is not an error.
	DeleteStep(ctx context.Context, key string) error
}

// StepRepository combines all step persistence operations.
type StepRepository interface {
	StepReader
	StepWriter
}
