package embeddings

import "errors"

var (
	// ErrProvider is returned when the embedding call fails at the
	// network/API level.
	ErrProvider = errors.New("embedding provider call failed")

	// ErrDimensionMismatch is returned when the provider returns a vector
	// whose length differs from the configured dimensionality. Without this
	// check a silent model change would corrupt the embedding matrix.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
