package decor

import "errors"

var (
	// ErrInvalidRect reports a rectangle with non-finite or non-positive
	// dimensions. It is a caller configuration error and is never retried.
	ErrInvalidRect = errors.New("decor: invalid rectangle")

	// ErrInvalidScale reports a non-finite or non-positive device pixel scale.
	ErrInvalidScale = errors.New("decor: invalid pixel scale")

	// ErrNilSurface is returned when Paint is called without a surface.
	ErrNilSurface = errors.New("decor: surface must not be nil")
)
