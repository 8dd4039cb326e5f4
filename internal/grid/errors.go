package grid

import "errors"

// Sentinel errors for buffer and geometry validation.
var (
	// ErrInvalidDimensions is returned when rows or cols is not positive.
	ErrInvalidDimensions = errors.New("algoshift: invalid buffer dimensions")

	// ErrInvalidStride is returned when a row stride is smaller than the
	// logical row width.
	ErrInvalidStride = errors.New("algoshift: invalid stride")

	// ErrLengthMismatch is returned when a slice is too short for the
	// requested rows/cols/stride layout.
	ErrLengthMismatch = errors.New("algoshift: slice length mismatch")

	// ErrShapeMismatch is returned when two buffers that must share a shape
	// do not.
	ErrShapeMismatch = errors.New("algoshift: buffer shape mismatch")
)
