package shift

import "errors"

// Sentinel errors returned by the relocation strategies.
var (
	// ErrOddDimensions is returned by the equal-quadrant movers when rows or
	// cols is odd. The quadrant pairs then differ in size and a swap-in-place
	// is not defined; callers recover by using the reference relocator.
	ErrOddDimensions = errors.New("algoshift: strategy requires even dimensions")

	// ErrNotPowerOfTwo is returned by the power-of-two mover for sizes
	// outside its domain.
	ErrNotPowerOfTwo = errors.New("algoshift: dimensions must be powers of two")

	// ErrInvalidTileSize is returned when a tile size is not positive.
	ErrInvalidTileSize = errors.New("algoshift: invalid tile size")

	// ErrInvalidChunkBudget is returned when a chunk budget cannot hold a
	// single element.
	ErrInvalidChunkBudget = errors.New("algoshift: invalid chunk budget")

	// ErrUnknownStrategy is returned for strategy values outside the
	// defined set.
	ErrUnknownStrategy = errors.New("algoshift: unknown strategy")
)
