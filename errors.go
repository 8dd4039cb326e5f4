package algoshift

import (
	"github.com/cwbudde/algo-fftshift/internal/grid"
	"github.com/cwbudde/algo-fftshift/internal/shift"
)

// Sentinel errors returned by relocation operations. The canonical values
// live in the internal packages; they are re-exported here so callers can
// match them with errors.Is.
var (
	// ErrInvalidDimensions is returned when rows or cols is not positive.
	ErrInvalidDimensions = grid.ErrInvalidDimensions

	// ErrInvalidStride is returned when a stride is smaller than cols.
	ErrInvalidStride = grid.ErrInvalidStride

	// ErrLengthMismatch is returned when a data slice is too short for the
	// requested rows/cols/stride layout.
	ErrLengthMismatch = grid.ErrLengthMismatch

	// ErrShapeMismatch is returned by Compare when the two buffers disagree
	// in rows or cols.
	ErrShapeMismatch = grid.ErrShapeMismatch

	// ErrOddDimensions is returned by the equal-quadrant movers when a
	// dimension is odd. Shift itself never returns it; the dispatcher falls
	// back to the reference relocator instead.
	ErrOddDimensions = shift.ErrOddDimensions

	// ErrNotPowerOfTwo is returned by the power-of-two mover outside its
	// domain.
	ErrNotPowerOfTwo = shift.ErrNotPowerOfTwo

	// ErrInvalidTileSize is returned for a non-positive tile size.
	ErrInvalidTileSize = shift.ErrInvalidTileSize

	// ErrInvalidChunkBudget is returned when a chunk budget cannot hold a
	// single element.
	ErrInvalidChunkBudget = shift.ErrInvalidChunkBudget

	// ErrUnknownStrategy is returned for strategy values outside the defined
	// set.
	ErrUnknownStrategy = shift.ErrUnknownStrategy
)
