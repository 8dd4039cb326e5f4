package shift

import "github.com/cwbudde/algo-fftshift/internal/grid"

// Pow2 is the whole-buffer diagonal swap specialized to power-of-two
// dimensions: the quadrant arithmetic reduces to shifts. It is not a distinct
// algorithm, only a fast-path variant; anything outside its domain returns
// ErrNotPowerOfTwo (or ErrOddDimensions for size 1) so the caller can
// delegate to a general mover.
func Pow2[T grid.Element](buf grid.Buffer[T]) error {
	return pow2Into(buf, nil)
}

func pow2Into[T grid.Element](buf grid.Buffer[T], scratch []T) error {
	if buf.Empty() {
		return nil
	}

	if buf.Rows <= 0 || buf.Cols <= 0 {
		return grid.ErrInvalidDimensions
	}

	if !grid.IsPowerOf2(buf.Rows) || !grid.IsPowerOf2(buf.Cols) {
		return ErrNotPowerOfTwo
	}

	// 2^0 is a power of two but an odd dimension.
	if buf.Rows == 1 || buf.Cols == 1 {
		return ErrOddDimensions
	}

	cy := buf.Rows >> 1
	cx := buf.Cols >> 1

	scratch = ensureScratch(scratch, cy*cx)

	q0 := grid.Rect{X: 0, Y: 0, W: cx, H: cy}
	q1 := grid.Rect{X: cx, Y: 0, W: cx, H: cy}
	q2 := grid.Rect{X: 0, Y: cy, W: cx, H: cy}
	q3 := grid.Rect{X: cx, Y: cy, W: cx, H: cy}

	swapRects(buf, q0, q3, scratch)
	swapRects(buf, q1, q2, scratch)

	return nil
}
