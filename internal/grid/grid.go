// Package grid provides the strided 2D buffer view and the quadrant geometry
// consumed by the relocation strategies. Everything here is pure index
// arithmetic; no function in this package allocates element storage.
package grid

import "github.com/cwbudde/algo-fftshift/internal/shifttypes"

// Element is a type alias for the element constraint.
// The canonical definition is in internal/shifttypes.
type Element = shifttypes.Element

// Buffer is a row-major view over caller-owned element data. Stride is the
// distance in elements between the starts of consecutive rows; Stride > Cols
// describes a padded layout. A Buffer never owns its Data.
type Buffer[T Element] struct {
	Data   []T
	Rows   int
	Cols   int
	Stride int
}

// NewBuffer wraps data as a compact rows x cols view (stride == cols).
func NewBuffer[T Element](data []T, rows, cols int) (Buffer[T], error) {
	return NewStridedBuffer(data, rows, cols, cols)
}

// NewStridedBuffer wraps data as a rows x cols view with an explicit stride.
//
// A nil or empty data slice yields an empty view regardless of the requested
// shape; empty views are legal no-op inputs for every relocation strategy.
// Returns ErrInvalidDimensions if rows or cols is not positive,
// ErrInvalidStride if stride < cols, and ErrLengthMismatch if data is too
// short for the layout.
func NewStridedBuffer[T Element](data []T, rows, cols, stride int) (Buffer[T], error) {
	if len(data) == 0 {
		return Buffer[T]{}, nil
	}

	if rows <= 0 || cols <= 0 {
		return Buffer[T]{}, ErrInvalidDimensions
	}

	if stride < cols {
		return Buffer[T]{}, ErrInvalidStride
	}

	if (rows-1)*stride+cols > len(data) {
		return Buffer[T]{}, ErrLengthMismatch
	}

	return Buffer[T]{Data: data, Rows: rows, Cols: cols, Stride: stride}, nil
}

// Empty reports whether the view holds no elements.
func (b Buffer[T]) Empty() bool {
	return len(b.Data) == 0 || b.Rows == 0 || b.Cols == 0
}

// Row returns the w elements of row y starting at column x as a mutable view.
func (b Buffer[T]) Row(y, x, w int) []T {
	off := y*b.Stride + x
	return b.Data[off : off+w]
}

// CopyOut copies rect r of b into dst in compact row-major order.
// dst must hold at least r.Area() elements.
func CopyOut[T Element](b Buffer[T], r Rect, dst []T) {
	for y := 0; y < r.H; y++ {
		copy(dst[y*r.W:(y+1)*r.W], b.Row(r.Y+y, r.X, r.W))
	}
}

// CopyIn writes src, given in compact row-major order, into rect r of b.
func CopyIn[T Element](b Buffer[T], r Rect, src []T) {
	for y := 0; y < r.H; y++ {
		copy(b.Row(r.Y+y, r.X, r.W), src[y*r.W:(y+1)*r.W])
	}
}

// CopyRect copies rect src of b over rect dst of b. The rects must have equal
// size and must not overlap.
func CopyRect[T Element](b Buffer[T], dst, src Rect) {
	for y := 0; y < dst.H; y++ {
		copy(b.Row(dst.Y+y, dst.X, dst.W), b.Row(src.Y+y, src.X, src.W))
	}
}

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}
