// Package algoshift relocates the four quadrants of a two-dimensional buffer
// in place, moving a frequency-domain buffer's origin between the corner and
// the center (the fft-shift step applied to transform input or output; the
// transform itself is out of scope).
//
// The one-shot entry points are Shift and Unshift. Plan binds a buffer shape
// once and reuses its scratch across calls. Compare is the equivalence oracle
// used to certify one mover against another.
//
// A single relocation call is synchronous and CPU-bound. Distinct buffers may
// be relocated concurrently; concurrent calls against the same buffer must be
// serialized by the caller.
package algoshift

import (
	"github.com/cwbudde/algo-fftshift/internal/grid"
	"github.com/cwbudde/algo-fftshift/internal/shift"
)

// Shift relocates the quadrants of a rows x cols row-major buffer in place:
// Q0 (top-left) trades places with Q3 (bottom-right) and Q1 with Q2, per the
// fixed relocation map that moves the origin to the center. For odd
// dimensions the four quadrants differ in size and the relocation is
// performed by the reference mover, which handles the asymmetric split
// exactly.
//
// A nil or empty data slice is a no-op. Returns ErrInvalidDimensions if rows
// or cols is not positive, and ErrLengthMismatch if data is too short for the
// shape.
func Shift[T Element](data []T, rows, cols int, opts ...Option) error {
	cfg := applyOptions(opts)

	buf, err := makeBuffer(data, rows, cols, cfg.stride)
	if err != nil {
		return err
	}

	return shift.Relocate(buf, cfg.strategy, cfg.shiftConfig())
}

// Unshift is the inverse of Shift. For even dimensions the relocation is an
// involution and Unshift equals Shift; for odd dimensions Unshift applies the
// exact inverse of the reference relocation, so Unshift after Shift restores
// the original buffer for every shape.
func Unshift[T Element](data []T, rows, cols int, opts ...Option) error {
	cfg := applyOptions(opts)

	buf, err := makeBuffer(data, rows, cols, cfg.stride)
	if err != nil {
		return err
	}

	return shift.RelocateInverse(buf, cfg.strategy, cfg.shiftConfig())
}

// Compare reports the maximum absolute elementwise difference between two
// rows x cols buffers and whether they are equivalent within tol. A negative
// tol selects the default tolerance for T: 1e-6 for float and complex
// elements, exact equality for integers. Neither buffer is modified.
func Compare[T Element](a, b []T, rows, cols int, tol float64) (maxDiff float64, ok bool, err error) {
	bufA, err := makeBuffer(a, rows, cols, 0)
	if err != nil {
		return 0, false, err
	}

	bufB, err := makeBuffer(b, rows, cols, 0)
	if err != nil {
		return 0, false, err
	}

	if tol < 0 {
		tol = shift.DefaultTolerance[T]()
	}

	return shift.Compare(bufA, bufB, tol)
}

func makeBuffer[T Element](data []T, rows, cols, stride int) (grid.Buffer[T], error) {
	if stride == 0 {
		stride = cols
	}

	return grid.NewStridedBuffer(data, rows, cols, stride)
}
