package shift

import (
	"unsafe"

	"github.com/cwbudde/algo-fftshift/internal/grid"
)

// ensureScratch returns a slice of exactly n elements, reusing buf's backing
// array when it is large enough. Scratch is always call-scoped: nothing in
// this package retains a scratch slice between calls.
func ensureScratch[T grid.Element](buf []T, n int) []T {
	if cap(buf) < n {
		return make([]T, n)
	}

	return buf[:n]
}

// elemSize returns the in-memory size of one element of T in bytes.
func elemSize[T grid.Element]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// swapRects exchanges two equal-size rectangles of buf through scratch in
// three moves: a to scratch, b over a, scratch over b. scratch must hold
// a.Area() elements; the rects must not overlap.
func swapRects[T grid.Element](buf grid.Buffer[T], a, b grid.Rect, scratch []T) {
	grid.CopyOut(buf, a, scratch)
	grid.CopyRect(buf, a, b)
	grid.CopyIn(buf, b, scratch)
}

// swapRuns exchanges two equal-length row segments through scratch.
func swapRuns[T grid.Element](a, b, scratch []T) {
	copy(scratch, a)
	copy(a, b)
	copy(b, scratch[:len(a)])
}
