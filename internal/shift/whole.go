package shift

import "github.com/cwbudde/algo-fftshift/internal/grid"

// Whole swaps Q0 with Q3 and Q1 with Q2 through a single scratch buffer sized
// to one quadrant, three moves per pair. Valid only when both dimensions are
// even; odd input returns ErrOddDimensions with the buffer untouched.
func Whole[T grid.Element](buf grid.Buffer[T]) error {
	return wholeInto(buf, nil)
}

func wholeInto[T grid.Element](buf grid.Buffer[T], scratch []T) error {
	if buf.Empty() {
		return nil
	}

	s, err := grid.NewSplit(buf.Rows, buf.Cols)
	if err != nil {
		return err
	}

	if !s.Even() {
		return ErrOddDimensions
	}

	q := s.Quadrants()
	scratch = ensureScratch(scratch, q[0].Area())

	swapRects(buf, q[0], q[3], scratch)
	swapRects(buf, q[1], q[2], scratch)

	return nil
}
