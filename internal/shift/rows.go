package shift

import "github.com/cwbudde/algo-fftshift/internal/grid"

// Rows applies the diagonal swap one row at a time with half a row of
// scratch. Same result and domain as Whole; the row granularity keeps the
// working set small on wide buffers.
func Rows[T grid.Element](buf grid.Buffer[T]) error {
	return rowsInto(buf, nil)
}

func rowsInto[T grid.Element](buf grid.Buffer[T], scratch []T) error {
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

	scratch = ensureScratch(scratch, s.CX)

	for y := 0; y < s.CY; y++ {
		yOpp := y + s.CY

		// Q0 <-> Q3, then Q1 <-> Q2, on this row pair.
		swapRuns(buf.Row(y, 0, s.CX), buf.Row(yOpp, s.CX, s.CX), scratch)
		swapRuns(buf.Row(y, s.CX, s.CX), buf.Row(yOpp, 0, s.CX), scratch)
	}

	return nil
}
