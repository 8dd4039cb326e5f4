// Package shift implements the quadrant relocation engine: a reference
// relocator that is correct for every buffer shape, a family of bounded-memory
// movers restricted to even dimensions, and the equivalence oracle that
// certifies a mover against the reference.
package shift

import "github.com/cwbudde/algo-fftshift/internal/grid"

// Reference relocates buf's four quadrants by materializing each one in its
// own scratch region and then writing it to its destination. It never assumes
// that paired quadrants share a shape, which makes it the only mover that is
// correct for odd dimensions; every other mover is certified against it.
//
// Scratch cost is one full buffer (the four quadrant areas sum to rows*cols).
func Reference[T grid.Element](buf grid.Buffer[T]) error {
	return referenceInto(buf, nil, false)
}

// ReferenceInverse undoes Reference: each destination rect's content moves
// back to its source quadrant. For even dimensions the relocation is its own
// inverse and ReferenceInverse equals Reference; for odd dimensions it is the
// distinct ceil-split relocation.
func ReferenceInverse[T grid.Element](buf grid.Buffer[T]) error {
	return referenceInto(buf, nil, true)
}

func referenceInto[T grid.Element](buf grid.Buffer[T], scratch []T, inverse bool) error {
	if buf.Empty() {
		return nil
	}

	s, err := grid.NewSplit(buf.Rows, buf.Cols)
	if err != nil {
		return err
	}

	srcs := s.Quadrants()
	dsts := s.Destinations()

	if inverse {
		srcs, dsts = dsts, srcs
	}

	scratch = ensureScratch(scratch, buf.Rows*buf.Cols)

	var parts [4][]T

	off := 0

	for i, r := range srcs {
		parts[i] = scratch[off : off+r.Area()]
		grid.CopyOut(buf, r, parts[i])
		off += r.Area()
	}

	for i, r := range dsts {
		grid.CopyIn(buf, r, parts[i])
	}

	return nil
}
