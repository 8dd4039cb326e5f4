package grid

// Rect is a sub-region of a Buffer: X/Y are the top-left element coordinates,
// W/H the extent. A Rect is only a description; it holds no memory.
type Rect struct {
	X, Y, W, H int
}

// Area returns the number of elements covered by the rect.
func (r Rect) Area() int {
	return r.W * r.H
}

// Split describes the quadrant partition of a rows x cols buffer.
//
// The midlines are CX = cols/2 and CY = rows/2 (floor division). The left and
// top parts absorb the remainder: W1 = cols-CX, H1 = rows-CY. Consequently
// W1 >= W2 and H1 >= H2, with equality exactly when the dimension is even.
type Split struct {
	Rows, Cols int
	CX, CY     int
	W1, W2     int
	H1, H2     int
}

// NewSplit computes the quadrant partition for a rows x cols buffer.
// Returns ErrInvalidDimensions unless both dimensions are positive.
func NewSplit(rows, cols int) (Split, error) {
	if rows <= 0 || cols <= 0 {
		return Split{}, ErrInvalidDimensions
	}

	cx := cols / 2
	cy := rows / 2

	return Split{
		Rows: rows, Cols: cols,
		CX: cx, CY: cy,
		W1: cols - cx, W2: cx,
		H1: rows - cy, H2: cy,
	}, nil
}

// Even reports whether both dimensions split into equal halves.
func (s Split) Even() bool {
	return s.W1 == s.W2 && s.H1 == s.H2
}

// Quadrants returns the four source rectangles in fixed order:
// Q0 top-left, Q1 top-right, Q2 bottom-left, Q3 bottom-right.
func (s Split) Quadrants() [4]Rect {
	return [4]Rect{
		{X: 0, Y: 0, W: s.W1, H: s.H1},
		{X: s.W1, Y: 0, W: s.W2, H: s.H1},
		{X: 0, Y: s.H1, W: s.W1, H: s.H2},
		{X: s.W1, Y: s.H1, W: s.W2, H: s.H2},
	}
}

// Destinations returns where each quadrant lands after relocation, indexed
// like Quadrants. This pairing is the definition of the shift: Q0 moves to
// (CX,CY), Q1 to (0,CY), Q2 to (CX,0), and Q3 to the origin. Destination
// extents equal the matching source extents, so for odd dimensions a
// destination does not coincide with any other quadrant's original footprint.
func (s Split) Destinations() [4]Rect {
	return [4]Rect{
		{X: s.CX, Y: s.CY, W: s.W1, H: s.H1},
		{X: 0, Y: s.CY, W: s.W2, H: s.H1},
		{X: s.CX, Y: 0, W: s.W1, H: s.H2},
		{X: 0, Y: 0, W: s.W2, H: s.H2},
	}
}
