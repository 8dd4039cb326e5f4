package shift

import "github.com/cwbudde/algo-fftshift/internal/grid"

// DefaultTileSize is the default tile edge for the tiled mover. A 64x64 tile
// of 4-byte elements is 16 KiB and fits comfortably in L1.
const DefaultTileSize = 64

// Blocks performs the diagonal swap tile by tile. Scratch is bounded by one
// tile regardless of buffer size; tiles at the quadrant edges are clamped to
// the remaining extent rather than rounded. Same domain as Whole.
func Blocks[T grid.Element](buf grid.Buffer[T], tile int) error {
	return blocksInto(buf, tile, nil)
}

func blocksInto[T grid.Element](buf grid.Buffer[T], tile int, scratch []T) error {
	if buf.Empty() {
		return nil
	}

	if tile <= 0 {
		return ErrInvalidTileSize
	}

	s, err := grid.NewSplit(buf.Rows, buf.Cols)
	if err != nil {
		return err
	}

	if !s.Even() {
		return ErrOddDimensions
	}

	scratch = ensureScratch(scratch, min(tile, s.CY)*min(tile, s.CX))

	q := s.Quadrants()
	swapTiled(buf, q[0], q[3], tile, scratch)
	swapTiled(buf, q[1], q[2], tile, scratch)

	return nil
}

// swapTiled exchanges two equal-size quadrants tile pair by tile pair.
func swapTiled[T grid.Element](buf grid.Buffer[T], a, b grid.Rect, tile int, scratch []T) {
	for ty := 0; ty < a.H; ty += tile {
		th := min(tile, a.H-ty)

		for tx := 0; tx < a.W; tx += tile {
			tw := min(tile, a.W-tx)

			at := grid.Rect{X: a.X + tx, Y: a.Y + ty, W: tw, H: th}
			bt := grid.Rect{X: b.X + tx, Y: b.Y + ty, W: tw, H: th}

			swapRects(buf, at, bt, scratch[:tw*th])
		}
	}
}
