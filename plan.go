package algoshift

import (
	"github.com/cwbudde/algo-fftshift/internal/grid"
	"github.com/cwbudde/algo-fftshift/internal/shift"
)

// Plan is a shape-bound relocation plan. Strategy selection, domain checks,
// and scratch allocation happen once at creation; Execute then only validates
// the slice length. Use a Plan when relocating many buffers of one shape.
//
// A Plan reuses its scratch buffer, so a single Plan instance must not be
// used from multiple goroutines concurrently. Create one Plan per goroutine
// instead; plans are cheap next to the buffers they move.
type Plan[T Element] struct {
	rows     int
	cols     int
	stride   int
	strategy Strategy
	cfg      shift.Config
	scratch  []T
}

// NewPlan creates a relocation plan for rows x cols buffers.
//
// Returns ErrInvalidDimensions if rows or cols is not positive,
// ErrInvalidStride for a stride below cols, ErrInvalidTileSize or
// ErrInvalidChunkBudget for unusable tuning options.
func NewPlan[T Element](rows, cols int, opts ...Option) (*Plan[T], error) {
	cfg := applyOptions(opts)

	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	stride := cfg.stride
	if stride == 0 {
		stride = cols
	}

	if stride < cols {
		return nil, ErrInvalidStride
	}

	if cfg.tile < 0 {
		return nil, ErrInvalidTileSize
	}

	if cfg.budget < 0 {
		return nil, ErrInvalidChunkBudget
	}

	scfg := cfg.shiftConfig()
	strategy := shift.ResolveFor[T](cfg.strategy, rows, cols, scfg)

	return &Plan[T]{
		rows:     rows,
		cols:     cols,
		stride:   stride,
		strategy: strategy,
		cfg:      scfg,
		scratch:  make([]T, shift.ScratchLenFor[T](strategy, rows, cols, scfg)),
	}, nil
}

// Execute relocates data in place using the plan's resolved strategy.
// A nil or empty slice is a no-op; a short slice returns ErrLengthMismatch.
func (p *Plan[T]) Execute(data []T) error {
	buf, err := grid.NewStridedBuffer(data, p.rows, p.cols, p.stride)
	if err != nil {
		return err
	}

	return shift.RelocateInto(buf, p.strategy, p.cfg, p.scratch)
}

// ExecuteInverse applies the inverse relocation (see Unshift).
func (p *Plan[T]) ExecuteInverse(data []T) error {
	buf, err := grid.NewStridedBuffer(data, p.rows, p.cols, p.stride)
	if err != nil {
		return err
	}

	return shift.RelocateInverseInto(buf, p.strategy, p.cfg, p.scratch)
}

// Rows returns the plan's row count.
func (p *Plan[T]) Rows() int {
	return p.rows
}

// Cols returns the plan's column count.
func (p *Plan[T]) Cols() int {
	return p.cols
}

// Strategy returns the concrete mover the plan resolved to.
func (p *Plan[T]) Strategy() Strategy {
	return p.strategy
}
