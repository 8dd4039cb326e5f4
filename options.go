package algoshift

import "github.com/cwbudde/algo-fftshift/internal/shift"

// Option configures a relocation call or plan.
type Option func(*config)

type config struct {
	strategy Strategy
	tile     int
	budget   int
	stride   int
}

func (c config) shiftConfig() shift.Config {
	return shift.Config{Tile: c.tile, Budget: c.budget}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStrategy forces a specific relocation strategy instead of automatic
// selection. Shapes outside the strategy's domain fall back to the reference
// relocator, never to a silently different result.
func WithStrategy(s Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// WithTileSize sets the tile edge for StrategyBlocks. Smaller tiles lower
// peak scratch memory at the cost of more per-tile overhead. The tile size
// must be positive; relocation fails with ErrInvalidTileSize otherwise.
func WithTileSize(tile int) Option {
	return func(c *config) { c.tile = tile }
}

// WithChunkBudget sets the scratch ceiling in bytes for StrategyChunked.
// Smaller budgets lower peak memory and increase the number of row-band
// passes. The budget must hold at least one element; relocation fails with
// ErrInvalidChunkBudget otherwise.
func WithChunkBudget(bytes int) Option {
	return func(c *config) { c.budget = bytes }
}

// WithStride declares a padded row stride: the distance in elements between
// the starts of consecutive rows. The default is cols (compact layout).
func WithStride(stride int) Option {
	return func(c *config) { c.stride = stride }
}
