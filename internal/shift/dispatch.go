package shift

import (
	"github.com/cwbudde/algo-fftshift/internal/cpu"
	"github.com/cwbudde/algo-fftshift/internal/grid"
	"github.com/cwbudde/algo-fftshift/internal/shifttypes"
)

// Strategy is a type alias for the strategy tag.
// The canonical definition is in internal/shifttypes.
type Strategy = shifttypes.Strategy

// Config carries the tunable mover parameters. Zero values select the
// package defaults.
type Config struct {
	Tile   int // tile edge for the tiled mover
	Budget int // scratch ceiling in bytes for the chunked mover
}

// Auto-selection thresholds, in bytes of buffer data.
const (
	blockAutoThreshold = 1 << 20
	chunkAutoThreshold = 1 << 25
	wideAspectRatio    = 8
)

// features is detected once; mover selection is the only consumer.
var features = cpu.DetectFeatures()

func (c Config) withDefaults() Config {
	if c.Tile == 0 {
		c.Tile = defaultTile(features)
	}

	if c.Budget == 0 {
		c.Budget = DefaultChunkBudget
	}

	return c
}

// defaultTile picks the tile edge for the tiled mover. Without wide vector
// moves the per-tile copies are slower, so a smaller tile keeps the pair of
// working tiles resident in L1.
func defaultTile(f cpu.Features) int {
	if f.HasWideVectors() {
		return DefaultTileSize
	}

	return DefaultTileSize / 2
}

// Resolve maps a requested strategy to the concrete mover that will run for a
// rows x cols buffer of elemSize-byte elements. StrategyAuto is replaced by a
// heuristic (or wisdom) choice; strategies whose domain the shape violates
// resolve to StrategyReference, and StrategyPow2 degrades to StrategyWhole
// for non-power-of-two even shapes. The result never disagrees with the
// reference semantics.
func Resolve(strategy Strategy, rows, cols, elemSize int, cfg Config) Strategy {
	cfg = cfg.withDefaults()

	if strategy == shifttypes.StrategyAuto {
		strategy = choose(rows, cols, elemSize, cfg)
	}

	// Values outside the defined set pass through so exec can reject them.
	if strategy > shifttypes.StrategyChunked {
		return strategy
	}

	even := rows > 0 && cols > 0 && rows%2 == 0 && cols%2 == 0
	if !even && strategy != shifttypes.StrategyReference {
		return shifttypes.StrategyReference
	}

	if strategy == shifttypes.StrategyPow2 && !(grid.IsPowerOf2(rows) && grid.IsPowerOf2(cols)) {
		return shifttypes.StrategyWhole
	}

	return strategy
}

// choose picks a mover for an unconstrained (auto) request. Recorded wisdom
// wins; otherwise the decision follows buffer size and aspect ratio.
func choose(rows, cols, elemSize int, cfg Config) Strategy {
	if s, ok := DefaultWisdom.Lookup(rows, cols); ok {
		return s
	}

	if rows%2 != 0 || cols%2 != 0 {
		return shifttypes.StrategyReference
	}

	total := rows * cols * elemSize

	blockThreshold := blockAutoThreshold
	if !features.HasWideVectors() {
		blockThreshold >>= 1
	}

	switch {
	case total > chunkAutoThreshold:
		return shifttypes.StrategyChunked
	case total > blockThreshold:
		return shifttypes.StrategyBlocks
	case cols >= wideAspectRatio*rows:
		return shifttypes.StrategyRows
	case grid.IsPowerOf2(rows) && grid.IsPowerOf2(cols):
		return shifttypes.StrategyPow2
	default:
		return shifttypes.StrategyWhole
	}
}

// ScratchLen returns the scratch element count the resolved strategy needs
// for a rows x cols buffer. Zero means the shape is empty or invalid.
func ScratchLen(strategy Strategy, rows, cols, elemSize int, cfg Config) int {
	cfg = cfg.withDefaults()

	s, err := grid.NewSplit(rows, cols)
	if err != nil {
		return 0
	}

	switch strategy {
	case shifttypes.StrategyReference:
		return rows * cols
	case shifttypes.StrategyWhole, shifttypes.StrategyPow2:
		return s.W1 * s.H1
	case shifttypes.StrategyRows:
		return s.CX
	case shifttypes.StrategyBlocks:
		return min(cfg.Tile, s.CY) * min(cfg.Tile, s.CX)
	case shifttypes.StrategyChunked:
		return chunkScratchLen(rows, cols, elemSize, cfg.Budget)
	default:
		return 0
	}
}

// Relocate moves buf's quadrants using the requested strategy, recovering
// from domain mismatches by resolving to the reference relocator first. Empty
// buffers are a no-op.
func Relocate[T grid.Element](buf grid.Buffer[T], strategy Strategy, cfg Config) error {
	return relocate(buf, strategy, cfg, nil)
}

// RelocateInto is Relocate with caller-provided scratch, as reused by plans
// across calls. scratch may be nil or undersized; it is grown as needed.
func RelocateInto[T grid.Element](buf grid.Buffer[T], strategy Strategy, cfg Config, scratch []T) error {
	return relocate(buf, strategy, cfg, scratch)
}

// RelocateInverse applies the inverse relocation. For even dimensions every
// mover is its own inverse, so the resolved strategy runs unchanged; odd
// shapes take the reference inverse path.
func RelocateInverse[T grid.Element](buf grid.Buffer[T], strategy Strategy, cfg Config) error {
	return RelocateInverseInto(buf, strategy, cfg, nil)
}

// RelocateInverseInto is RelocateInverse with caller-provided scratch.
func RelocateInverseInto[T grid.Element](buf grid.Buffer[T], strategy Strategy, cfg Config, scratch []T) error {
	if buf.Empty() {
		return nil
	}

	if buf.Rows%2 == 0 && buf.Cols%2 == 0 {
		return relocate(buf, strategy, cfg, scratch)
	}

	return referenceInto(buf, scratch, true)
}

// ResolveFor is Resolve with the element size taken from T.
func ResolveFor[T grid.Element](strategy Strategy, rows, cols int, cfg Config) Strategy {
	return Resolve(strategy, rows, cols, elemSize[T](), cfg)
}

// ScratchLenFor is ScratchLen with the element size taken from T.
func ScratchLenFor[T grid.Element](strategy Strategy, rows, cols int, cfg Config) int {
	return ScratchLen(strategy, rows, cols, elemSize[T](), cfg)
}

func relocate[T grid.Element](buf grid.Buffer[T], strategy Strategy, cfg Config, scratch []T) error {
	if buf.Empty() {
		return nil
	}

	cfg = cfg.withDefaults()
	strategy = Resolve(strategy, buf.Rows, buf.Cols, elemSize[T](), cfg)

	return exec(buf, strategy, cfg, scratch)
}

// exec runs a resolved strategy. Callers guarantee the shape is inside the
// strategy's domain; domain errors escaping here indicate a caller bug.
func exec[T grid.Element](buf grid.Buffer[T], strategy Strategy, cfg Config, scratch []T) error {
	switch strategy {
	case shifttypes.StrategyReference:
		return referenceInto(buf, scratch, false)
	case shifttypes.StrategyWhole:
		return wholeInto(buf, scratch)
	case shifttypes.StrategyRows:
		return rowsInto(buf, scratch)
	case shifttypes.StrategyBlocks:
		return blocksInto(buf, cfg.Tile, scratch)
	case shifttypes.StrategyPow2:
		return pow2Into(buf, scratch)
	case shifttypes.StrategyChunked:
		return chunkedInto(buf, cfg.Budget, scratch)
	default:
		return ErrUnknownStrategy
	}
}
