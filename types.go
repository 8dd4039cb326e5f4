package algoshift

import "github.com/cwbudde/algo-fftshift/internal/shifttypes"

// Element is the type constraint for buffer element types supported by the
// engine. The canonical definition is in internal/shifttypes.
type Element = shifttypes.Element

// Strategy selects how a relocation call moves the four quadrants.
// The canonical definition is in internal/shifttypes.
type Strategy = shifttypes.Strategy

// Relocation strategies. StrategyAuto picks a mover from recorded wisdom or
// size heuristics; the named strategies force a specific mover, with the
// even-dimension-only movers falling back to StrategyReference whenever the
// shape is outside their domain.
const (
	StrategyAuto      = shifttypes.StrategyAuto
	StrategyReference = shifttypes.StrategyReference
	StrategyWhole     = shifttypes.StrategyWhole
	StrategyRows      = shifttypes.StrategyRows
	StrategyBlocks    = shifttypes.StrategyBlocks
	StrategyPow2      = shifttypes.StrategyPow2
	StrategyChunked   = shifttypes.StrategyChunked
)

// ParseStrategy maps a strategy name (as produced by Strategy.String) back to
// its value.
func ParseStrategy(name string) (Strategy, bool) {
	return shifttypes.ParseStrategy(name)
}
