package shifttypes

// Strategy controls how a relocation call moves the four quadrants.
type Strategy uint32

const (
	StrategyAuto Strategy = iota
	StrategyReference
	StrategyWhole
	StrategyRows
	StrategyBlocks
	StrategyPow2
	StrategyChunked
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyReference:
		return "reference"
	case StrategyWhole:
		return "whole"
	case StrategyRows:
		return "rows"
	case StrategyBlocks:
		return "blocks"
	case StrategyPow2:
		return "pow2"
	case StrategyChunked:
		return "chunked"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a strategy name (as produced by String) back to its value.
func ParseStrategy(name string) (Strategy, bool) {
	switch name {
	case "auto":
		return StrategyAuto, true
	case "reference":
		return StrategyReference, true
	case "whole":
		return StrategyWhole, true
	case "rows":
		return StrategyRows, true
	case "blocks":
		return StrategyBlocks, true
	case "pow2":
		return StrategyPow2, true
	case "chunked":
		return StrategyChunked, true
	default:
		return StrategyAuto, false
	}
}
