package shift

import (
	"testing"

	"github.com/cwbudde/algo-fftshift/internal/shifttypes"
)

func TestResolveDomainNormalization(t *testing.T) {
	tests := []struct {
		name       string
		strategy   Strategy
		rows, cols int
		want       Strategy
	}{
		{"whole stays on even", shifttypes.StrategyWhole, 8, 8, shifttypes.StrategyWhole},
		{"whole falls back on odd", shifttypes.StrategyWhole, 5, 5, shifttypes.StrategyReference},
		{"rows falls back on odd cols", shifttypes.StrategyRows, 8, 3, shifttypes.StrategyReference},
		{"blocks falls back on odd rows", shifttypes.StrategyBlocks, 3, 8, shifttypes.StrategyReference},
		{"chunked falls back on odd", shifttypes.StrategyChunked, 7, 7, shifttypes.StrategyReference},
		{"pow2 stays on powers of two", shifttypes.StrategyPow2, 8, 64, shifttypes.StrategyPow2},
		{"pow2 degrades to whole", shifttypes.StrategyPow2, 6, 8, shifttypes.StrategyWhole},
		{"pow2 falls back on odd", shifttypes.StrategyPow2, 5, 8, shifttypes.StrategyReference},
		{"reference always allowed", shifttypes.StrategyReference, 5, 5, shifttypes.StrategyReference},
		{"auto on odd", shifttypes.StrategyAuto, 9, 9, shifttypes.StrategyReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.strategy, tt.rows, tt.cols, 8, Config{})
			if got != tt.want {
				t.Errorf("Resolve(%v, %d, %d) = %v, want %v", tt.strategy, tt.rows, tt.cols, got, tt.want)
			}
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	strategies := []Strategy{
		shifttypes.StrategyAuto, shifttypes.StrategyReference, shifttypes.StrategyWhole,
		shifttypes.StrategyRows, shifttypes.StrategyBlocks, shifttypes.StrategyPow2,
		shifttypes.StrategyChunked,
	}

	shapes := []struct{ rows, cols int }{{8, 8}, {5, 5}, {6, 8}, {128, 256}}

	for _, s := range strategies {
		for _, shape := range shapes {
			once := Resolve(s, shape.rows, shape.cols, 8, Config{})
			twice := Resolve(once, shape.rows, shape.cols, 8, Config{})

			if once != twice {
				t.Errorf("Resolve not idempotent: %v -> %v -> %v on %dx%d", s, once, twice, shape.rows, shape.cols)
			}
		}
	}
}

func TestChooseConsultsWisdom(t *testing.T) {
	DefaultWisdom.Record(10, 12, shifttypes.StrategyRows)
	defer DefaultWisdom.Clear()

	got := Resolve(shifttypes.StrategyAuto, 10, 12, 8, Config{})
	if got != shifttypes.StrategyRows {
		t.Errorf("auto with wisdom = %v, want rows", got)
	}
}

func TestChooseHeuristics(t *testing.T) {
	// Small even power-of-two shape: the shift-arithmetic fast path.
	if got := Resolve(shifttypes.StrategyAuto, 64, 64, 8, Config{}); got != shifttypes.StrategyPow2 {
		t.Errorf("64x64 auto = %v, want pow2", got)
	}

	// Very wide buffer below the block threshold: row granularity.
	if got := Resolve(shifttypes.StrategyAuto, 2, 1000, 8, Config{}); got != shifttypes.StrategyRows {
		t.Errorf("2x1000 auto = %v, want rows", got)
	}

	// Beyond the chunk threshold the selection bounds peak memory.
	if got := Resolve(shifttypes.StrategyAuto, 4096, 4096, 8, Config{}); got != shifttypes.StrategyChunked {
		t.Errorf("4096x4096 auto = %v, want chunked", got)
	}
}

func TestScratchLen(t *testing.T) {
	tests := []struct {
		strategy   Strategy
		rows, cols int
		cfg        Config
		want       int
	}{
		{shifttypes.StrategyReference, 5, 5, Config{}, 25},
		{shifttypes.StrategyWhole, 8, 8, Config{}, 16},
		{shifttypes.StrategyPow2, 8, 8, Config{}, 16},
		{shifttypes.StrategyRows, 8, 8, Config{}, 4},
		{shifttypes.StrategyBlocks, 8, 8, Config{Tile: 2}, 4},
		{shifttypes.StrategyBlocks, 8, 8, Config{Tile: 64}, 16},
		// Budget below half a row: the element-run path uses budget/elem.
		{shifttypes.StrategyChunked, 1024, 1024, Config{Budget: 1 << 10}, 128},
		// Budget covers two half-rows: two-row bands.
		{shifttypes.StrategyChunked, 1024, 1024, Config{Budget: 2 * 512 * 8}, 1024},
	}

	for _, tt := range tests {
		got := ScratchLen(tt.strategy, tt.rows, tt.cols, 8, tt.cfg)
		if got != tt.want {
			t.Errorf("ScratchLen(%v, %d, %d, %+v) = %d, want %d", tt.strategy, tt.rows, tt.cols, tt.cfg, got, tt.want)
		}
	}
}
