package shift

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-fftshift/internal/grid"
)

func benchBuffer(b *testing.B, rows, cols int) grid.Buffer[float64] {
	b.Helper()

	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = float64(i)
	}

	buf, err := grid.NewBuffer(data, rows, cols)
	if err != nil {
		b.Fatal(err)
	}

	return buf
}

func BenchmarkMovers(b *testing.B) {
	sizes := []int{64, 256, 1024}

	movers := []struct {
		name string
		run  func(grid.Buffer[float64], []float64) error
	}{
		{"reference", func(buf grid.Buffer[float64], scratch []float64) error {
			return referenceInto(buf, scratch, false)
		}},
		{"whole", wholeInto[float64]},
		{"rows", rowsInto[float64]},
		{"blocks", func(buf grid.Buffer[float64], scratch []float64) error {
			return blocksInto(buf, DefaultTileSize, scratch)
		}},
		{"pow2", pow2Into[float64]},
		{"chunked", func(buf grid.Buffer[float64], scratch []float64) error {
			return chunkedInto(buf, DefaultChunkBudget, scratch)
		}},
	}

	for _, n := range sizes {
		buf := benchBuffer(b, n, n)
		scratch := make([]float64, n*n)

		for _, m := range movers {
			b.Run(fmt.Sprintf("%s/%dx%d", m.name, n, n), func(b *testing.B) {
				b.SetBytes(int64(n * n * 8))

				for i := 0; i < b.N; i++ {
					if err := m.run(buf, scratch); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
