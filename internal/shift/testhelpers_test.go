package shift

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-fftshift/internal/grid"
)

// Shared helpers for the relocation tests.

// seqBuffer returns a compact rows x cols buffer filled with sequential
// values 0, 1, 2, ... in row-major order.
func seqBuffer(t *testing.T, rows, cols int) grid.Buffer[float64] {
	t.Helper()

	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = float64(i)
	}

	buf, err := grid.NewBuffer(data, rows, cols)
	if err != nil {
		t.Fatalf("NewBuffer(%d, %d): %v", rows, cols, err)
	}

	return buf
}

// randBuffer returns a compact rows x cols buffer with reproducible random
// contents.
func randBuffer(t *testing.T, rows, cols int, seed int64) grid.Buffer[float64] {
	t.Helper()

	rnd := rand.New(rand.NewSource(seed))

	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rnd.Float64()
	}

	buf, err := grid.NewBuffer(data, rows, cols)
	if err != nil {
		t.Fatalf("NewBuffer(%d, %d): %v", rows, cols, err)
	}

	return buf
}

// cloneBuffer deep-copies a compact buffer.
func cloneBuffer(t *testing.T, buf grid.Buffer[float64]) grid.Buffer[float64] {
	t.Helper()

	data := make([]float64, len(buf.Data))
	copy(data, buf.Data)

	out, err := grid.NewStridedBuffer(data, buf.Rows, buf.Cols, buf.Stride)
	if err != nil {
		t.Fatal(err)
	}

	return out
}

// shiftedModel returns the expected relocation result computed independently
// of any mover: the relocation map is equivalent to a circular shift of every
// element by (rows/2, cols/2).
func shiftedModel(buf grid.Buffer[float64]) []float64 {
	rows, cols := buf.Rows, buf.Cols
	cy, cx := rows/2, cols/2

	out := make([]float64, rows*cols)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			out[((y+cy)%rows)*cols+(x+cx)%cols] = buf.Data[y*buf.Stride+x]
		}
	}

	return out
}

// assertBuffersEqual fails unless a and b hold identical elements.
func assertBuffersEqual(t *testing.T, got, want grid.Buffer[float64]) {
	t.Helper()

	diff, ok, err := Compare(got, want, 0)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	if !ok {
		t.Fatalf("buffers differ: max abs diff %v", diff)
	}
}

func assertDataEqual(t *testing.T, got, want []float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: %d vs %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
