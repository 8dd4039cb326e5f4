package grid

import (
	"errors"
	"testing"
)

func TestNewStridedBufferValidation(t *testing.T) {
	t.Parallel()

	data := make([]float32, 64)

	tests := []struct {
		name               string
		rows, cols, stride int
		wantErr            error
	}{
		{"compact", 8, 8, 8, nil},
		{"padded", 7, 6, 9, nil},
		{"zero rows", 0, 8, 8, ErrInvalidDimensions},
		{"negative cols", 8, -1, 8, ErrInvalidDimensions},
		{"stride below cols", 8, 8, 7, ErrInvalidStride},
		{"too short", 9, 8, 8, ErrLengthMismatch},
		{"padded too short", 8, 8, 9, ErrLengthMismatch},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewStridedBuffer(data, tt.rows, tt.cols, tt.stride)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewStridedBufferEmptyData(t *testing.T) {
	t.Parallel()

	// Empty data is a legal no-op view regardless of the requested shape.
	for _, data := range [][]float32{nil, {}} {
		buf, err := NewStridedBuffer(data, 8, 8, 8)
		if err != nil {
			t.Fatalf("empty data: %v", err)
		}

		if !buf.Empty() {
			t.Error("expected empty view")
		}
	}
}

func TestCopyOutCopyInRoundTrip(t *testing.T) {
	t.Parallel()

	// 4x5 buffer with stride 6; the rect sits off-origin.
	data := make([]int32, 4*6)
	for i := range data {
		data[i] = int32(i)
	}

	buf, err := NewStridedBuffer(data, 4, 5, 6)
	if err != nil {
		t.Fatal(err)
	}

	r := Rect{X: 2, Y: 1, W: 3, H: 2}

	out := make([]int32, r.Area())
	CopyOut(buf, r, out)

	want := []int32{8, 9, 10, 14, 15, 16}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("CopyOut[%d] = %d, want %d", i, out[i], want[i])
		}
	}

	for i := range out {
		out[i] += 100
	}

	CopyIn(buf, r, out)

	if data[8] != 108 || data[16] != 116 {
		t.Errorf("CopyIn did not write through: %v", data)
	}

	// Elements outside the rect stay put.
	if data[7] != 7 || data[11] != 11 {
		t.Errorf("CopyIn touched elements outside the rect: %v", data)
	}
}

func TestCopyRect(t *testing.T) {
	t.Parallel()

	data := make([]uint8, 16)
	for i := range data {
		data[i] = uint8(i)
	}

	buf, err := NewBuffer(data, 4, 4)
	if err != nil {
		t.Fatal(err)
	}

	CopyRect(buf, Rect{X: 0, Y: 0, W: 2, H: 2}, Rect{X: 2, Y: 2, W: 2, H: 2})

	if data[0] != 10 || data[1] != 11 || data[4] != 14 || data[5] != 15 {
		t.Errorf("CopyRect: %v", data)
	}
}

func TestIsPowerOf2(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 64, 1024, 1 << 20} {
		if !IsPowerOf2(n) {
			t.Errorf("IsPowerOf2(%d) = false", n)
		}
	}

	for _, n := range []int{0, -1, -4, 3, 6, 12, 100, 1<<20 + 1} {
		if IsPowerOf2(n) {
			t.Errorf("IsPowerOf2(%d) = true", n)
		}
	}
}

func TestLog2(t *testing.T) {
	t.Parallel()

	for exp := 0; exp < 20; exp++ {
		if got := Log2(1 << exp); got != exp {
			t.Errorf("Log2(%d) = %d, want %d", 1<<exp, got, exp)
		}
	}
}
