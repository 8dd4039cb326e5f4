package shift

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-fftshift/internal/grid"
)

// DefaultTolerance returns the comparison tolerance used when the caller does
// not supply one: 1e-6 for float and complex element types, exact equality
// for integers.
func DefaultTolerance[T grid.Element]() float64 {
	var zero T

	switch any(zero).(type) {
	case float32, float64, complex64, complex128:
		return 1e-6
	default:
		return 0
	}
}

// Compare reports the maximum absolute elementwise difference between a and b
// and whether it stays within tol. Neither buffer is modified. The buffers
// must agree in rows and cols (strides may differ); otherwise
// ErrShapeMismatch. Two empty buffers compare equal.
func Compare[T grid.Element](a, b grid.Buffer[T], tol float64) (maxDiff float64, ok bool, err error) {
	if a.Empty() && b.Empty() {
		return 0, true, nil
	}

	if a.Rows != b.Rows || a.Cols != b.Cols {
		return 0, false, grid.ErrShapeMismatch
	}

	for y := 0; y < a.Rows; y++ {
		ra := a.Row(y, 0, a.Cols)
		rb := b.Row(y, 0, b.Cols)

		for x := 0; x < a.Cols; x++ {
			if d := absDiff(ra[x], rb[x]); d > maxDiff {
				maxDiff = d
			}
		}
	}

	return maxDiff, maxDiff <= tol, nil
}

// absDiff returns |a-b| as a float64 for any supported element type.
func absDiff[T grid.Element](a, b T) float64 {
	switch x := any(a).(type) {
	case complex64:
		y, _ := any(b).(complex64)
		return cmplx.Abs(complex128(x) - complex128(y))
	case complex128:
		y, _ := any(b).(complex128)
		return cmplx.Abs(x - y)
	case float32:
		y, _ := any(b).(float32)
		return math.Abs(float64(x) - float64(y))
	case float64:
		y, _ := any(b).(float64)
		return math.Abs(x - y)
	case int8:
		y, _ := any(b).(int8)
		return intAbsDiff(int64(x), int64(y))
	case int16:
		y, _ := any(b).(int16)
		return intAbsDiff(int64(x), int64(y))
	case int32:
		y, _ := any(b).(int32)
		return intAbsDiff(int64(x), int64(y))
	case int64:
		y, _ := any(b).(int64)
		return intAbsDiff(x, y)
	case uint8:
		y, _ := any(b).(uint8)
		return uintAbsDiff(uint64(x), uint64(y))
	case uint16:
		y, _ := any(b).(uint16)
		return uintAbsDiff(uint64(x), uint64(y))
	case uint32:
		y, _ := any(b).(uint32)
		return uintAbsDiff(uint64(x), uint64(y))
	case uint64:
		y, _ := any(b).(uint64)
		return uintAbsDiff(x, y)
	default:
		return 0
	}
}

func intAbsDiff(a, b int64) float64 {
	if a > b {
		return float64(a) - float64(b)
	}

	return float64(b) - float64(a)
}

func uintAbsDiff(a, b uint64) float64 {
	if a > b {
		return float64(a - b)
	}

	return float64(b - a)
}
