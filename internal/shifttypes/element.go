package shifttypes

// Element is the type constraint for buffer element types supported by the
// relocation engine. Quadrant relocation is pure memory movement, so every
// fixed-size machine type qualifies; only the equivalence oracle needs to
// distinguish integer, float, and complex elements.
type Element interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		complex64 | complex128
}
