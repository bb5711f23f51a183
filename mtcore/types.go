package mtcore

// Number bounds the scalar element types the engine supports: 8-, 16-, 32-
// and 64-bit signed and unsigned integers, and both floating-point widths.
// The platform-sized int and uint are not in the set.
// The engine requires only a total order and an additive zero from this set
// (spec §9), both of which every listed type provides natively.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Shape is an ordered sequence of D positive dimension extents. The product
// of its elements is P, the flat pixel count. Pixels are addressed as a flat
// sequence of length P in row-major (C) order: the last dimension varies
// fastest.
type Shape []int

// Len returns P, the product of all dimension extents. Len of an empty
// Shape is 1 (the empty product), matching a 0-D scalar image.
func (s Shape) Len() int {
	p := 1
	for _, d := range s {
		p *= d
	}

	return p
}

// Unravel converts a flat row-major index into per-dimension coordinates.
// idx must be in [0, s.Len()); callers at the package boundary are expected
// to have already validated that range, so Unravel itself never errors.
func (s Shape) Unravel(idx int) []int {
	coords := make([]int, len(s))
	for d := len(s) - 1; d >= 0; d-- {
		extent := s[d]
		coords[d] = idx % extent
		idx /= extent
	}

	return coords
}

// Ravel converts per-dimension coordinates back into a flat row-major index.
// It does not bounds-check coords against s; callers needing a validity
// check should use neighborhood.IsValid instead.
func (s Shape) Ravel(coords []int) int {
	idx := 0
	for d := 0; d < len(s); d++ {
		idx = idx*s[d] + coords[d]
	}

	return idx
}
