package neighborhood

import (
	"github.com/katalvlaran/maxtree/mtcore"
)

// Points is a K×D table of per-dimension coordinate deltas, one row per
// connectivity offset. Points[k] is the displacement a pixel's coordinates
// must be shifted by to reach the k-th neighbor.
type Points [][]int

// OffsetsToPoints converts a Connectivity (K signed raveled offsets) into a
// Points delta table for the given shape.
//
// neg_shift = -min(offsets) shifts every offset into the non-negative range;
// unravel(neg_shift, shape) is then a fixed reference coordinate ("center").
// For each offset o, the delta row is
// unravel(o+neg_shift, shape) - center — unraveling the shifted offset and
// subtracting the common center recovers the per-dimension displacement,
// which a direct unravel(o, shape) cannot: unraveling a negative or
// wrap-prone raw offset is ambiguous on its own. The center itself can sit
// at the start of a row (e.g. offsets {-W,+W,-1,+1} put it at (1,0)), so a
// component that lands more than half its extent away is then folded into
// the next-slower dimension: (-1, W-1) becomes (0, -1).
//
// Returns ErrZeroOffset if any offset is exactly zero, and
// ErrOffsetOutOfRange if any o+neg_shift falls outside [0, P).
func OffsetsToPoints(offsets []int64, shape mtcore.Shape) (Points, error) {
	p := shape.Len()

	minOffset := offsets[0]
	for _, o := range offsets {
		if o == 0 {
			return nil, ErrZeroOffset
		}
		if o < minOffset {
			minOffset = o
		}
	}
	negShift := -minOffset

	centerIdx := int(negShift)
	if centerIdx < 0 || centerIdx >= p {
		return nil, ErrOffsetOutOfRange
	}
	center := shape.Unravel(centerIdx)

	points := make(Points, len(offsets))
	for k, o := range offsets {
		shifted := int(o + negShift)
		if shifted < 0 || shifted >= p {
			return nil, ErrOffsetOutOfRange
		}
		coords := shape.Unravel(shifted)
		delta := make([]int, len(shape))
		for d := range delta {
			delta[d] = coords[d] - center[d]
		}
		for d := len(delta) - 1; d > 0; d-- {
			if 2*delta[d] > shape[d] {
				delta[d] -= shape[d]
				delta[d-1]++
			} else if -2*delta[d] > shape[d] {
				delta[d] += shape[d]
				delta[d-1]--
			}
		}
		points[k] = delta
	}

	return points, nil
}

// IsValid reports whether the neighbor reached by displacing index's
// coordinates by delta remains inside shape's bounds. index is unraveled to
// coordinates c; the result is true iff 0 <= c[d]+delta[d] < shape[d] for
// every dimension d.
//
// Callers should only invoke IsValid for pixels marked as border (Mask=0);
// interior pixels are guaranteed by the mask contract to have every neighbor
// in bounds and need no check.
func IsValid(index int, delta []int, shape mtcore.Shape) bool {
	coords := shape.Unravel(index)
	for d, c := range coords {
		nc := c + delta[d]
		if nc < 0 || nc >= shape[d] {
			return false
		}
	}

	return true
}
