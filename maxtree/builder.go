package maxtree

import (
	"github.com/katalvlaran/maxtree/mtcore"
	"github.com/katalvlaran/maxtree/neighborhood"
)

// Build computes the canonical max-tree Parent array for image over shape,
// using connectivity as the neighbor offset list, mask to mark border
// pixels (0) needing per-neighbor bounds checks versus interior pixels (1)
// whose every raveled neighbor is guaranteed in bounds, and sortedIndices
// as the externally supplied ascending-intensity permutation of [0, P).
//
// Preconditions (spec §6): sortedIndices is a permutation of [0, P) in
// ascending intensity; the mask border is zero; connectivity offsets are
// consistent with shape's row-major strides. Build validates lengths and
// the permutation property itself and returns ErrLengthMismatch /
// ErrNotPermutation on violation; it does not and cannot validate that the
// mask border is actually zero, or that sortedIndices is actually sorted by
// intensity — those are caller obligations whose violation is undefined
// behavior, per spec §4.2's failure semantics (never retried).
//
// Postcondition: the returned Parent is canonical — for every non-root p,
// image[Parent[p]] <= image[p], and if image[Parent[p]] == image[p] then p
// is non-canonical and Parent[p] is the flat-zone's representative.
func Build[T mtcore.Number](image []T, mask []bool, connectivity []int64, shape mtcore.Shape, sortedIndices []int64) ([]int64, error) {
	p := shape.Len()
	if len(image) != p || len(mask) != p || len(sortedIndices) != p {
		return nil, ErrLengthMismatch
	}
	if err := validatePermutation(sortedIndices, p); err != nil {
		return nil, err
	}

	points, err := neighborhood.OffsetsToPoints(connectivity, shape)
	if err != nil {
		return nil, err
	}

	parent := make([]int64, p)
	for i := range parent {
		parent[i] = -1
	}
	z := newZpar(p)

	// Sweep in descending intensity: sortedIndices is ascending, so walk it
	// in reverse (maxima first).
	for i := p - 1; i >= 0; i-- {
		pixel := sortedIndices[i]
		parent[pixel] = pixel
		z[pixel] = pixel

		for k, offset := range connectivity {
			if !mask[pixel] && !neighborhood.IsValid(int(pixel), points[k], shape) {
				continue
			}
			neighbor := pixel + offset
			if parent[neighbor] < 0 {
				// Not yet visited: strictly lower intensity, or an
				// equal-intensity pixel ordered later — skip.
				continue
			}

			root := findRoot(z, neighbor)
			if root != pixel {
				z[root] = pixel
				parent[root] = pixel
			}
		}
	}

	canonize(image, parent, sortedIndices)

	return parent, nil
}

// canonize traverses sortedIndices ascending and collapses each pixel onto
// its parent's canonical representative whenever parent and grandparent
// share the same intensity, establishing the invariant downstream consumers
// (attribute, filter) rely on: every non-root pixel's parent has either the
// same intensity (and is the flat-zone's representative) or a strictly
// lower one.
func canonize[T mtcore.Number](image []T, parent []int64, sortedIndices []int64) {
	for _, pixel := range sortedIndices {
		q := parent[pixel]
		if image[q] == image[parent[q]] {
			parent[pixel] = parent[q]
		}
	}
}

// validatePermutation reports ErrNotPermutation if sortedIndices is not a
// bijection onto [0, p).
func validatePermutation(sortedIndices []int64, p int) error {
	seen := make([]bool, p)
	for _, idx := range sortedIndices {
		if idx < 0 || int(idx) >= p || seen[idx] {
			return ErrNotPermutation
		}
		seen[idx] = true
	}

	return nil
}
