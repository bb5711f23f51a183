package attribute

import "github.com/katalvlaran/maxtree/mtcore"

// Area computes the *area* attribute over a max-tree: A[p] is the number of
// pixels in the component rooted at p (for canonical nodes); A[p] for a
// non-canonical p is absorbed into its ancestor and left unspecified but
// harmless, per spec §3. image is accepted (unused beyond a length check)
// to match the engine's external interface (spec §6), which threads the
// image through every stage uniformly.
//
// Algorithm: initialize A[p]=1 for every pixel, then walk sortedIndices in
// reverse. Because parent[p] always has equal-or-lower intensity than p
// (the tree's core invariant), and sortedIndices orders pixels by ascending
// intensity, walking in reverse guarantees every pixel is visited and
// folded into its parent's total before that parent is itself folded
// further up — a single backward pass suffices. For each non-root p,
// A[Parent[p]] += A[p]; the root accumulates the grand total.
func Area[T mtcore.Number](image []T, parent []int64, sortedIndices []int64) ([]float64, error) {
	p := len(parent)
	if len(image) != p || len(sortedIndices) != p {
		return nil, ErrLengthMismatch
	}

	area := make([]float64, p)
	for i := range area {
		area[i] = 1
	}

	for i := p - 1; i >= 0; i-- {
		pixel := sortedIndices[i]
		par := parent[pixel]
		if par == pixel {
			continue // root: nothing further to push up
		}
		area[par] += area[pixel]
	}

	return area, nil
}
