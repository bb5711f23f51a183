package filter

// Direct reconstructs a filtered image by pruning every node whose
// attribute falls below threshold, flooding its level down to its parent's
// reconstructed value. Correct when attr is increasing along every
// root-to-leaf path (e.g. area): once a branch is confirmed to survive at
// some level, every level above it on the same branch also survives, so a
// purely local per-pixel decision (this node's own attribute vs threshold)
// is sound without remembering ancestor decisions.
//
// Root handling: for every self-parented pixel p, Output[p] = 0 if
// attr[p] < threshold, else Output[p] = image[p].
//
// Per-pixel rule for every other pixel p (q = parent[p]):
//   - image[p] == image[q] (non-canonical): Output[p] = Output[q].
//   - attr[p] < threshold: Output[p] = Output[q].
//   - otherwise: Output[p] = image[p].
func Direct[T Number](image []T, parent, sortedIndices []int64, attr []float64, threshold float64) ([]T, error) {
	if err := validateLengths(image, parent, sortedIndices, attr); err != nil {
		return nil, err
	}

	output := make([]T, len(image))
	applyRootRule(image, parent, attr, threshold, output)

	for _, p := range sortedIndices {
		q := parent[p]
		if q == p {
			continue // root: already handled
		}

		switch {
		case image[p] == image[q]:
			output[p] = output[q]
		case attr[p] < threshold:
			output[p] = output[q]
		default:
			output[p] = image[p]
		}
	}

	return output, nil
}
