package filter

// CutFirst reconstructs a filtered image the same way Direct does, except
// it additionally remembers whether any ancestor on the current branch was
// already cut (Output[q] < image[q]) and, if so, keeps propagating the cut
// regardless of this node's own attribute. This makes CutFirst correct even
// when attr is non-increasing along a branch — Direct would incorrectly
// reinstate a higher level whose own attribute happens to clear the
// threshold again further down a branch that was already pruned above it.
//
// Root handling: identical to Direct.
//
// Per-pixel rule for every other pixel p (q = parent[p]):
//   - image[p] == image[q]: Output[p] = Output[q].
//   - attr[p] < threshold OR Output[q] < image[q] (ancestor already cut):
//     Output[p] = Output[q].
//   - otherwise: Output[p] = image[p].
func CutFirst[T Number](image []T, parent, sortedIndices []int64, attr []float64, threshold float64) ([]T, error) {
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
		case attr[p] < threshold || output[q] < image[q]:
			output[p] = output[q]
		default:
			output[p] = image[p]
		}
	}

	return output, nil
}
