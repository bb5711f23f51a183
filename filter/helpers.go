package filter

// validateLengths checks that image, parent, sortedIndices, and attr all
// share the same length, returning ErrLengthMismatch otherwise.
func validateLengths[T Number](image []T, parent, sortedIndices []int64, attr []float64) error {
	n := len(image)
	if len(parent) != n || len(sortedIndices) != n || len(attr) != n {
		return ErrLengthMismatch
	}

	return nil
}

// applyRootRule sets output[p] for every self-parented pixel p, shared by
// Direct and CutFirst (spec §4.4: "Root handling (both variants)").
func applyRootRule[T Number](image []T, parent []int64, attr []float64, threshold float64, output []T) {
	for p, par := range parent {
		if int(par) != p {
			continue
		}
		if attr[p] < threshold {
			output[p] = 0
		} else {
			output[p] = image[p]
		}
	}
}
