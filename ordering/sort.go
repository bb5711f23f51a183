package ordering

import (
	"sort"

	"github.com/katalvlaran/maxtree/mtcore"
)

// Stable returns a permutation of [0..len(image)) sorted by ascending
// intensity, with ties broken by original index (stable). The result
// satisfies the SortedIndices contract required by maxtree.Build:
// image[s[i]] <= image[s[j]] whenever i<j.
func Stable[T mtcore.Number](image []T) []int64 {
	idx := make([]int64, len(image))
	for i := range idx {
		idx[i] = int64(i)
	}

	sort.SliceStable(idx, func(i, j int) bool {
		return image[idx[i]] < image[idx[j]]
	})

	return idx
}
