package ordering_test

import (
	"testing"

	"github.com/katalvlaran/maxtree/ordering"
	"github.com/stretchr/testify/require"
)

func TestStableAscending(t *testing.T) {
	image := []int32{1, 3, 3, 2, 1, 4, 4, 1}
	idx := ordering.Stable(image)
	require.Len(t, idx, len(image))

	for i := 1; i < len(idx); i++ {
		require.LessOrEqual(t, image[idx[i-1]], image[idx[i]])
	}
}

func TestStableTiesBreakByOriginalIndex(t *testing.T) {
	image := []float64{5, 5, 5}
	idx := ordering.Stable(image)
	require.Equal(t, []int64{0, 1, 2}, idx)
}

func TestStablePermutation(t *testing.T) {
	image := []uint8{9, 1, 4, 4, 2, 9, 0}
	idx := ordering.Stable(image)
	seen := make(map[int64]bool, len(idx))
	for _, i := range idx {
		require.False(t, seen[i], "duplicate index %d", i)
		seen[i] = true
	}
	require.Len(t, seen, len(image))
}
