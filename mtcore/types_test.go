package mtcore_test

import (
	"testing"

	"github.com/katalvlaran/maxtree/mtcore"
	"github.com/stretchr/testify/require"
)

func TestShapeLen(t *testing.T) {
	require.Equal(t, 24, mtcore.Shape{2, 3, 4}.Len())
	require.Equal(t, 8, mtcore.Shape{8}.Len())
	require.Equal(t, 1, mtcore.Shape{}.Len())
}

func TestShapeUnravelRavelRoundTrip(t *testing.T) {
	shape := mtcore.Shape{3, 5, 2}
	for idx := 0; idx < shape.Len(); idx++ {
		coords := shape.Unravel(idx)
		require.Equal(t, idx, shape.Ravel(coords), "round-trip mismatch for idx=%d coords=%v", idx, coords)
	}
}

func TestShapeUnravel2D(t *testing.T) {
	// Row-major: shape {H=3, W=4}; idx = y*W + x.
	shape := mtcore.Shape{3, 4}
	coords := shape.Unravel(6) // y=1, x=2
	require.Equal(t, []int{1, 2}, coords)
}
