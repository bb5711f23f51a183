package maxtree

import (
	"fmt"

	"github.com/katalvlaran/maxtree/mtcore"
)

// ErrLengthMismatch indicates image, mask, and sortedIndices do not all have
// length shape.Len().
var ErrLengthMismatch = fmt.Errorf("maxtree: array length disagrees with shape: %w", mtcore.ErrShapeMismatch)

// ErrNotPermutation indicates sortedIndices is not a permutation of
// [0, shape.Len()): some index is out of range, or some index repeats.
var ErrNotPermutation = fmt.Errorf("maxtree: sortedIndices is not a permutation: %w", mtcore.ErrPreconditionViolation)
