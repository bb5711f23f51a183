package attribute

import (
	"fmt"

	"github.com/katalvlaran/maxtree/mtcore"
)

// ErrLengthMismatch indicates image, parent, and sortedIndices do not all
// share the same length.
var ErrLengthMismatch = fmt.Errorf("attribute: array length mismatch: %w", mtcore.ErrShapeMismatch)
