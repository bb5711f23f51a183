package neighborhood

import (
	"fmt"

	"github.com/katalvlaran/maxtree/mtcore"
)

// ErrZeroOffset indicates a connectivity entry equal to zero: a pixel cannot
// be its own neighbor.
var ErrZeroOffset = fmt.Errorf("neighborhood: connectivity offset is zero: %w", mtcore.ErrPreconditionViolation)

// ErrOffsetOutOfRange indicates a connectivity offset, once centered, falls
// outside [0, P) for the given shape — the offset is inconsistent with
// shape's strides.
var ErrOffsetOutOfRange = fmt.Errorf("neighborhood: offset inconsistent with shape: %w", mtcore.ErrShapeMismatch)
