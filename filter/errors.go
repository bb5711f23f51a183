package filter

import (
	"fmt"

	"github.com/katalvlaran/maxtree/mtcore"
)

// ErrLengthMismatch indicates image, parent, sortedIndices, and attribute do
// not all share the same length.
var ErrLengthMismatch = fmt.Errorf("filter: array length mismatch: %w", mtcore.ErrShapeMismatch)

// ErrUnknownVariant indicates an Options.Variant value other than
// VariantDirect or VariantCutFirst was requested via Compute.
var ErrUnknownVariant = fmt.Errorf("filter: unknown variant: %w", mtcore.ErrPreconditionViolation)
