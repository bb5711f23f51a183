package filter

import "github.com/katalvlaran/maxtree/mtcore"

// Number re-exports mtcore.Number so callers of this package's generic
// functions do not need to import mtcore directly just to spell the
// constraint.
type Number = mtcore.Number

// Variant selects which pruning strategy Compute dispatches to.
type Variant int

const (
	// VariantDirect selects Direct: correct for increasing attributes.
	VariantDirect Variant = iota
	// VariantCutFirst selects CutFirst: correct for any attribute,
	// including non-increasing ones.
	VariantCutFirst
)

// Options configures Compute: which variant to run and at what threshold.
type Options struct {
	// Variant selects Direct or CutFirst.
	Variant Variant
	// Threshold is the attribute cutoff: nodes with attribute < Threshold
	// are pruned (their level is replaced by their parent's reconstructed
	// value).
	Threshold float64
}

// Option configures Options. All Option functions modify the pointed
// Options in place.
type Option func(*Options)

// WithVariant returns an Option that sets which filter variant Compute runs.
func WithVariant(v Variant) Option {
	return func(o *Options) { o.Variant = v }
}

// WithThreshold returns an Option that sets the attribute pruning threshold.
func WithThreshold(threshold float64) Option {
	return func(o *Options) { o.Threshold = threshold }
}

// DefaultOptions returns Options initialized to VariantDirect with a
// Threshold of 0 (spec §8: threshold=0 returns the input unchanged for
// either variant).
func DefaultOptions() Options {
	return Options{
		Variant:   VariantDirect,
		Threshold: 0,
	}
}

// Compute selects and runs the filter variant named by opts.Variant.
//
//   - VariantDirect:   calls Direct.
//   - VariantCutFirst: calls CutFirst.
//   - anything else:   returns ErrUnknownVariant.
//
// Note: this is optional scaffolding — Direct and CutFirst can still be
// called directly.
func Compute[T Number](image []T, parent, sortedIndices []int64, attr []float64, opts Options) ([]T, error) {
	switch opts.Variant {
	case VariantDirect:
		return Direct(image, parent, sortedIndices, attr, opts.Threshold)
	case VariantCutFirst:
		return CutFirst(image, parent, sortedIndices, attr, opts.Threshold)
	default:
		return nil, ErrUnknownVariant
	}
}
