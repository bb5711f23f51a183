package mtcore

import "errors"

// Sentinel errors for the three-way taxonomy shared by every maxtree package.
// These are never returned bare; package-specific sentinels wrap one of them
// with fmt.Errorf("...: %w", ...) so errors.Is succeeds against both the
// specific and the coarse sentinel.
var (
	// ErrPreconditionViolation indicates caller-supplied input violates a
	// documented precondition: non-zero mask border, a sorted-indices array
	// that is not a permutation of [0..P), a zero connectivity offset, or an
	// unsupported element dtype.
	ErrPreconditionViolation = errors.New("mtcore: precondition violation")

	// ErrShapeMismatch indicates array lengths disagree with each other or
	// with the product of shape, or that connectivity offsets are
	// inconsistent with shape strides.
	ErrShapeMismatch = errors.New("mtcore: shape mismatch")

	// ErrInternal indicates an invariant the engine itself must maintain was
	// violated. Never caused by caller input; surfaced rather than retried.
	ErrInternal = errors.New("mtcore: internal invariant violated")
)
