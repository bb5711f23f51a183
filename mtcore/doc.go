// Package mtcore defines the shared data model and sentinel error taxonomy
// used across the maxtree engine: neighborhood, maxtree, attribute, filter,
// and the ordering supplement.
//
// Errors:
//
//	ErrPreconditionViolation - caller-supplied input violates a documented
//	                           precondition (bad mask, non-permutation, zero
//	                           offset, unsupported dtype).
//	ErrShapeMismatch         - array lengths disagree, or offsets are
//	                           inconsistent with shape.
//	ErrInternal              - reserved for an invariant the engine itself is
//	                           responsible for, as opposed to a caller
//	                           mistake. Currently unused: find_root's
//	                           iterative design (DESIGN.md "Open Questions")
//	                           has no failure mode of its own to report, so
//	                           no package wraps this sentinel today. Kept for
//	                           the taxonomy's symmetry and for a future
//	                           internal check to wrap without inventing a new
//	                           base category.
//
// Every package-specific sentinel below wraps one of ErrPreconditionViolation
// or ErrShapeMismatch via %w, so callers can branch coarsely with
// errors.Is(err, mtcore.ErrShapeMismatch) or finely with
// errors.Is(err, neighborhood.ErrOffsetOutOfRange).
package mtcore
