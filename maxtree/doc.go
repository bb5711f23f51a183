// Package maxtree builds the canonical max-tree of an N-dimensional scalar
// image: a rooted forest in which every connected component of every upper
// level set {x : I(x) >= h} corresponds to exactly one node, represented as
// a flat Parent array indexed by pixel position.
//
// Algorithm (Berger/Najman style, highest-first sweep with union-find):
//
//  1. Traverse pixels in descending intensity (SortedIndices in reverse).
//     Each pixel starts as a singleton root in a union-find forest (ZPar).
//  2. For each already-visited neighbor, find its union-find root and, if
//     distinct from the current pixel, attach it: the current (higher or
//     equal intensity) pixel adopts the component.
//  3. After the sweep, canonize: walk SortedIndices ascending and collapse
//     each pixel onto its parent's canonical representative whenever they
//     share the same intensity, so every flat-zone has one representative.
//
// This generalizes the iterative, path-compressing find/union closures of
// this codebase's ancestor prim_kruskal.Kruskal (a map[string]string DSU
// over named vertices) to an []int64 DSU over pixel positions, and reuses
// gridgraph's offset-iteration/bounds-check discipline (via the
// neighborhood package) for N dimensions instead of a fixed (x,y) pair.
//
// find_root is implemented iteratively with two-pass path compression
// (spec §9 design note), not recursively: images may reach 10^8 pixels and
// a recursive walk risks exhausting the goroutine stack.
//
// Errors:
//
//	ErrLengthMismatch - image/mask/sortedIndices/shape disagree in length.
//	ErrNotPermutation - sortedIndices is not a permutation of [0, P).
package maxtree
