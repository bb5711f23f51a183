// Package filter prunes a max-tree by a per-node attribute and reconstructs
// a filtered image of the same shape and dtype as the input.
//
// Two variants are provided:
//
//   - Direct: correct when the attribute is increasing along every
//     root-to-leaf path (child attribute <= parent attribute, e.g. area).
//   - CutFirst: correct even for non-increasing attributes; prunes
//     monotonically from the root, remembering once an ancestor has been
//     cut so no descendant is ever reinstated at a higher level.
//
// Both process the tree's root(s) first, then walk SortedIndices forward
// (ascending intensity) so every pixel's parent has already been resolved
// in Output by the time the pixel itself is reached — a consequence of how
// maxtree.Build's canonicalization assigns representatives (see maxtree
// package doc), not an assumption this package re-derives.
//
// Compute/Option/DefaultOptions mirror this codebase's ancestor
// prim_kruskal package's MSTOptions/Option/Compute dispatch, generalized
// from "which MST algorithm" to "which filter variant".
package filter
