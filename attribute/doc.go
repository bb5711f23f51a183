// Package attribute computes per-node scalar attributes over a max-tree,
// for use by the filter package's pruning rules.
//
// Area accumulates subtree pixel counts by a single reverse-order pass over
// the tree, the accumulation pattern grounded on prim_kruskal.Kruskal's
// single forward pass building up a running total weight — here the running
// total is per-node subtree size instead of a single scalar.
//
// Area is the only attribute this package ships, per the spec's non-goal
// restricting the production attribute library to area alone. It is also,
// by construction, always increasing along every root-to-leaf path: a
// child's pixel set is always a subset of its parent's, so its count can
// only be smaller or equal. filter.CutFirst's non-increasing-attribute
// branch is exercised with hand-built attribute arrays in filter's own
// tests instead — no set-derived attribute can fail to be increasing, so a
// genuine counter-example cannot be a legitimate library function here.
package attribute
