// Package ordering supplies a default SortedIndices producer for the
// maxtree engine.
//
// The engine packages (maxtree, attribute, filter) deliberately never sort:
// spec §9 calls this separation out explicitly so that callers remain free
// to choose their own tie-breaking policy. This package is the supplement
// that stands in for numpy.argsort from the Python this module was
// distilled from (no direct Go stdlib equivalent exists) — a stable sort by
// intensity, ascending, with ties broken by original index so the result is
// reproducible across runs and platforms.
//
// Grounded on prim_kruskal.Kruskal's sort.SliceStable(edges, ...) call: the
// same "stable sort, deterministic tie order" discipline, applied here to
// pixel intensities instead of edge weights.
package ordering
