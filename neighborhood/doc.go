// Package neighborhood translates a flat list of raveled neighbor offsets
// into an explicit per-dimension coordinate delta table, and tests whether a
// given neighbor of a pixel remains inside the image bounds.
//
// What:
//
//   - OffsetsToPoints converts a Connectivity (raveled offsets) into a Points
//     table of per-dimension deltas, generalizing the fixed 2-D neighbor
//     offset tables of this codebase's ancestor gridgraph package
//     ({0,-1},{1,0},... for 4-/8-connectivity) to an arbitrary Shape.
//   - IsValid bounds-checks a single neighbor displacement against Shape,
//     generalizing gridgraph.InBounds from an (x,y) pair to D coordinates.
//
// Why:
//
//   - A raveled offset like -W or +1 is ambiguous on its own: the same
//     integer can mean "one row up" or "wrap across a row boundary"
//     depending on where in the grid it is applied. Centering the offset on
//     a fixed reference point, differencing unravel(offset+center) -
//     unravel(center), and folding back any component that wrapped across
//     a row boundary recovers the true, position-independent per-dimension
//     displacement once, up front, instead of re-deriving it per pixel.
//
// Errors:
//
//   - ErrZeroOffset: a connectivity entry is exactly zero (a pixel cannot be
//     its own neighbor).
//   - ErrOffsetOutOfRange: o+neg_shift falls outside [0, P) for some offset o,
//     meaning the offset is inconsistent with the given shape.
package neighborhood
