// Package lattice models the bounded 2-D integer grid that walks move over.
//
// What:
//
//   - Lattice is an implicit W×H grid: cell (x,y) exists iff 0 ≤ x < W and
//     0 ≤ y < H. No per-cell objects are stored.
//   - Point is an immutable (X,Y) value type.
//   - Neighbors enumerates the 4 axis-aligned neighbors that lie on the lattice.
//   - VisitedSet is a row-major flag array, one per walk run.
//
// Bounds first:
//
//	Every lookup checks bounds before touching the VisitedSet, so a
//	coordinate off the lattice is never used as an index.
//
// Complexity:
//
//   - New, InBounds, Index, Coordinate, Neighbors: O(1).
//   - NewVisitedSet: O(W×H) time and memory; Visit and Visited are O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive, or W×H overflows int.
package lattice
