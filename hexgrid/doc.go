// Package hexgrid treats a hexagon-shaped board of hexagonal tiles as a graph
// and describes the symmetry groups that act on it.
//
// What:
//
//   - Grid enumerates the 3r²+3r+1 tiles of a board of radius r in axial
//     coordinates (Q, R) and answers adjacency queries.
//   - Every tile has six edges indexed 0..5 counter-clockwise, starting east.
//     Edge i of a tile is shared with edge (i+3) mod 6 of its neighbor in
//     direction i; boundary edges have no neighbor.
//   - Symmetry names a finite group of rotations/reflections about the center
//     tile; Op is one element of such a group and acts on both coordinates and
//     edge indices.
//   - FundamentalDomain picks one representative tile per orbit, the minimal
//     wedge from which the rest of the board is derived by the group.
//   - Components finds connected regions under a caller-defined link relation.
//
// Why:
//
//   - Puzzle generators grow content only on the fundamental domain and derive
//     the rest by symmetry, which keeps seams consistent by construction.
//
// Complexity:
//
//   - New:               O(T) time and memory, T = tile count.
//   - FundamentalDomain: O(T·|G|), G = group order (at most 12).
//   - Components:        O(T·6).
//
// Errors:
//
//   - ErrNegativeRadius:     radius < 0.
//   - ErrSymmetryInfeasible: the radius cannot realize the group exactly.
//   - ErrUnknownSymmetry:    symmetry text does not name a group.
//   - ErrOutOfGrid:          coordinate is not on the board.
package hexgrid
