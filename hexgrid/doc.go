// Package hexgrid builds the bounded hexagonal grid the solver works on and
// resolves 6-neighbour adjacency in its folded coordinate form.
//
// What:
//
//   - Coord: an (x, y, z) triple in canonical form, where at least one
//     component is zero and every component lies in [0, R].
//   - Grid: the 3R²+3R+1 cells of radius R, each with an Enabled flag and an
//     optional assigned label.
//
// Coordinates:
//
//	The three axes are 120° apart, so (1,1,1) is the same place as (0,0,0).
//	Fold maps a raw step back to canonical form:
//
//	  - any component negative       → add 1 to all three
//	  - all three strictly positive  → subtract 1 from all three
//	  - otherwise                    → unchanged
//
//	The origin's six neighbours are therefore (1,0,0), (0,1,0), (0,0,1),
//	(0,1,1), (1,0,1) and (1,1,0).
//
// Cell ids:
//
//	Ids are dense indices in generation order: the origin first, then for
//	i ∈ [0,R] and j ∈ [1,R] the cells (0,i,j), (j,0,i), (i,j,0). The solver's
//	lowest-cell-id tie-break refers to this order.
//
// Errors:
//
//   - ErrBadRadius     radius < 0.
//   - ErrCellNotFound  coordinate or id outside the grid.
//   - ErrCellDisabled  a label was assigned to a disabled cell.
//
// Complexity:
//
//   - New:       O(R²) time and memory, neighbours cached once.
//   - Lookup:    O(1).
//   - Neighbors: O(1) (at most six entries).
package hexgrid
