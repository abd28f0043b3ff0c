// Package labelgraph materialises the compatibility relation of a catalog as
// an immutable adjacency structure, together with the weight tables the
// solver charges per label.
//
// What:
//
//   - Graph: built once from a *catalog.Catalog. Label A is adjacent to B iff
//     A is a component of B or B is a component of A. No label is adjacent to
//     itself.
//   - Weights: an immutable label → cost table, the catalog defaults with
//     optional per-run overrides.
//
// Iteration order:
//
//	Labels() and Neighbors() are sorted by name. Every solver loop over labels
//	uses this order, which makes tie-breaking reproducible.
//
// Complexity:
//
//   - New:        O(L log L + C) time, O(L + C) memory.
//   - Neighbors:  O(1) (shared slice, do not mutate).
//   - Compatible: O(1).
package labelgraph
