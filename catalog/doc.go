// Package catalog declares the labels ("aspects") the solver places on a grid.
//
// What:
//
//   - Label: a named category with a non-negative integer weight and the
//     component labels it is composed of.
//   - Catalog: an immutable, validated set of labels loaded once per process.
//   - Default: the built-in aspect table (version 4.2.2.0), embedded as YAML.
//
// Weights:
//
//   - A primal label weighs 1 unless an explicit weight is declared.
//   - A composite label weighs the sum of its components' weights, resolved
//     recursively, unless an explicit weight is declared.
//
// Compatibility between labels is the symmetric closure of the component
// relation: A is compatible with B iff A is a component of B or B is a
// component of A. The labelgraph package materialises that relation.
//
// Errors:
//
//   - ErrEmptyName            a label has no name.
//   - ErrDuplicateLabel       two declarations share a name.
//   - ErrPrimalComponents     a primal label declares components.
//   - ErrUndeclaredComponent  a component is not itself declared.
//   - ErrCyclicComposition    the component relation has a cycle.
//   - ErrMissingWeight        a non-primal label has neither components nor weight.
//   - ErrNegativeWeight       an explicit weight is negative.
//
// Complexity:
//
//   - New:  O(L + C) time and memory (L = labels, C = component references).
//   - Get:  O(1).
package catalog
