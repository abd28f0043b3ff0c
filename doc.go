// Package hexaspect grows chains of compatible "aspect" labels across a
// bounded hexagonal grid until every seeded cell belongs to one connected
// region.
//
// 🚀 What is hexaspect?
//
//	A small, deterministic, single-threaded solver built from:
//		• catalog:      label declarations, derived weights, embedded aspect table
//		• labelgraph:   immutable compatibility graph + weight tables
//		• hexgrid:      3-axis hex coordinates, canonical fold, cached adjacency
//		• distfield:    per-seed distance fields and their weighted aggregate
//		• connectivity: union-find grouping under the compatibility rule
//		• growth:       the step-by-step engine (Idle → Growing → Connected)
//		• layout:       JSON/YAML seed documents applied to a grid
//
// Two labels are compatible when one is a component of the other. Two
// labelled cells are connected when they are grid neighbours with compatible
// labels, or are linked by a chain of such pairs.
//
// Quick example (radius 1, lux = aer + ignis):
//
//	      ignis
//	   .   lux   .      aer at 0,0,1 and ignis at 1,1,0 are joined
//	      aer           by one lux placed at the centre.
//
// From the command line:
//
//	go run ./cmd/hexaspect solve --layout seeds.json
package hexaspect
