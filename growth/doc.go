// Package growth drives the solver: starting from the labelled (seed) cells
// of a grid, it places one (cell, label) pair per step until the labelled
// cells form a single compatibility-connected region.
//
// States:
//
//	Idle ──start──▶ Growing ──step…──▶ Connected
//	  │                 │
//	  └──▶ Connected    └──▶ Failed (ErrUnsolvable)
//
//   - Idle: built by New, nothing computed yet.
//   - Growing: at least one more placement is needed.
//   - Connected: terminal; the filled set is one group.
//   - Failed: terminal; no enabled, empty cell had a finite cost.
//
// Step:
//
//  1. Solve a distance field for every filled cell and aggregate them.
//  2. Among enabled, empty cells pick the minimum finite aggregate cost.
//     Ties go to the first label in name order, then the lowest cell id.
//  3. Assign it on the grid and append it to the filled set.
//  4. Re-check connectivity; one group means Connected.
//
// Pacing belongs to the caller: Step performs exactly one placement, and Run
// loops over Step, checking its context between steps.
//
// Options:
//
//   - WithOnStep(fn):  called after every placement; an error aborts Run.
//   - WithMaxSteps(n): fail with ErrStepLimit after n placements (0 = no limit).
//   - WithFillAll():   keep placing after connectivity is reached, until no
//     finite candidate remains; success still requires one group.
//
// Errors:
//
//   - ErrNilInput         grid, label graph or weights missing.
//   - ErrNoSeeds          the grid has no labelled cell.
//   - ErrUnsolvable       no candidate with a finite cost is left.
//   - ErrStepLimit        MaxSteps placements were made without finishing.
//   - ErrOptionViolation  an invalid option value.
//   - context errors      from Run/Step when the context is done.
//
// Concurrency: an Engine is single-threaded and owns its grid for the length
// of a run; the grid must not be mutated elsewhere until the run ends.
package growth
