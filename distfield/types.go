package distfield

import (
	"errors"
	"sort"
)

// Inf is the "unreachable" sentinel. It is never a real cost, and any
// candidate cost reaching it is discarded.
const Inf int64 = 99999

// Sentinel errors for field computation.
var (
	// ErrNilInput indicates a nil grid, label graph or weight table.
	ErrNilInput = errors.New("distfield: grid, label graph and weights are required")

	// ErrSeedNotAssigned indicates a seed cell without a label.
	ErrSeedNotAssigned = errors.New("distfield: seed cell has no label")

	// ErrNoFields indicates Aggregate was called without fields.
	ErrNoFields = errors.New("distfield: no fields to aggregate")

	// ErrShapeMismatch indicates fields over different grids or label sets.
	ErrShapeMismatch = errors.New("distfield: fields have different shapes")
)

// Field maps cell id → label → cost. Rows of disabled cells are nil.
type Field struct {
	labels []string // label order of the owning graph
	index  map[string]int
	costs  [][]int64

	// Seed is the id of the seeded cell, or -1 for an aggregate.
	Seed int

	// Rounds is the number of worklist rounds Solve needed.
	Rounds int
}

func newField(labels []string, index map[string]int, cells int) *Field {
	return &Field{
		labels: labels,
		index:  index,
		costs:  make([][]int64, cells),
		Seed:   -1,
	}
}

// Len returns the number of cell rows (covered or not).
func (f *Field) Len() int { return len(f.costs) }

// Labels returns the label order of the field.
func (f *Field) Labels() []string { return append([]string(nil), f.labels...) }

// Covers reports whether the field has a row for cell id.
func (f *Field) Covers(id int) bool {
	return id >= 0 && id < len(f.costs) && f.costs[id] != nil
}

// At returns the cost at (cell id, label index), or Inf if the cell is not covered.
func (f *Field) At(id, label int) int64 {
	if !f.Covers(id) {
		return Inf
	}
	return f.costs[id][label]
}

// Cost returns the cost at (cell id, label), or Inf for unknown labels and
// uncovered cells.
func (f *Field) Cost(id int, label string) int64 {
	i, ok := f.index[label]
	if !ok {
		return Inf
	}
	return f.At(id, i)
}

// Breakdown returns the finite label → cost entries of cell id.
func (f *Field) Breakdown(id int) map[string]int64 {
	if !f.Covers(id) {
		return nil
	}
	out := make(map[string]int64)
	for i, c := range f.costs[id] {
		if c < Inf {
			out[f.labels[i]] = c
		}
	}
	return out
}

// Entry is one finite (label, cost) pair of a cell.
type Entry struct {
	Label string
	Cost  int64
}

// Ranked returns the finite entries of cell id ordered by cost, then label.
func (f *Field) Ranked(id int) []Entry {
	if !f.Covers(id) {
		return nil
	}
	var out []Entry
	for i, c := range f.costs[id] {
		if c < Inf {
			out = append(out, Entry{Label: f.labels[i], Cost: c})
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Cost != out[b].Cost {
			return out[a].Cost < out[b].Cost
		}
		return out[a].Label < out[b].Label
	})
	return out
}
