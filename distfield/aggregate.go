package distfield

import "github.com/katalvlaran/hexaspect/labelgraph"

// Aggregate combines fields into one:
//
//	agg(c, L) = Σᵢ fieldᵢ(c, L) − (N−1)·w(L)
//
// which is the sum with the destination weight subtracted once per field and
// re-added once. A cell row is present only if every field covers the cell.
// The result is Inf wherever any field is Inf, and totals that reach Inf are
// capped to it.
func Aggregate(fields []*Field, w *labelgraph.Weights) (*Field, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	if w == nil {
		return nil, ErrNilInput
	}
	first := fields[0]
	for _, f := range fields[1:] {
		if f.Len() != first.Len() || len(f.labels) != len(first.labels) {
			return nil, ErrShapeMismatch
		}
	}

	n := int64(len(fields))
	agg := newField(first.labels, first.index, first.Len())
	for id := range first.costs {
		covered := true
		for _, f := range fields {
			if !f.Covers(id) {
				covered = false
				break
			}
		}
		if !covered {
			continue
		}

		row := make([]int64, len(first.labels))
		for l := range row {
			var sum int64
			reachable := true
			for _, f := range fields {
				c := f.costs[id][l]
				if c >= Inf {
					reachable = false
					break
				}
				sum += c
			}
			sum -= (n - 1) * w.At(l)
			if !reachable || sum >= Inf {
				row[l] = Inf
				continue
			}
			row[l] = sum
		}
		agg.costs[id] = row
	}

	return agg, nil
}
