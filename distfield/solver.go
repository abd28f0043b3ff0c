package distfield

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/katalvlaran/hexaspect/hexgrid"
	"github.com/katalvlaran/hexaspect/labelgraph"
)

// Solver snapshots a grid, its labels and a weight table so that several
// seeds can be solved against the same state. Build a new Solver whenever
// the grid's labels or enabled flags change.
type Solver struct {
	labels  []string
	index   map[string]int
	weights []int64 // by label index
	lnbrs   [][]int // label index → compatible label indices
	adj     [][]int // cell id → enabled neighbour ids
	pins    []int   // cell id → assigned label index, -1 if empty
	enabled []bool
}

// NewSolver captures grid adjacency, assigned labels and weights.
// Every assigned label must be known to lg.
func NewSolver(grid *hexgrid.Grid, lg *labelgraph.Graph, w *labelgraph.Weights) (*Solver, error) {
	if grid == nil || lg == nil || w == nil {
		return nil, ErrNilInput
	}

	labels := lg.Labels()
	s := &Solver{
		labels:  labels,
		index:   make(map[string]int, len(labels)),
		weights: make([]int64, len(labels)),
		lnbrs:   make([][]int, len(labels)),
		adj:     grid.Adjacency(),
		pins:    make([]int, grid.Len()),
		enabled: make([]bool, grid.Len()),
	}
	for i, name := range labels {
		s.index[name] = i
		s.weights[i] = w.At(i)
	}
	for i := range labels {
		for _, nb := range lg.NeighborsAt(i) {
			s.lnbrs[i] = append(s.lnbrs[i], s.index[nb])
		}
	}
	for _, c := range grid.Cells() {
		s.enabled[c.ID] = c.Enabled
		s.pins[c.ID] = -1
		if !c.Enabled || !c.Assigned() {
			continue
		}
		li, ok := s.index[c.Label]
		if !ok {
			return nil, fmt.Errorf("%w: %q at %s", labelgraph.ErrUnknownLabel, c.Label, c.Coord)
		}
		s.pins[c.ID] = li
	}

	return s, nil
}

// Solve is a convenience wrapper: NewSolver followed by Solver.Solve.
func Solve(grid *hexgrid.Grid, lg *labelgraph.Graph, w *labelgraph.Weights, seed int) (*Field, error) {
	s, err := NewSolver(grid, lg, w)
	if err != nil {
		return nil, err
	}
	return s.Solve(seed)
}

// Solve computes the distance field of the seed cell. The seed must be an
// enabled, labelled cell of the snapshot.
func (s *Solver) Solve(seed int) (*Field, error) {
	// 1) Validate the seed.
	if seed < 0 || seed >= len(s.pins) {
		return nil, fmt.Errorf("%w: id %d", hexgrid.ErrCellNotFound, seed)
	}
	if !s.enabled[seed] {
		return nil, fmt.Errorf("%w: id %d", hexgrid.ErrCellDisabled, seed)
	}
	if s.pins[seed] < 0 {
		return nil, fmt.Errorf("%w: id %d", ErrSeedNotAssigned, seed)
	}

	// 2) Initialise every enabled cell to Inf; the seed holds 0 at its label.
	f := newField(s.labels, s.index, len(s.pins))
	f.Seed = seed
	for id, on := range s.enabled {
		if !on {
			continue
		}
		row := make([]int64, len(s.labels))
		for i := range row {
			row[i] = Inf
		}
		f.costs[id] = row
	}
	f.costs[seed][s.pins[seed]] = 0

	// 3) Relax in rounds until no cell improves.
	relaxed := make([]int64, len(s.labels))
	round := []int{seed}
	for len(round) > 0 {
		f.Rounds++
		next := linkedhashset.New()
		for _, id := range round {
			s.relax(f.costs[id], relaxed)
			s.propagate(f, id, seed, relaxed, next)
		}
		round = round[:0]
		for _, v := range next.Values() {
			round = append(round, v.(int))
		}
	}

	return f, nil
}

// relax writes into out the one-hop label relaxation of vec.
func (s *Solver) relax(vec, out []int64) {
	for i := range out {
		out[i] = Inf
	}
	for l1, cost := range vec {
		if cost >= Inf {
			continue
		}
		for _, l2 := range s.lnbrs[l1] {
			cand := cost + s.weights[l2]
			if cand >= Inf {
				continue
			}
			if cand < out[l2] {
				out[l2] = cand
			}
		}
	}
}

// propagate offers relaxed to every enabled neighbour of id except the seed
// and queues the neighbours that improved.
func (s *Solver) propagate(f *Field, id, seed int, relaxed []int64, next *linkedhashset.Set) {
	for _, n := range s.adj[id] {
		if n == seed {
			continue
		}
		row := f.costs[n]
		pin := s.pins[n]
		changed := false
		for l, v := range relaxed {
			if v >= Inf {
				continue
			}
			if pin >= 0 {
				if l != pin {
					continue
				}
				v -= s.weights[l]
			}
			if v < row[l] {
				row[l] = v
				changed = true
			}
		}
		if changed {
			next.Add(n)
		}
	}
}

// Labels returns the label order of the snapshot.
func (s *Solver) Labels() []string { return append([]string(nil), s.labels...) }

// Weight returns the weight of the label at index i.
func (s *Solver) Weight(i int) int64 { return s.weights[i] }
