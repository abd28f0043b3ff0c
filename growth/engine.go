package growth

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hexaspect/connectivity"
	"github.com/katalvlaran/hexaspect/distfield"
	"github.com/katalvlaran/hexaspect/hexgrid"
	"github.com/katalvlaran/hexaspect/labelgraph"
)

// Engine runs one growth pass over a grid. It is not safe for concurrent use.
type Engine struct {
	grid    *hexgrid.Grid
	labels  *labelgraph.Graph
	weights *labelgraph.Weights
	opts    Options

	state  State
	filled []Placement
	steps  int
	groups *connectivity.Result
}

// New prepares an engine over grid. The grid's labelled cells become the
// seeds, in cell id order; they are snapshotted here, and from now on only
// the engine should assign labels on grid.
//
// Returns ErrNilInput, ErrOptionViolation, ErrNoSeeds, or
// labelgraph.ErrUnknownLabel if a seed label is not in the graph.
func New(grid *hexgrid.Grid, lg *labelgraph.Graph, w *labelgraph.Weights, opts ...Option) (*Engine, error) {
	if grid == nil || lg == nil || w == nil {
		return nil, ErrNilInput
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	e := &Engine{grid: grid, labels: lg, weights: w, opts: o, state: Idle}
	for _, id := range grid.Assigned() {
		c := grid.Cell(id)
		if !lg.Has(c.Label) {
			return nil, fmt.Errorf("%w: %q at %s", labelgraph.ErrUnknownLabel, c.Label, c.Coord)
		}
		e.filled = append(e.filled, Placement{CellID: id, Coord: c.Coord, Label: c.Label})
	}
	if len(e.filled) == 0 {
		return nil, ErrNoSeeds
	}

	return e, nil
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Steps returns the number of placements made so far.
func (e *Engine) Steps() int { return e.steps }

// Filled returns a copy of the filled set.
func (e *Engine) Filled() []Placement {
	return append([]Placement(nil), e.filled...)
}

// Groups returns the latest connectivity grouping, or nil while Idle.
func (e *Engine) Groups() *connectivity.Result { return e.groups }

// start leaves Idle: Connected if the seeds already form one group (and
// FillAll is off), Growing otherwise.
func (e *Engine) start() error {
	if err := e.check(); err != nil {
		return err
	}
	if e.groups.Connected() && !e.opts.FillAll {
		e.state = Connected
		return nil
	}
	e.state = Growing
	return nil
}

func (e *Engine) check() error {
	res, err := connectivity.Check(e.grid, e.labels)
	if err != nil {
		return err
	}
	e.groups = res
	return nil
}

// Step performs at most one placement.
//
// It returns the new placement, or nil once the engine is Connected. A Failed
// engine keeps returning ErrUnsolvable. Step does not call the OnStep hook;
// Run does.
func (e *Engine) Step(ctx context.Context) (*Placement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 1) Leave Idle, or report a terminal state.
	switch e.state {
	case Idle:
		if err := e.start(); err != nil {
			return nil, err
		}
		if e.state == Connected {
			return nil, nil
		}
	case Connected:
		return nil, nil
	case Failed:
		return nil, ErrUnsolvable
	}
	if e.opts.MaxSteps > 0 && e.steps >= e.opts.MaxSteps {
		return nil, fmt.Errorf("%w: %d", ErrStepLimit, e.opts.MaxSteps)
	}

	// 2) Aggregate the fields of every filled cell.
	agg, err := e.Aggregate()
	if err != nil {
		return nil, err
	}

	// 3) Pick the cheapest finite candidate.
	id, label, cost, ok := e.pick(agg)
	if !ok {
		if e.opts.FillAll && e.groups.Connected() {
			e.state = Connected
			return nil, nil
		}
		e.state = Failed
		return nil, fmt.Errorf("%w: %d cells filled, %d groups", ErrUnsolvable, len(e.filled), len(e.groups.Groups))
	}

	// 4) Assign and record it.
	c := e.grid.Cell(id)
	if err = e.grid.Assign(c.Coord, label); err != nil {
		return nil, err
	}
	e.steps++
	p := Placement{Step: e.steps, CellID: id, Coord: c.Coord, Label: label, Cost: cost}
	e.filled = append(e.filled, p)

	// 5) Re-check connectivity.
	if err = e.check(); err != nil {
		return nil, err
	}
	if e.groups.Connected() && !e.opts.FillAll {
		e.state = Connected
	}

	return &p, nil
}

// pick scans labels in name order and, within a label, cells in id order,
// keeping the first strictly cheaper finite candidate.
func (e *Engine) pick(agg *distfield.Field) (id int, label string, cost int64, ok bool) {
	cost = distfield.Inf
	cells := e.grid.Cells()
	for l, name := range e.labels.Labels() {
		for _, c := range cells {
			if !c.Enabled || c.Assigned() {
				continue
			}
			if v := agg.At(c.ID, l); v < cost {
				id, label, cost, ok = c.ID, name, v, true
			}
		}
	}
	return id, label, cost, ok
}

// Aggregate solves a distance field for every filled cell against the
// current grid and returns their aggregate.
func (e *Engine) Aggregate() (*distfield.Field, error) {
	solver, err := distfield.NewSolver(e.grid, e.labels, e.weights)
	if err != nil {
		return nil, err
	}
	fields := make([]*distfield.Field, 0, len(e.filled))
	for _, p := range e.filled {
		f, err := solver.Solve(p.CellID)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return distfield.Aggregate(fields, e.weights)
}

// Breakdown returns the finite aggregate costs of the cell at pos against the
// current filled set.
func (e *Engine) Breakdown(pos hexgrid.Coord) (map[string]int64, error) {
	c := e.grid.Lookup(pos)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", hexgrid.ErrCellNotFound, pos)
	}
	agg, err := e.Aggregate()
	if err != nil {
		return nil, err
	}
	return agg.Breakdown(c.ID), nil
}

// Run steps until the engine is terminal, the context is done, or the OnStep
// hook fails. The result reflects the filled set at the point Run returned,
// also when it returns an error.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	for {
		if err := ctx.Err(); err != nil {
			return e.Result(), err
		}
		p, err := e.Step(ctx)
		if err != nil {
			return e.Result(), err
		}
		if p == nil {
			return e.Result(), nil
		}
		if err = e.opts.OnStep(*p); err != nil {
			return e.Result(), err
		}
	}
}

// Result snapshots the engine.
func (e *Engine) Result() *Result {
	r := &Result{
		State:      e.state,
		Placements: e.Filled(),
		Steps:      e.steps,
	}
	if e.groups != nil {
		r.Groups = e.groups.Groups
	}
	return r
}

// Solve is the one-call form: build an engine over grid and run it.
func Solve(ctx context.Context, grid *hexgrid.Grid, lg *labelgraph.Graph, w *labelgraph.Weights, opts ...Option) (*Result, error) {
	e, err := New(grid, lg, w, opts...)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx)
}
