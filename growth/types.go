package growth

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hexaspect/hexgrid"
)

// Sentinel errors for growth runs.
var (
	// ErrNilInput indicates a nil grid, label graph or weight table.
	ErrNilInput = errors.New("growth: grid, label graph and weights are required")

	// ErrNoSeeds indicates a solve was requested on a grid without labelled cells.
	ErrNoSeeds = errors.New("growth: no seeds present")

	// ErrUnsolvable indicates that no empty, enabled cell has a finite cost
	// for any label while the filled set is still disconnected.
	ErrUnsolvable = errors.New("growth: unsolvable, no reachable candidate left")

	// ErrStepLimit indicates the configured step budget ran out.
	ErrStepLimit = errors.New("growth: step limit reached")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("growth: invalid option supplied")
)

// State is the engine's lifecycle position.
type State int

const (
	// Idle is the state after New.
	Idle State = iota
	// Growing means more placements are required.
	Growing
	// Connected is terminal success.
	Connected
	// Failed is terminal failure.
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Growing:
		return "growing"
	case Connected:
		return "connected"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether no further step can change the outcome.
func (s State) Terminal() bool { return s == Connected || s == Failed }

// Placement is one entry of the filled set.
type Placement struct {
	Step   int           // 0 for seeds, then 1, 2, … in placement order
	CellID int           // grid cell id
	Coord  hexgrid.Coord // grid coordinate
	Label  string        // assigned label
	Cost   int64         // aggregate cost at selection; 0 for seeds
}

// Seed reports whether the placement was supplied by the caller.
func (p Placement) Seed() bool { return p.Step == 0 }

// Options configures an Engine.
type Options struct {
	// OnStep runs after each placement. Returning an error stops Run and is
	// returned from it.
	OnStep func(p Placement) error

	// MaxSteps bounds the number of placements; 0 disables the bound.
	MaxSteps int

	// FillAll keeps growing after connectivity is reached.
	FillAll bool

	// internal error recorded during option parsing
	err error
}

// Option configures an Engine via functional arguments.
type Option func(*Options)

// DefaultOptions returns no-op hooks, no step bound and FillAll disabled.
func DefaultOptions() Options {
	return Options{
		OnStep:   func(Placement) error { return nil },
		MaxSteps: 0,
		FillAll:  false,
	}
}

// WithOnStep registers fn to run after every placement.
func WithOnStep(fn func(p Placement) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithMaxSteps bounds the number of placements.
//
//	n > 0:  stop with ErrStepLimit after n placements
//	n == 0: no bound
//	n < 0:  invalid → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithFillAll keeps placing labels after the region is connected, until no
// enabled, empty cell has a finite cost.
func WithFillAll() Option {
	return func(o *Options) {
		o.FillAll = true
	}
}

// Result is the outcome of a run.
type Result struct {
	// State is the engine state when the result was taken.
	State State

	// Placements is the filled set: seeds first (by cell id), then placements
	// in step order.
	Placements []Placement

	// Steps is the number of placements made by the engine.
	Steps int

	// Groups is the final connectivity grouping, as cell ids.
	Groups [][]int
}

// Assignment maps each filled coordinate to its label.
func (r *Result) Assignment() map[hexgrid.Coord]string {
	out := make(map[hexgrid.Coord]string, len(r.Placements))
	for _, p := range r.Placements {
		out[p.Coord] = p.Label
	}
	return out
}

// Grown returns the placements made by the engine, without seeds.
func (r *Result) Grown() []Placement {
	var out []Placement
	for _, p := range r.Placements {
		if !p.Seed() {
			out = append(out, p)
		}
	}
	return out
}
