package catalog

import (
	"fmt"
	"sort"
)

// visitation colours for cycle detection while deriving weights.
const (
	white = iota // not yet visited
	gray         // on the current derivation stack
	black        // weight resolved
)

// New validates specs and resolves every label's weight.
//
// Steps:
//  1. Reject empty names, duplicates, negative weights and primal labels with components.
//  2. Reject components that are not declared.
//  3. Resolve weights depth-first with three-colour marking; a gray→gray
//     reference is a cycle (ErrCyclicComposition).
//
// Labels are processed in name order so the first reported error is stable.
func New(version string, specs []Spec) (*Catalog, error) {
	byName := make(map[string]Spec, len(specs))
	order := make([]string, 0, len(specs))

	// 1) Shape checks per declaration.
	for _, s := range specs {
		if s.Name == "" {
			return nil, ErrEmptyName
		}
		if _, dup := byName[s.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, s.Name)
		}
		if s.Weight != nil && *s.Weight < 0 {
			return nil, fmt.Errorf("%w: %q has weight %d", ErrNegativeWeight, s.Name, *s.Weight)
		}
		if s.Primal && len(s.Components) > 0 {
			return nil, fmt.Errorf("%w: %q", ErrPrimalComponents, s.Name)
		}
		byName[s.Name] = s
		order = append(order, s.Name)
	}

	names := append([]string(nil), order...)
	sort.Strings(names)

	// 2) Every component must be declared.
	for _, name := range names {
		for _, comp := range byName[name].Components {
			if _, ok := byName[comp]; !ok {
				return nil, fmt.Errorf("%w: %q lists %q", ErrUndeclaredComponent, name, comp)
			}
		}
	}

	// 3) Resolve weights.
	r := &resolver{
		specs:   byName,
		state:   make(map[string]int, len(byName)),
		weights: make(map[string]int64, len(byName)),
	}
	for _, name := range names {
		if _, err := r.weight(name); err != nil {
			return nil, err
		}
	}

	labels := make(map[string]Label, len(byName))
	for _, name := range order {
		s := byName[name]
		labels[name] = Label{
			Name:       name,
			Weight:     r.weights[name],
			Components: append([]string(nil), s.Components...),
			Primal:     s.Primal,
		}
	}

	return &Catalog{version: version, order: order, labels: labels}, nil
}

// resolver memoises derived weights and tracks the derivation stack.
type resolver struct {
	specs   map[string]Spec
	state   map[string]int
	weights map[string]int64
}

func (r *resolver) weight(name string) (int64, error) {
	switch r.state[name] {
	case black:
		return r.weights[name], nil
	case gray:
		return 0, fmt.Errorf("%w: via %q", ErrCyclicComposition, name)
	}
	r.state[name] = gray

	s := r.specs[name]
	var w int64
	switch {
	case s.Weight != nil:
		w = *s.Weight
		// components are still walked so cycles never hide behind explicit weights
		for _, comp := range s.Components {
			if _, err := r.weight(comp); err != nil {
				return 0, err
			}
		}
	case s.Primal:
		w = PrimalWeight
	case len(s.Components) == 0:
		return 0, fmt.Errorf("%w: %q", ErrMissingWeight, name)
	default:
		for _, comp := range s.Components {
			cw, err := r.weight(comp)
			if err != nil {
				return 0, err
			}
			w += cw
		}
	}

	r.state[name] = black
	r.weights[name] = w

	return w, nil
}

// Version returns the version tag the catalog was declared with.
func (c *Catalog) Version() string { return c.version }

// Len returns the number of labels.
func (c *Catalog) Len() int { return len(c.order) }

// Get returns the label with the given name.
func (c *Catalog) Get(name string) (Label, bool) {
	l, ok := c.labels[name]
	return l, ok
}

// Has reports whether name is declared.
func (c *Catalog) Has(name string) bool {
	_, ok := c.labels[name]
	return ok
}

// Names returns label names in declaration order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// Labels returns all labels in declaration order.
func (c *Catalog) Labels() []Label {
	out := make([]Label, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.labels[name])
	}
	return out
}

// Weights returns a fresh name → effective weight map.
func (c *Catalog) Weights() map[string]int64 {
	out := make(map[string]int64, len(c.labels))
	for name, l := range c.labels {
		out[name] = l.Weight
	}
	return out
}
