package labelgraph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hexaspect/catalog"
)

// New builds the compatibility graph of c.
//
// Steps:
//  1. Collect and sort label names.
//  2. For every declared component edge (composite, component), add both
//     directions; duplicates collapse.
//  3. Freeze each neighbour list in name order.
//
// A component that c does not declare yields catalog.ErrUndeclaredComponent.
func New(c *catalog.Catalog) (*Graph, error) {
	if c == nil {
		return nil, ErrNilCatalog
	}

	names := c.Names()
	sort.Strings(names)

	g := &Graph{
		labels:    names,
		index:     make(map[string]int, len(names)),
		adjacency: make([][]string, len(names)),
		compat:    make([]map[string]bool, len(names)),
		defaults:  c.Weights(),
	}
	for i, name := range names {
		g.index[name] = i
		g.compat[i] = make(map[string]bool)
	}

	for _, l := range c.Labels() {
		for _, comp := range l.Components {
			j, ok := g.index[comp]
			if !ok {
				return nil, fmt.Errorf("%w: %q lists %q", catalog.ErrUndeclaredComponent, l.Name, comp)
			}
			i := g.index[l.Name]
			g.compat[i][comp] = true
			g.compat[j][l.Name] = true
		}
	}

	for i, set := range g.compat {
		nbrs := make([]string, 0, len(set))
		for name := range set {
			nbrs = append(nbrs, name)
		}
		sort.Strings(nbrs)
		g.adjacency[i] = nbrs
	}

	return g, nil
}

// Labels returns every label name in sorted order.
func (g *Graph) Labels() []string {
	return append([]string(nil), g.labels...)
}

// Len returns the number of labels.
func (g *Graph) Len() int { return len(g.labels) }

// Has reports whether label is declared.
func (g *Graph) Has(label string) bool {
	_, ok := g.index[label]
	return ok
}

// Index returns the position of label in Labels(), or -1.
func (g *Graph) Index(label string) int {
	if i, ok := g.index[label]; ok {
		return i
	}
	return -1
}

// Neighbors returns the labels compatible with label, sorted by name.
// The returned slice is shared and must not be modified.
func (g *Graph) Neighbors(label string) []string {
	i, ok := g.index[label]
	if !ok {
		return nil
	}
	return g.adjacency[i]
}

// NeighborsAt is Neighbors keyed by label index.
func (g *Graph) NeighborsAt(i int) []string {
	return g.adjacency[i]
}

// Compatible reports whether a and b are adjacent in the graph.
// It is symmetric and false for a == b.
func (g *Graph) Compatible(a, b string) bool {
	i, ok := g.index[a]
	if !ok {
		return false
	}
	return g.compat[i][b]
}

// DefaultWeights returns the catalog weight table.
func (g *Graph) DefaultWeights() *Weights {
	w, _ := g.Weights(nil)
	return w
}

// Weights builds a weight table from the catalog defaults, replacing every
// label named in overrides. Unknown labels and negative costs are rejected.
func (g *Graph) Weights(overrides map[string]int64) (*Weights, error) {
	w := &Weights{
		costs: make([]int64, len(g.labels)),
		index: g.index,
	}
	for i, name := range g.labels {
		w.costs[i] = g.defaults[name]
	}

	// sorted so the first reported error does not depend on map order
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, name := range keys {
		cost := overrides[name]
		i, ok := g.index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, name)
		}
		if cost < 0 {
			return nil, fmt.Errorf("%w: %q = %d", ErrNegativeWeight, name, cost)
		}
		w.costs[i] = cost
	}

	return w, nil
}

// Of returns the cost of label, or 0 and false if it is unknown.
func (w *Weights) Of(label string) (int64, bool) {
	i, ok := w.index[label]
	if !ok {
		return 0, false
	}
	return w.costs[i], true
}

// At returns the cost of the label at index i of the owning graph.
func (w *Weights) At(i int) int64 { return w.costs[i] }

// Map returns a copy of the table keyed by label name.
func (w *Weights) Map() map[string]int64 {
	out := make(map[string]int64, len(w.index))
	for name, i := range w.index {
		out[name] = w.costs[i]
	}
	return out
}
