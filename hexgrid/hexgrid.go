package hexgrid

import "fmt"

// steps are the six raw unit moves, in resolution order.
var steps = [6]Coord{
	{-1, 0, 0}, {1, 0, 0},
	{0, -1, 0}, {0, 1, 0},
	{0, 0, -1}, {0, 0, 1},
}

// CellCount returns the number of cells of a grid of the given radius.
func CellCount(radius int) int {
	return 3*radius*radius + 3*radius + 1
}

// New builds a grid of the given radius with every cell enabled and empty.
// Returns ErrBadRadius if radius < 0.
func New(radius int) (*Grid, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadRadius, radius)
	}

	g := &Grid{
		radius: radius,
		cells:  make([]*Cell, 0, CellCount(radius)),
		byPos:  make(map[Coord]int, CellCount(radius)),
	}

	// 1) Generate cells: origin, then one ring segment per axis for each (i, j).
	g.add(Coord{0, 0, 0})
	for i := 0; i <= radius; i++ {
		for j := 1; j <= radius; j++ {
			g.add(Coord{0, i, j})
			g.add(Coord{j, 0, i})
			g.add(Coord{i, j, 0})
		}
	}

	// 2) Cache topological neighbours.
	for _, c := range g.cells {
		c.neighbors = g.resolve(c.Coord)
	}

	return g, nil
}

func (g *Grid) add(pos Coord) {
	id := len(g.cells)
	g.cells = append(g.cells, &Cell{ID: id, Coord: pos, Enabled: true})
	g.byPos[pos] = id
}

// Fold returns the canonical form of a raw coordinate one step away from a
// canonical one.
func Fold(c Coord) Coord {
	switch {
	case c.X < 0 || c.Y < 0 || c.Z < 0:
		return Coord{c.X + 1, c.Y + 1, c.Z + 1}
	case c.X > 0 && c.Y > 0 && c.Z > 0:
		return Coord{c.X - 1, c.Y - 1, c.Z - 1}
	default:
		return c
	}
}

// resolve folds each unit step from pos and keeps in-bounds cells that exist.
func (g *Grid) resolve(pos Coord) []int {
	out := make([]int, 0, len(steps))
	for _, d := range steps {
		n := Fold(Coord{pos.X + d.X, pos.Y + d.Y, pos.Z + d.Z})
		if n.X > g.radius || n.Y > g.radius || n.Z > g.radius {
			continue
		}
		if id, ok := g.byPos[n]; ok {
			out = append(out, id)
		}
	}
	return out
}

// Radius returns the grid radius.
func (g *Grid) Radius() int { return g.radius }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cells returns the cells in id order. The pointers are live.
func (g *Grid) Cells() []*Cell { return g.cells }

// Cell returns the cell with the given id, or nil.
func (g *Grid) Cell(id int) *Cell {
	if id < 0 || id >= len(g.cells) {
		return nil
	}
	return g.cells[id]
}

// Lookup returns the cell at pos, or nil if pos is not on the grid.
func (g *Grid) Lookup(pos Coord) *Cell {
	id, ok := g.byPos[pos]
	if !ok {
		return nil
	}
	return g.cells[id]
}

// Neighbors returns the ids of the enabled neighbours of cell id, in step
// order. A disabled or unknown cell has no neighbours.
func (g *Grid) Neighbors(id int) []int {
	c := g.Cell(id)
	if c == nil || !c.Enabled {
		return nil
	}
	out := make([]int, 0, len(c.neighbors))
	for _, n := range c.neighbors {
		if g.cells[n].Enabled {
			out = append(out, n)
		}
	}
	return out
}

// Adjacency snapshots Neighbors for every cell. Index i holds the enabled
// neighbours of cell i.
func (g *Grid) Adjacency() [][]int {
	adj := make([][]int, len(g.cells))
	for i := range g.cells {
		adj[i] = g.Neighbors(i)
	}
	return adj
}

// SetEnabled toggles the cell at pos. Disabling a cell clears its label.
func (g *Grid) SetEnabled(pos Coord, enabled bool) error {
	c := g.Lookup(pos)
	if c == nil {
		return fmt.Errorf("%w: %s", ErrCellNotFound, pos)
	}
	c.Enabled = enabled
	if !enabled {
		c.Label = ""
	}
	return nil
}

// Assign sets the label of the cell at pos. The cell must be enabled.
func (g *Grid) Assign(pos Coord, label string) error {
	c := g.Lookup(pos)
	if c == nil {
		return fmt.Errorf("%w: %s", ErrCellNotFound, pos)
	}
	if !c.Enabled {
		return fmt.Errorf("%w: %s", ErrCellDisabled, pos)
	}
	c.Label = label
	return nil
}

// Clear removes the label of the cell at pos.
func (g *Grid) Clear(pos Coord) error {
	c := g.Lookup(pos)
	if c == nil {
		return fmt.Errorf("%w: %s", ErrCellNotFound, pos)
	}
	c.Label = ""
	return nil
}

// Reset enables every cell and removes every label.
func (g *Grid) Reset() {
	for _, c := range g.cells {
		c.Enabled = true
		c.Label = ""
	}
}

// Assigned returns the ids of enabled, labelled cells in id order.
func (g *Grid) Assigned() []int {
	var out []int
	for _, c := range g.cells {
		if c.Enabled && c.Assigned() {
			out = append(out, c.ID)
		}
	}
	return out
}

// Enabled returns the number of enabled cells.
func (g *Grid) Enabled() int {
	n := 0
	for _, c := range g.cells {
		if c.Enabled {
			n++
		}
	}
	return n
}
