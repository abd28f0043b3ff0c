package hexgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and mutation.
var (
	// ErrBadRadius indicates a negative grid radius.
	ErrBadRadius = errors.New("hexgrid: radius must be non-negative")

	// ErrCellNotFound indicates a coordinate or id outside the grid.
	ErrCellNotFound = errors.New("hexgrid: cell not found")

	// ErrCellDisabled indicates an operation that needs an enabled cell.
	ErrCellDisabled = errors.New("hexgrid: cell is disabled")
)

// Coord is a hex coordinate triple.
type Coord struct {
	X, Y, Z int
}

// String formats c as "x,y,z", the key form used by layout documents.
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d,%d", c.X, c.Y, c.Z)
}

// Cell is one grid position.
type Cell struct {
	ID      int    // dense index in generation order
	Coord   Coord  // canonical coordinate
	Enabled bool   // disabled cells take no part in adjacency
	Label   string // assigned label, "" when empty

	neighbors []int // topological neighbours, enabled or not
}

// Assigned reports whether the cell carries a label.
func (c *Cell) Assigned() bool { return c.Label != "" }

// Grid is a hexagonal grid of a fixed radius. The cell set and topology are
// fixed at construction; Enabled flags and labels are mutable.
type Grid struct {
	radius int
	cells  []*Cell
	byPos  map[Coord]int
}
