package layout

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexaspect/hexgrid"
)

// Disabled marks a cell as removed from the grid.
const Disabled = "disabled"

// Format selects the document encoding.
type Format int

const (
	// JSON encoding.
	JSON Format = iota
	// YAML encoding.
	YAML
)

var (
	// ErrBadCoord indicates a key that is not a non-negative "x,y,z" triple
	// or does not name a cell of the grid.
	ErrBadCoord = errors.New("layout: invalid cell coordinate")

	// ErrUnknownLabel indicates a cell value that is neither "disabled" nor a
	// known label.
	ErrUnknownLabel = errors.New("layout: unknown label")

	// ErrUnknownFormat indicates a file extension with no known encoding.
	ErrUnknownFormat = errors.New("layout: unknown document format")
)

// Labels reports whether a label name is known. *labelgraph.Graph and
// *catalog.Catalog satisfy it.
type Labels interface {
	Has(name string) bool
}

// Document is a grid layout.
type Document struct {
	Radius int               `json:"radius" yaml:"radius"`
	Cells  map[string]string `json:"cells,omitempty" yaml:"cells,omitempty"`
}

// ParseCoord parses "x,y,z". Surrounding spaces per component are allowed.
func ParseCoord(s string) (hexgrid.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return hexgrid.Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return hexgrid.Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
		}
		v[i] = n
	}
	return hexgrid.Coord{X: v[0], Y: v[1], Z: v[2]}, nil
}

// keys returns the cell keys in a stable order.
func (d *Document) keys() []string {
	out := make([]string, 0, len(d.Cells))
	for k := range d.Cells {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Apply writes the document's cells onto grid: disabled cells first, then
// labels. Cells the document does not mention are left untouched. When known
// is non-nil every label must satisfy it.
//
// Apply validates every entry before it mutates grid, so a failed call leaves
// grid unchanged.
func (d *Document) Apply(grid *hexgrid.Grid, known Labels) error {
	type entry struct {
		pos   hexgrid.Coord
		value string
	}

	// 1) Validate keys and values.
	var off, on []entry
	for _, k := range d.keys() {
		pos, err := ParseCoord(k)
		if err != nil {
			return err
		}
		if grid.Lookup(pos) == nil {
			return fmt.Errorf("%w: %s outside radius %d", ErrBadCoord, pos, grid.Radius())
		}
		v := strings.TrimSpace(d.Cells[k])
		switch {
		case v == Disabled:
			off = append(off, entry{pos, v})
		case v == "" || (known != nil && !known.Has(v)):
			return fmt.Errorf("%w: %q at %s", ErrUnknownLabel, v, pos)
		default:
			on = append(on, entry{pos, v})
		}
	}

	// 2) Disable, then label.
	for _, e := range off {
		if err := grid.SetEnabled(e.pos, false); err != nil {
			return err
		}
	}
	for _, e := range on {
		if err := grid.Assign(e.pos, e.value); err != nil {
			return err
		}
	}
	return nil
}

// Build creates a grid of the document's radius and applies the document.
func (d *Document) Build(known Labels) (*hexgrid.Grid, error) {
	g, err := hexgrid.New(d.Radius)
	if err != nil {
		return nil, err
	}
	if err = d.Apply(g, known); err != nil {
		return nil, err
	}
	return g, nil
}

// FromGrid captures grid's disabled and labelled cells.
func FromGrid(grid *hexgrid.Grid) *Document {
	d := &Document{Radius: grid.Radius(), Cells: make(map[string]string)}
	for _, c := range grid.Cells() {
		switch {
		case !c.Enabled:
			d.Cells[c.Coord.String()] = Disabled
		case c.Assigned():
			d.Cells[c.Coord.String()] = c.Label
		}
	}
	return d
}

// Decode parses data in the given format.
func Decode(data []byte, f Format) (*Document, error) {
	var d Document
	switch f {
	case JSON:
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, pkgerrors.Wrap(err, "layout: decode json")
		}
	case YAML:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, pkgerrors.Wrap(err, "layout: decode yaml")
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
	return &d, nil
}

// Encode renders d in the given format. JSON output is indented and its keys
// are sorted.
func Encode(d *Document, f Format) ([]byte, error) {
	switch f {
	case JSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return nil, pkgerrors.Wrap(err, "layout: encode json")
		}
		return buf.Bytes(), nil
	case YAML:
		out, err := yaml.Marshal(d)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "layout: encode yaml")
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
}

// FormatOf picks the format from a file extension: .json, .yaml or .yml.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads the layout file at path.
func Load(path string) (*Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "layout: read %s", path)
	}
	d, err := Decode(data, f)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "layout: load %s", path)
	}
	return d, nil
}

// Save writes d to path in the format implied by its extension.
func Save(path string, d *Document) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Encode(d, f)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return pkgerrors.Wrapf(err, "layout: write %s", path)
	}
	return nil
}
