package catalog

import "errors"

// Sentinel errors returned while building a Catalog.
var (
	// ErrEmptyName indicates a declaration without a label name.
	ErrEmptyName = errors.New("catalog: label name is empty")

	// ErrDuplicateLabel indicates two declarations with the same name.
	ErrDuplicateLabel = errors.New("catalog: duplicate label")

	// ErrPrimalComponents indicates a primal label that lists components.
	ErrPrimalComponents = errors.New("catalog: primal label must not declare components")

	// ErrUndeclaredComponent indicates a component name that is not declared.
	ErrUndeclaredComponent = errors.New("catalog: component references an undeclared label")

	// ErrCyclicComposition indicates a label that is (transitively) its own component.
	ErrCyclicComposition = errors.New("catalog: cyclic label composition")

	// ErrMissingWeight indicates a label whose weight can neither be read nor derived.
	ErrMissingWeight = errors.New("catalog: missing weight with no derivable default")

	// ErrNegativeWeight indicates an explicit weight below zero.
	ErrNegativeWeight = errors.New("catalog: weight must be non-negative")
)

// PrimalWeight is the default weight of a primal label.
const PrimalWeight int64 = 1

// Spec is one label declaration as it appears in a catalog document.
// Weight is optional; nil means "derive it".
type Spec struct {
	Name       string   `yaml:"name"`
	Primal     bool     `yaml:"primal,omitempty"`
	Components []string `yaml:"components,omitempty"`
	Weight     *int64   `yaml:"weight,omitempty"`
}

// Label is a validated, immutable label.
type Label struct {
	// Name uniquely identifies the label.
	Name string

	// Weight is the effective cost of the label (explicit or derived).
	Weight int64

	// Components lists the labels this one is built from, in declaration order.
	Components []string

	// Primal reports whether the label is atomic.
	Primal bool
}

// IsComposite reports whether the label is built from other labels.
func (l Label) IsComposite() bool { return len(l.Components) > 0 }

// Catalog is an immutable set of labels. Build it with New, Parse, Load or Default.
type Catalog struct {
	version string
	order   []string // declaration order
	labels  map[string]Label
}
