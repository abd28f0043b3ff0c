package labelgraph

import "errors"

// Sentinel errors for label graph construction and weight tables.
var (
	// ErrNilCatalog indicates New was given a nil catalog.
	ErrNilCatalog = errors.New("labelgraph: catalog is nil")

	// ErrUnknownLabel indicates a label that the graph does not declare.
	ErrUnknownLabel = errors.New("labelgraph: unknown label")

	// ErrNegativeWeight indicates a negative weight override.
	ErrNegativeWeight = errors.New("labelgraph: weight must be non-negative")
)

// Graph is the immutable label compatibility graph.
type Graph struct {
	labels    []string          // sorted by name
	index     map[string]int    // label → position in labels
	adjacency [][]string        // per label index, sorted neighbour names
	compat    []map[string]bool // per label index, neighbour membership
	defaults  map[string]int64  // catalog weights
}

// Weights is an immutable label → cost table bound to one Graph.
type Weights struct {
	costs []int64 // indexed like Graph.labels
	index map[string]int
}
