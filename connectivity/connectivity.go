// Package connectivity groups labelled grid cells into regions that are
// connected under the label-compatibility adjacency rule: two labelled cells
// join the same group when they are enabled grid neighbours and their labels
// are compatible.
//
// The grouping is a disjoint-set (union-find) over the labelled cells with
// path compression and union by rank, which reaches the same fixed point as
// repeatedly merging groups until nothing merges.
//
// Complexity: O(V·6·α(V)) time, O(V) memory, V = labelled cells.
package connectivity

import (
	"errors"
	"sort"

	"github.com/katalvlaran/hexaspect/hexgrid"
)

// ErrNilInput indicates a nil grid or compatibility relation.
var ErrNilInput = errors.New("connectivity: grid and compatibility relation are required")

// Compatibility reports whether two labels may touch inside one group.
// *labelgraph.Graph satisfies it.
type Compatibility interface {
	Compatible(a, b string) bool
}

// Result is the grouping of the labelled cells.
type Result struct {
	// Groups holds cell ids; each group is sorted, and groups are ordered by
	// their smallest id.
	Groups [][]int
}

// Connected reports whether exactly one group exists.
func (r *Result) Connected() bool { return len(r.Groups) == 1 }

// GroupOf returns the index of the group containing cell id, or -1.
func (r *Result) GroupOf(id int) int {
	for gi, grp := range r.Groups {
		i := sort.SearchInts(grp, id)
		if i < len(grp) && grp[i] == id {
			return gi
		}
	}
	return -1
}

// Check groups every enabled, labelled cell of grid. It does not mutate its
// inputs, so repeated calls on an unchanged grid return equal results.
func Check(grid *hexgrid.Grid, compat Compatibility) (*Result, error) {
	if grid == nil || compat == nil {
		return nil, ErrNilInput
	}
	return CheckCells(grid, compat, grid.Assigned())
}

// CheckCells groups the given cell ids, which must be labelled. Cells outside
// ids never join a group, even when labelled.
func CheckCells(grid *hexgrid.Grid, compat Compatibility, ids []int) (*Result, error) {
	if grid == nil || compat == nil {
		return nil, ErrNilInput
	}

	// 1) Singleton sets.
	ds := newDisjointSet(ids)

	// 2) Union every compatible, labelled neighbour pair.
	for _, id := range ids {
		c := grid.Cell(id)
		if c == nil || !c.Assigned() {
			continue
		}
		for _, n := range grid.Neighbors(id) {
			nc := grid.Cell(n)
			if !ds.has(n) || !nc.Assigned() {
				continue
			}
			if compat.Compatible(c.Label, nc.Label) {
				ds.union(id, n)
			}
		}
	}

	// 3) Collect groups in a canonical order.
	byRoot := make(map[int][]int)
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)
	var roots []int
	for _, id := range sorted {
		r := ds.find(id)
		if _, ok := byRoot[r]; !ok {
			roots = append(roots, r)
		}
		byRoot[r] = append(byRoot[r], id)
	}
	res := &Result{Groups: make([][]int, 0, len(roots))}
	for _, r := range roots {
		res.Groups = append(res.Groups, byRoot[r])
	}

	return res, nil
}

// disjointSet is union-find keyed by cell id.
type disjointSet struct {
	parent map[int]int
	rank   map[int]int
}

func newDisjointSet(ids []int) *disjointSet {
	ds := &disjointSet{
		parent: make(map[int]int, len(ids)),
		rank:   make(map[int]int, len(ids)),
	}
	for _, id := range ids {
		ds.parent[id] = id
	}
	return ds
}

func (ds *disjointSet) has(id int) bool {
	_, ok := ds.parent[id]
	return ok
}

// find returns the root of id, halving the path on the way.
func (ds *disjointSet) find(id int) int {
	for ds.parent[id] != id {
		ds.parent[id] = ds.parent[ds.parent[id]]
		id = ds.parent[id]
	}
	return id
}

func (ds *disjointSet) union(a, b int) {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
}
