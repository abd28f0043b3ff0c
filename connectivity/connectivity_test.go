package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexaspect/catalog"
	"github.com/katalvlaran/hexaspect/connectivity"
	"github.com/katalvlaran/hexaspect/hexgrid"
	"github.com/katalvlaran/hexaspect/labelgraph"
)

func mini(t *testing.T) *labelgraph.Graph {
	t.Helper()
	c, err := catalog.New("", []catalog.Spec{
		{Name: "aer", Primal: true},
		{Name: "ignis", Primal: true},
		{Name: "terra", Primal: true},
		{Name: "lux", Components: []string{"aer", "ignis"}},
	})
	require.NoError(t, err)
	g, err := labelgraph.New(c)
	require.NoError(t, err)
	return g
}

func grid(t *testing.T, radius int, labels map[hexgrid.Coord]string) *hexgrid.Grid {
	t.Helper()
	g, err := hexgrid.New(radius)
	require.NoError(t, err)
	for pos, l := range labels {
		require.NoError(t, g.Assign(pos, l))
	}
	return g
}

func TestCheck_NilInput(t *testing.T) {
	_, err := connectivity.Check(nil, mini(t))
	assert.ErrorIs(t, err, connectivity.ErrNilInput)
	g, _ := hexgrid.New(1)
	_, err = connectivity.Check(g, nil)
	assert.ErrorIs(t, err, connectivity.ErrNilInput)
}

func TestCheck_Empty(t *testing.T) {
	g := grid(t, 1, nil)
	res, err := connectivity.Check(g, mini(t))
	require.NoError(t, err)
	assert.Empty(t, res.Groups)
	assert.False(t, res.Connected())
}

func TestCheck_SingleCell(t *testing.T) {
	g := grid(t, 0, map[hexgrid.Coord]string{{}: "aer"})
	res, err := connectivity.Check(g, mini(t))
	require.NoError(t, err)
	assert.True(t, res.Connected())
	assert.Equal(t, [][]int{{0}}, res.Groups)
}

// TestCheck_CompatibleNeighbours: lux touches aer → one group.
func TestCheck_CompatibleNeighbours(t *testing.T) {
	g := grid(t, 1, map[hexgrid.Coord]string{{}: "lux", {X: 0, Y: 0, Z: 1}: "aer"})
	res, err := connectivity.Check(g, mini(t))
	require.NoError(t, err)
	assert.True(t, res.Connected())
	assert.Equal(t, [][]int{{0, 1}}, res.Groups)
}

// TestCheck_IncompatibleNeighbours: adjacency alone is not enough.
func TestCheck_IncompatibleNeighbours(t *testing.T) {
	cases := map[string]map[hexgrid.Coord]string{
		"siblings":   {{}: "aer", {X: 0, Y: 0, Z: 1}: "ignis"},
		"same label": {{}: "aer", {X: 0, Y: 0, Z: 1}: "aer"},
		"unrelated":  {{}: "lux", {X: 0, Y: 0, Z: 1}: "terra"},
	}
	for name, labels := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := connectivity.Check(grid(t, 1, labels), mini(t))
			require.NoError(t, err)
			assert.False(t, res.Connected())
			assert.Equal(t, [][]int{{0}, {1}}, res.Groups)
		})
	}
}

// TestCheck_Chain merges through a chain aer–lux–ignis–lux and leaves a
// detached cell alone.
func TestCheck_Chain(t *testing.T) {
	g := grid(t, 2, map[hexgrid.Coord]string{
		{X: 0, Y: 0, Z: 2}: "aer",
		{X: 0, Y: 0, Z: 1}: "lux",
		{X: 0, Y: 0, Z: 0}: "ignis",
		{X: 1, Y: 1, Z: 0}: "lux",
		{X: 2, Y: 0, Z: 0}: "aer", // not adjacent to the chain
	})
	lg := mini(t)
	res, err := connectivity.Check(g, lg)
	require.NoError(t, err)
	assert.False(t, res.Connected())
	require.Len(t, res.Groups, 2)

	far := g.Lookup(hexgrid.Coord{X: 2, Y: 0, Z: 0}).ID
	assert.Equal(t, []int{far}, res.Groups[1])
	assert.Len(t, res.Groups[0], 4)
	assert.Equal(t, 0, res.GroupOf(0))
	assert.Equal(t, 1, res.GroupOf(far))
	assert.Equal(t, -1, res.GroupOf(3))

	// bridging lux at (1,0,0) touches ignis at the origin and aer at (2,0,0)
	require.NoError(t, g.Assign(hexgrid.Coord{X: 1, Y: 0, Z: 0}, "lux"))
	res, err = connectivity.Check(g, lg)
	require.NoError(t, err)
	assert.True(t, res.Connected())
}

// TestCheck_DisabledCellBreaksAdjacency: a disabled cell is not a neighbour.
func TestCheck_DisabledCellBreaksAdjacency(t *testing.T) {
	g := grid(t, 1, map[hexgrid.Coord]string{{}: "lux", {X: 0, Y: 0, Z: 1}: "aer"})
	require.NoError(t, g.SetEnabled(hexgrid.Coord{}, false))
	res, err := connectivity.Check(g, mini(t))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}}, res.Groups)
}

func TestCheck_Idempotent(t *testing.T) {
	g := grid(t, 2, map[hexgrid.Coord]string{
		{X: 0, Y: 0, Z: 2}: "aer", {X: 0, Y: 0, Z: 1}: "lux", {X: 2, Y: 2, Z: 0}: "ignis", {X: 1, Y: 1, Z: 0}: "lux",
	})
	lg := mini(t)
	first, err := connectivity.Check(g, lg)
	require.NoError(t, err)
	second, err := connectivity.Check(g, lg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCheckCells_Subset(t *testing.T) {
	g := grid(t, 1, map[hexgrid.Coord]string{{}: "lux", {X: 0, Y: 0, Z: 1}: "aer", {X: 1, Y: 0, Z: 0}: "ignis"})
	res, err := connectivity.CheckCells(g, mini(t), []int{1, 2})
	require.NoError(t, err)
	// without the lux centre the two primals do not touch compatibly
	assert.Equal(t, [][]int{{1}, {2}}, res.Groups)
}
