package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexaspect/catalog"
)

func w(v int64) *int64 { return &v }

// miniSpecs is a two-level catalog: lux = aer+ignis, herba = victus+terra.
func miniSpecs() []catalog.Spec {
	return []catalog.Spec{
		{Name: "aer", Primal: true},
		{Name: "ignis", Primal: true},
		{Name: "terra", Primal: true},
		{Name: "aqua", Primal: true},
		{Name: "lux", Components: []string{"aer", "ignis"}},
		{Name: "victus", Components: []string{"aqua", "terra"}},
		{Name: "herba", Components: []string{"victus", "terra"}},
	}
}

// TestNew_WeightAdditivity checks primal=1 and recursive sums across two levels.
func TestNew_WeightAdditivity(t *testing.T) {
	c, err := catalog.New("test", miniSpecs())
	require.NoError(t, err)

	want := map[string]int64{
		"aer": 1, "ignis": 1, "terra": 1, "aqua": 1,
		"lux": 2, "victus": 2, "herba": 3,
	}
	assert.Equal(t, want, c.Weights())
	assert.Equal(t, 7, c.Len())
	assert.Equal(t, "test", c.Version())

	herba, ok := c.Get("herba")
	require.True(t, ok)
	assert.True(t, herba.IsComposite())
	assert.False(t, herba.Primal)
	assert.Equal(t, []string{"victus", "terra"}, herba.Components)
}

// TestNew_ExplicitWeight ensures an explicit weight wins and feeds derived sums.
func TestNew_ExplicitWeight(t *testing.T) {
	specs := miniSpecs()
	specs[5].Weight = w(10) // victus
	c, err := catalog.New("", specs)
	require.NoError(t, err)

	victus, _ := c.Get("victus")
	herba, _ := c.Get("herba")
	assert.Equal(t, int64(10), victus.Weight)
	assert.Equal(t, int64(11), herba.Weight)
}

// TestNew_DeclarationOrder keeps Names in the order labels were declared.
func TestNew_DeclarationOrder(t *testing.T) {
	c, err := catalog.New("", miniSpecs())
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"aer", "ignis", "terra", "aqua", "lux", "victus", "herba"},
		c.Names())
	assert.Len(t, c.Labels(), 7)
	assert.True(t, c.Has("lux"))
	assert.False(t, c.Has("gelum"))
}

func TestNew_ConfigurationErrors(t *testing.T) {
	cases := []struct {
		name  string
		specs []catalog.Spec
		want  error
	}{
		{
			name:  "empty name",
			specs: []catalog.Spec{{Name: "", Primal: true}},
			want:  catalog.ErrEmptyName,
		},
		{
			name:  "duplicate",
			specs: []catalog.Spec{{Name: "aer", Primal: true}, {Name: "aer", Primal: true}},
			want:  catalog.ErrDuplicateLabel,
		},
		{
			name:  "primal with components",
			specs: []catalog.Spec{{Name: "aer", Primal: true, Components: []string{"aer"}}},
			want:  catalog.ErrPrimalComponents,
		},
		{
			name:  "undeclared component",
			specs: []catalog.Spec{{Name: "lux", Components: []string{"aer", "ignis"}}, {Name: "aer", Primal: true}},
			want:  catalog.ErrUndeclaredComponent,
		},
		{
			name: "cycle",
			specs: []catalog.Spec{
				{Name: "a", Components: []string{"b"}},
				{Name: "b", Components: []string{"c"}},
				{Name: "c", Components: []string{"a"}},
			},
			want: catalog.ErrCyclicComposition,
		},
		{
			name: "cycle behind explicit weight",
			specs: []catalog.Spec{
				{Name: "a", Components: []string{"b"}, Weight: w(3)},
				{Name: "b", Components: []string{"a"}},
			},
			want: catalog.ErrCyclicComposition,
		},
		{
			name:  "missing weight",
			specs: []catalog.Spec{{Name: "orphan"}},
			want:  catalog.ErrMissingWeight,
		},
		{
			name:  "negative weight",
			specs: []catalog.Spec{{Name: "aer", Primal: true, Weight: w(-1)}},
			want:  catalog.ErrNegativeWeight,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.New("", tc.specs)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_YAML(t *testing.T) {
	doc := []byte(`
version: "1"
labels:
  - name: aer
    primal: true
  - name: ignis
    primal: true
  - name: lux
    components: [aer, ignis]
  - name: heavy
    primal: true
    weight: 7
`)
	c, err := catalog.Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, "1", c.Version())
	assert.Equal(t, map[string]int64{"aer": 1, "ignis": 1, "lux": 2, "heavy": 7}, c.Weights())
}

func TestParse_BadYAML(t *testing.T) {
	_, err := catalog.Parse([]byte("labels: [oops"))
	assert.Error(t, err)
}

func TestLoad_FileRoundTrip(t *testing.T) {
	c, err := catalog.New("rt", miniSpecs())
	require.NoError(t, err)
	data, err := catalog.Marshal(c)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	back, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, c.Names(), back.Names())
	assert.Equal(t, c.Weights(), back.Weights())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_WrapsValidationError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("labels:\n  - name: lux\n    components: [aer]\n"), 0o600))
	_, err := catalog.Load(path)
	assert.ErrorIs(t, err, catalog.ErrUndeclaredComponent)
}

// TestDefault checks the embedded aspect table, including multi-level sums.
func TestDefault(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	assert.Equal(t, "4.2.2.0", c.Version())
	assert.Equal(t, 48, c.Len())

	weights := c.Weights()
	assert.Equal(t, int64(1), weights["aer"])
	assert.Equal(t, int64(2), weights["lux"])
	assert.Equal(t, int64(4), weights["tenebrae"]) // vacuos(2) + lux(2)
	assert.Equal(t, int64(6), weights["alienis"])  // vacuos(2) + tenebrae(4)
	assert.Equal(t, int64(5), weights["spiritus"]) // victus(2) + mortuus(3)

	again, err := catalog.Default()
	require.NoError(t, err)
	assert.Same(t, c, again)
}
