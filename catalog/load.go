package catalog

import (
	_ "embed"
	"os"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk shape of a catalog.
//
//	version: "4.2.2.0"
//	labels:
//	  - name: aer
//	    primal: true
//	  - name: lux
//	    components: [aer, ignis]
type Document struct {
	Version string `yaml:"version"`
	Labels  []Spec `yaml:"labels"`
}

//go:embed default.yaml
var defaultYAML []byte

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Parse decodes a YAML catalog document and validates it with New.
func Parse(data []byte) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "catalog: decode yaml")
	}
	return New(doc.Version, doc.Labels)
}

// Load reads and parses the catalog file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: read %s", path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: load %s", path)
	}
	return c, nil
}

// Default returns the built-in aspect catalog. It is parsed once and shared;
// catalogs are immutable so sharing is safe.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse(defaultYAML)
	})
	return defaultCat, defaultErr
}

// Marshal encodes c back into its YAML document form. Weights are written
// explicitly so the output is self-describing.
func Marshal(c *Catalog) ([]byte, error) {
	doc := Document{Version: c.version, Labels: make([]Spec, 0, len(c.order))}
	for _, l := range c.Labels() {
		w := l.Weight
		doc.Labels = append(doc.Labels, Spec{
			Name:       l.Name,
			Primal:     l.Primal,
			Components: l.Components,
			Weight:     &w,
		})
	}
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: encode yaml")
	}
	return out, nil
}
