package app

import (
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Catalog struct {
	Domains []CatalogDomain `yaml:"domains"`
}

type CatalogDomain struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Terms       []CatalogTerm `yaml:"terms"`
}

type CatalogTerm struct {
	Language   string   `yaml:"language"`
	Word       string   `yaml:"word"`
	Definition string   `yaml:"definition"`
	Examples   []string `yaml:"examples"`
}

// DefaultCatalog returns the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(defaultCatalog, &c); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	return &c, nil
}

func LoadCatalog(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &c, nil
}
