package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// Default returns the built-in catalog: Domain, Core -> Domain,
// Infrastructure -> Core.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded default catalog is invalid: %v", err))
	}
	return c
}

// Parse unmarshals catalog YAML without validating it.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return &c, nil
}

// LoadFile reads a catalog file, validates it against the schema and the
// ordering rules, and returns it.
func LoadFile(path string) (*Catalog, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := ValidateSchema(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Source: path, Issues: result.Issues}
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
