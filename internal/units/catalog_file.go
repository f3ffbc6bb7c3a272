package units

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogFile is the serialized form of a Registry.
type CatalogFile struct {
	Units    []UnitDefinition `yaml:"units"`
	Prefixes []MetricPrefix   `yaml:"prefixes"`
}

// Catalog returns a copy of the registry's tables.
func (r *Registry) Catalog() CatalogFile {
	c := CatalogFile{
		Units:    make([]UnitDefinition, len(r.units)),
		Prefixes: make([]MetricPrefix, len(r.prefixes)),
	}
	for i, u := range r.units {
		u.Aliases = append([]string(nil), u.Aliases...)
		c.Units[i] = u
	}
	for i, p := range r.prefixes {
		p.Aliases = append([]string(nil), p.Aliases...)
		c.Prefixes[i] = p
	}
	return c
}

// WriteCatalog encodes the registry as YAML.
func WriteCatalog(w io.Writer, r *Registry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.Catalog()); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return enc.Close()
}

// ReadCatalog decodes a YAML catalog and builds a validated Registry from it.
func ReadCatalog(rd io.Reader) (*Registry, error) {
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)

	var c CatalogFile
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty catalog", ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if len(c.Units) == 0 {
		return nil, fmt.Errorf("%w: no units", ErrInvalidCatalog)
	}
	return NewRegistry(c.Units, c.Prefixes)
}

// LoadCatalogFile reads a YAML catalog from disk.
func LoadCatalogFile(path string) (r *Registry, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return ReadCatalog(f)
}
