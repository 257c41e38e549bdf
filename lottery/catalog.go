// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lottery

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
)

// Catalog maps variant keys to variants.
type Catalog map[string]Variant

// DefaultCatalog holds the built-in Powerball and Mega Millions variants.
func DefaultCatalog() Catalog {
	pb, mm := Powerball(), MegaMillions()
	return Catalog{
		pb.Key: pb,
		mm.Key: mm,
	}
}

// Lookup finds a variant by key, case-insensitively.
func (c Catalog) Lookup(key string) (Variant, error) {
	v, ok := c[strings.ToLower(key)]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, key)
	}
	return v.Clone(), nil
}

// Add validates v and registers it, replacing any variant with the same key.
func (c Catalog) Add(v Variant) error {
	v.Key = strings.ToLower(v.Key)
	if err := v.Check(); err != nil {
		return err
	}
	if v.Name == "" {
		v.Name = v.Key
	}
	c[v.Key] = v.Clone()
	return nil
}

// Variants returns all variants sorted by key.
func (c Catalog) Variants() []Variant {
	out := make([]Variant, 0, len(c))
	for _, v := range c {
		out = append(out, v.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

type catalogFile struct {
	Variants []Variant `yaml:"variants"`
}

// LoadCatalog returns the default catalog extended with the variants listed
// in the YAML file at path. An empty path yields the default catalog.
func LoadCatalog(path string) (Catalog, error) {
	c := DefaultCatalog()
	if path == "" {
		return c, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open variants file: %w", err)
	}
	defer f.Close()

	if err := c.Decode(f); err != nil {
		return nil, fmt.Errorf("failed to load variants file %s: %w", path, err)
	}
	return c, nil
}

// Decode reads YAML variant definitions from r into the catalog.
// Nothing is added if any definition is invalid.
func (c Catalog) Decode(r io.Reader) error {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		// an empty file adds nothing
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to decode variants: %w", err)
	}

	builtin := DefaultCatalog()
	staged := Catalog{}
	for _, v := range file.Variants {
		if _, ok := builtin[strings.ToLower(v.Key)]; ok {
			return fmt.Errorf("%w: variant %q is built in and cannot be redefined", ErrInvalidParameters, v.Key)
		}
		if err := staged.Add(v); err != nil {
			return err
		}
	}
	for k, v := range staged {
		c[k] = v
	}
	return nil
}
