// Package schema loads column-family type descriptors from YAML and resolves
// each into a *cassmarshal.Marshal up front.
//
//	column_families:
//	  messages:
//	    comparator: org.apache.cassandra.db.marshal.CompositeType(org.apache.cassandra.db.marshal.UTF8Type,org.apache.cassandra.db.marshal.LongType)
//	    validator: org.apache.cassandra.db.marshal.BytesType
//	    columns:
//	      sender: org.apache.cassandra.db.marshal.UTF8Type
//
// A missing comparator or validator resolves to BytesType.
package schema

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/cassmarshal"
	"github.com/unkn0wn-root/cassmarshal/codec"
)

var (
	ErrUnknownFamily = errors.New("schema: unknown column family")
	ErrNoFamilies    = errors.New("schema: no column families")
)

// File is the on-disk shape.
type File struct {
	ColumnFamilies map[string]ColumnFamily `yaml:"column_families"`
}

type ColumnFamily struct {
	Comparator string            `yaml:"comparator"`
	Validator  string            `yaml:"validator"`
	Columns    map[string]string `yaml:"columns,omitempty"`
}

// Schema is read-only after Load and safe for concurrent use.
type Schema struct {
	families map[string]*family
}

type family struct {
	comparator *cassmarshal.Marshal
	validator  *cassmarshal.Marshal
	columns    map[string]*cassmarshal.Marshal
}

// Load reads and resolves the file at path. One registry is shared by every
// Marshal; opts.Registry is used when set.
func Load(path string, opts cassmarshal.Options) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	s, err := Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func Parse(data []byte, opts cassmarshal.Options) (*Schema, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("schema: parse: %w", err)
	}
	return New(f, opts)
}

// New resolves every descriptor in f. The first unknown or malformed type
// fails the whole schema.
func New(f File, opts cassmarshal.Options) (*Schema, error) {
	if len(f.ColumnFamilies) == 0 {
		return nil, ErrNoFamilies
	}
	if opts.Registry == nil {
		opts.Registry = codec.NewRegistry()
	}

	s := &Schema{families: make(map[string]*family, len(f.ColumnFamilies))}
	for _, name := range sortedKeys(f.ColumnFamilies) {
		cf := f.ColumnFamilies[name]
		fam := &family{}
		var err error
		if fam.comparator, err = cassmarshal.New(cf.Comparator, opts); err != nil {
			return nil, fmt.Errorf("schema: %s comparator: %w", name, err)
		}
		if fam.validator, err = cassmarshal.New(cf.Validator, opts); err != nil {
			return nil, fmt.Errorf("schema: %s validator: %w", name, err)
		}
		if len(cf.Columns) > 0 {
			fam.columns = make(map[string]*cassmarshal.Marshal, len(cf.Columns))
			for _, col := range sortedKeys(cf.Columns) {
				m, err := cassmarshal.New(cf.Columns[col], opts)
				if err != nil {
					return nil, fmt.Errorf("schema: %s column %s: %w", name, col, err)
				}
				fam.columns[col] = m
			}
		}
		s.families[name] = fam
	}
	return s, nil
}

// Families lists column family names, sorted.
func (s *Schema) Families() []string { return sortedKeys(s.families) }

func (s *Schema) Comparator(cf string) (*cassmarshal.Marshal, error) {
	fam, err := s.family(cf)
	if err != nil {
		return nil, err
	}
	return fam.comparator, nil
}

// Validator returns the family's default value type.
func (s *Schema) Validator(cf string) (*cassmarshal.Marshal, error) {
	fam, err := s.family(cf)
	if err != nil {
		return nil, err
	}
	return fam.validator, nil
}

// Column returns the value type declared for column col, falling back to
// the family validator.
func (s *Schema) Column(cf, col string) (*cassmarshal.Marshal, error) {
	fam, err := s.family(cf)
	if err != nil {
		return nil, err
	}
	if m, ok := fam.columns[col]; ok {
		return m, nil
	}
	return fam.validator, nil
}

func (s *Schema) family(cf string) (*family, error) {
	fam, ok := s.families[cf]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, cf)
	}
	return fam, nil
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
