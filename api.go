package cassmarshal

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/cassmarshal/codec"
	"github.com/unkn0wn-root/cassmarshal/descriptor"
	"github.com/unkn0wn-root/cassmarshal/internal/wire"
)

// Options tune Marshal construction. All fields are optional.
type Options struct {
	Registry *codec.Registry // nil => codec.NewRegistry(); share one across Marshals
	Logger   Logger          // nil => NopLogger
	Hooks    Hooks           // nil => NopHooks
}

// Marshal binds one comparator or validator string to its encoder and
// decoder. It is read-only after New and safe for concurrent use.
type Marshal struct {
	raw   string
	typ   descriptor.Descriptor
	leaf  codec.Codec
	comp  *Composite
	log   Logger
	hooks Hooks

	serialize   func(any) ([]byte, error)
	deserialize func([]byte) (any, error)
}

// New resolves raw against the registry. An unknown leaf name fails with an
// *UnknownTypeError (errors.Is(err, ErrUnknownType)); a composite component
// that is itself composite fails with ErrNestedComposite.
func New(raw string, opts Options) (*Marshal, error) {
	reg := opts.Registry
	if reg == nil {
		reg = codec.NewRegistry()
	}
	m := &Marshal{
		raw:   raw,
		log:   coalesce[Logger](opts.Logger, NopLogger{}),
		hooks: coalesce[Hooks](opts.Hooks, NopHooks{}),
	}

	typ, err := descriptor.Parse(raw)
	if err != nil {
		m.log.Error("type descriptor parse failed", Fields{"descriptor": raw, "err": err})
		return nil, fmt.Errorf("cassmarshal: %w", err)
	}
	m.typ = typ

	if typ.IsComposite() {
		codecs := make([]codec.Codec, 0, len(typ.Children))
		for i, child := range typ.Children {
			if child.IsComposite() {
				m.log.Error("nested composite type", Fields{"descriptor": raw, "component": i})
				return nil, fmt.Errorf("%w: component %d of %q", ErrNestedComposite, i, raw)
			}
			c, err := m.lookup(reg, child.Name)
			if err != nil {
				return nil, err
			}
			codecs = append(codecs, c)
		}
		comp, err := NewComposite(codecs...)
		if err != nil {
			return nil, err
		}
		m.comp = comp
		m.serialize = func(v any) ([]byte, error) {
			return comp.Encode(SliceNone, components(v)...)
		}
		m.deserialize = m.decodeComposite
	} else {
		c, err := m.lookup(reg, typ.Name)
		if err != nil {
			return nil, err
		}
		m.leaf = c
		m.serialize = c.Encode
		m.deserialize = func(b []byte) (any, error) {
			if b == nil {
				return nil, nil
			}
			return c.Decode(b)
		}
	}

	m.hooks.Resolved(raw, typ.IsComposite())
	m.log.Debug("type descriptor resolved", Fields{
		"descriptor": raw,
		"type":       typ.String(),
		"composite":  typ.IsComposite(),
	})
	return m, nil
}

// MustNew is like New but panics on error. Meant for tests and package-level
// variables built from constant descriptors.
func MustNew(raw string, opts Options) *Marshal {
	m, err := New(raw, opts)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Marshal) lookup(reg *codec.Registry, name string) (codec.Codec, error) {
	c, ok := reg.Lookup(name)
	if !ok {
		m.hooks.UnknownType(m.raw, name)
		m.log.Error("unknown column type", Fields{"descriptor": m.raw, "name": name})
		return nil, &UnknownTypeError{Descriptor: m.raw, Name: name}
	}
	return c, nil
}

// Type returns the parsed descriptor.
func (m *Marshal) Type() descriptor.Descriptor { return m.typ }

// Descriptor returns the string the Marshal was built from.
func (m *Marshal) Descriptor() string { return m.raw }

func (m *Marshal) IsComposite() bool { return m.comp != nil }

// LeafKind reports the codec kind of a non-composite Marshal.
func (m *Marshal) LeafKind() (codec.Kind, bool) {
	if m.leaf == nil {
		return 0, false
	}
	return m.leaf.Kind(), true
}

// Components is the number of declared composite components, 0 for leaves.
func (m *Marshal) Components() int {
	if m.comp == nil {
		return 0
	}
	return m.comp.Len()
}

// Serialize encodes v. For composites v may be a []any (elements may be
// Components), a []Component, a single Component or a lone value; the key
// is encoded with SliceNone.
func (m *Marshal) Serialize(v any) ([]byte, error) { return m.serialize(v) }

// Deserialize decodes b. nil decodes to nil for every type. Composites
// decode to []any.
func (m *Marshal) Deserialize(b []byte) (any, error) { return m.deserialize(b) }

// Slice encodes a composite range-scan bound.
func (m *Marshal) Slice(dir Slice, comps ...Component) ([]byte, error) {
	if m.comp == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotComposite, m.typ)
	}
	return m.comp.Encode(dir, comps...)
}

func (m *Marshal) decodeComposite(b []byte) (any, error) {
	if b == nil {
		return nil, nil
	}
	vals, complete, err := m.comp.decode(b)
	if err != nil {
		if errors.Is(err, ErrCompositeOverrun) {
			parts, _ := wire.DecodeComposite(b)
			m.hooks.CompositeOverrun(m.raw, len(parts), m.comp.Len())
			m.log.Warn("composite key overrun", Fields{"descriptor": m.raw, "components": len(parts), "declared": m.comp.Len()})
		}
		return nil, err
	}
	if !complete {
		m.hooks.CompositeTruncated(m.raw, len(vals))
		m.log.Debug("composite key truncated", Fields{"descriptor": m.raw, "decoded": len(vals)})
	}
	return vals, nil
}
