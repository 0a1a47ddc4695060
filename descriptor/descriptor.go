// Package descriptor parses comparator/validator class strings into a small
// tagged tree: a Leaf naming one atomic column type, or a Composite holding
// the ordered leaf descriptors of a composite key.
//
// Accepted grammar (whitespace around names is ignored):
//
//	type := name [ "(" [ type { "," type } ] ")" ]
//	name := [ prefix "." ] TypeName
//
// Only CompositeType gives meaning to its argument list. ReversedType is
// unwrapped to its inner type (sort order is not modeled here). Arguments of
// SetType, ListType, MapType and any other type are tolerated and dropped.
package descriptor

import (
	"errors"
	"fmt"
	"strings"
)

// Kind tags a Descriptor.
type Kind uint8

const (
	Leaf Kind = iota
	Composite
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Composite:
		return "composite"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Well-known type names the parser maps onto.
const (
	CompositeTypeName = "CompositeType"
	ReversedTypeName  = "ReversedType"
	DefaultLeafName   = "BytesType"
)

var ErrMalformed = errors.New("descriptor: malformed type string")

// Descriptor is immutable once returned by Parse.
type Descriptor struct {
	Kind Kind
	// Name is the short leaf name (e.g. "UTF8Type"). For composites it is
	// always CompositeTypeName.
	Name     string
	Children []Descriptor
}

func NewLeaf(name string) Descriptor {
	return Descriptor{Kind: Leaf, Name: name}
}

func NewComposite(children ...Descriptor) Descriptor {
	cs := make([]Descriptor, len(children))
	copy(cs, children)
	return Descriptor{Kind: Composite, Name: CompositeTypeName, Children: cs}
}

func (d Descriptor) IsComposite() bool { return d.Kind == Composite }

// String renders the short canonical form, e.g. "CompositeType(UTF8Type,LongType)".
func (d Descriptor) String() string {
	if d.Kind != Composite {
		return d.Name
	}
	var sb strings.Builder
	sb.WriteString(CompositeTypeName)
	sb.WriteByte('(')
	for i, c := range d.Children {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Parse resolves a comparator string. An empty string stands for a missing
// descriptor and yields Leaf(DefaultLeafName).
func Parse(raw string) (Descriptor, error) {
	if strings.TrimSpace(raw) == "" {
		return NewLeaf(DefaultLeafName), nil
	}
	p := parser{s: raw}
	n, err := p.parseType()
	if err != nil {
		return Descriptor{}, err
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return Descriptor{}, p.errorf("unexpected %q", p.s[p.pos])
	}
	return resolve(n)
}

// MustParse is like Parse but panics on error. Handy for tests and package-level variables.
func MustParse(raw string) Descriptor {
	d, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return d
}

// ShortName returns the last dot-separated segment of a class name.
func ShortName(class string) string {
	class = strings.TrimSpace(class)
	if i := strings.LastIndexByte(class, '.'); i >= 0 {
		return class[i+1:]
	}
	return class
}

func resolve(n node) (Descriptor, error) {
	name := ShortName(n.name)
	switch name {
	case CompositeTypeName:
		if len(n.args) == 0 {
			return Descriptor{}, fmt.Errorf("%w: %s without components", ErrMalformed, CompositeTypeName)
		}
		children := make([]Descriptor, 0, len(n.args))
		for _, a := range n.args {
			c, err := resolve(a)
			if err != nil {
				return Descriptor{}, err
			}
			children = append(children, c)
		}
		return Descriptor{Kind: Composite, Name: CompositeTypeName, Children: children}, nil
	case ReversedTypeName:
		if len(n.args) == 0 {
			return NewLeaf(ReversedTypeName), nil
		}
		return resolve(n.args[0])
	default:
		return NewLeaf(name), nil
	}
}
