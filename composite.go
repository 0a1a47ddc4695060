package cassmarshal

import (
	"fmt"

	"github.com/unkn0wn-root/cassmarshal/codec"
	"github.com/unkn0wn-root/cassmarshal/internal/wire"
)

// Slice is the direction of a composite encode: which end of a range scan
// the key bounds, or SliceNone for an exact key.
type Slice uint8

const (
	SliceNone Slice = iota
	SliceStart
	SliceEnd
)

func (s Slice) String() string {
	switch s {
	case SliceStart:
		return "start"
	case SliceEnd:
		return "end"
	default:
		return "none"
	}
}

// Component is one composite input: an exact value, or a bound carrying an
// inclusive flag. Build with Exact or Bound.
type Component struct {
	Value     any
	Inclusive bool
	bound     bool
}

func Exact(v any) Component { return Component{Value: v} }

func Bound(v any, inclusive bool) Component {
	return Component{Value: v, Inclusive: inclusive, bound: true}
}

func (c Component) IsBound() bool { return c.bound }

// Composite encodes and decodes keys over an ordered list of leaf codecs.
// It holds no mutable state.
type Composite struct {
	codecs []codec.Codec
}

// NewComposite rejects codecs of kind codec.Composite: a component cannot
// itself be a composite key.
func NewComposite(codecs ...codec.Codec) (*Composite, error) {
	cs := make([]codec.Codec, len(codecs))
	for i, c := range codecs {
		if c.Kind() == codec.Composite {
			return nil, fmt.Errorf("%w: component %d", ErrNestedComposite, i)
		}
		cs[i] = c
	}
	return &Composite{codecs: cs}, nil
}

// Len is the number of declared components.
func (c *Composite) Len() int { return len(c.codecs) }

// Encode frames up to Len() components. Every component but the last gets
// the equal marker; the last gets a marker from dir and its inclusive flag
// (plain values count as exclusive):
//
//	SliceStart: inclusive -> 0xFF, exclusive -> 0x01
//	SliceEnd:   inclusive -> 0x01, exclusive -> 0xFF
//	SliceNone:  bounds as SliceEnd; a plain value gets 0x01 when the key is
//	            full length and 0x00 when it is a prefix.
//
// An inclusive start and an exclusive end on the same value are therefore
// byte-identical.
func (c *Composite) Encode(dir Slice, comps ...Component) ([]byte, error) {
	if len(comps) > len(c.codecs) {
		return nil, fmt.Errorf("%w: got %d, declared %d", ErrTooManyComponents, len(comps), len(c.codecs))
	}
	if len(comps) == 0 {
		return []byte{}, nil
	}

	last := len(comps) - 1
	parts := make([]wire.Component, len(comps))
	for i, comp := range comps {
		payload, err := c.codecs[i].Encode(comp.Value)
		if err != nil {
			return nil, fmt.Errorf("cassmarshal: component %d: %w", i, err)
		}
		parts[i].Payload = payload
		if i == last {
			parts[i].EOC = terminalEOC(dir, comp, len(comps) == len(c.codecs))
		}
	}
	return wire.EncodeComposite(parts)
}

func terminalEOC(dir Slice, comp Component, full bool) wire.EOC {
	inclusive := comp.bound && comp.Inclusive
	switch dir {
	case SliceStart:
		if inclusive {
			return wire.EOCOpenHigh
		}
		return wire.EOCOpenLow
	case SliceEnd:
		if inclusive {
			return wire.EOCOpenLow
		}
		return wire.EOCOpenHigh
	}
	if comp.bound {
		return terminalEOC(SliceEnd, comp, full)
	}
	if full {
		return wire.EOCOpenLow
	}
	return wire.EOCEqual
}

// Decode returns one value per encoded component, in declared order.
// Markers are dropped. A short buffer yields fewer values; a buffer with
// more components than declared fails with ErrCompositeOverrun.
func (c *Composite) Decode(b []byte) ([]any, error) {
	vals, _, err := c.decode(b)
	return vals, err
}

func (c *Composite) decode(b []byte) (vals []any, complete bool, err error) {
	if b == nil {
		return nil, true, nil
	}
	parts, complete := wire.DecodeComposite(b)
	if len(parts) > len(c.codecs) {
		return nil, complete, fmt.Errorf("%w: got %d, declared %d", ErrCompositeOverrun, len(parts), len(c.codecs))
	}
	vals = make([]any, len(parts))
	for i, p := range parts {
		v, err := c.codecs[i].Decode(p.Payload)
		if err != nil {
			return nil, complete, fmt.Errorf("cassmarshal: component %d: %w", i, err)
		}
		vals[i] = v
	}
	return vals, complete, nil
}

// components normalizes the value forms Serialize accepts for composites.
func components(v any) []Component {
	switch x := v.(type) {
	case []Component:
		return x
	case Component:
		return []Component{x}
	case []any:
		out := make([]Component, len(x))
		for i, e := range x {
			if c, ok := e.(Component); ok {
				out[i] = c
			} else {
				out[i] = Exact(e)
			}
		}
		return out
	default:
		return []Component{Exact(v)}
	}
}
