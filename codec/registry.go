package codec

import "sort"

// Registry maps canonical leaf names to codecs. It is filled once by
// NewRegistry and never mutated, so one instance can back any number of
// goroutines and Marshal values. Pass it explicitly; there is no package
// level default.
type Registry struct {
	byName map[string]Codec
}

// NewRegistry builds a registry holding a codec for every Kind.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Codec, numKinds)}
	for _, k := range Kinds() {
		r.byName[k.String()] = nullSafe{newCodec(k)}
	}
	return r
}

func newCodec(k Kind) Codec {
	switch k {
	case Bytes, Reversed, Set, List, Map:
		return rawCodec{kind: k}
	case Long, Counter:
		return longCodec{kind: k}
	case Int32:
		return int32Codec{}
	case Integer:
		return integerCodec{}
	case UTF8:
		return utf8Codec{}
	case ASCII:
		return asciiCodec{}
	case Double, Decimal:
		return doubleCodec{kind: k}
	case Float:
		return floatCodec{}
	case Boolean:
		return boolCodec{}
	case Date:
		return dateCodec{}
	case UUID, LexicalUUID, TimeUUID:
		return uuidCodec{kind: k}
	case Composite:
		return compositeLeaf{}
	}
	panic("codec: no codec for " + k.String())
}

// Lookup returns the codec registered under a canonical leaf name.
func (r *Registry) Lookup(name string) (Codec, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.byName))
	for n := range r.byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// nullSafe makes Decode(nil) yield nil for every kind.
type nullSafe struct{ Codec }

func (c nullSafe) Decode(b []byte) (any, error) {
	if b == nil {
		return nil, nil
	}
	return c.Codec.Decode(b)
}
