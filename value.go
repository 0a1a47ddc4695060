package cassmarshal

import (
	"fmt"

	"github.com/unkn0wn-root/cassmarshal/blob"
	"github.com/unkn0wn-root/cassmarshal/codec"
)

// Value is a typed view over a Marshal. V must match the Go type the
// column's codec decodes to (see package codec), e.g. Of[int64] for
// LongType or Of[[]any] for a composite.
type Value[V any] struct {
	m *Marshal
}

var _ blob.Codec[int64] = Value[int64]{}

func Of[V any](m *Marshal) Value[V] { return Value[V]{m: m} }

func (v Value[V]) Encode(x V) ([]byte, error) { return v.m.Serialize(x) }

// Decode maps a nil result (nil input, or an undefined boolean byte) to the
// zero V.
func (v Value[V]) Decode(b []byte) (V, error) {
	var zero V
	out, err := v.m.Deserialize(b)
	if err != nil || out == nil {
		return zero, err
	}
	x, ok := out.(V)
	if !ok {
		return zero, fmt.Errorf("%w: %s decodes to %T, not %T", codec.ErrTypeMismatch, v.m.typ, out, zero)
	}
	return x, nil
}

// Opaque layers a structured codec over a column whose values the store
// treats as opaque bytes (BytesType and the collection types).
func Opaque[V any](m *Marshal, c blob.Codec[V]) (blob.Codec[V], error) {
	k, ok := m.LeafKind()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotOpaque, m.typ)
	}
	switch k {
	case codec.Bytes, codec.Set, codec.List, codec.Map:
		return opaque[V]{m: m, inner: c}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotOpaque, k)
	}
}

type opaque[V any] struct {
	m     *Marshal
	inner blob.Codec[V]
}

func (o opaque[V]) Encode(v V) ([]byte, error) {
	b, err := o.inner.Encode(v)
	if err != nil {
		return nil, err
	}
	return o.m.Serialize(b)
}

func (o opaque[V]) Decode(b []byte) (V, error) {
	var zero V
	out, err := o.m.Deserialize(b)
	if err != nil || out == nil {
		return zero, err
	}
	return o.inner.Decode(out.([]byte))
}
