package blob

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOR stores V using fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
//
// Canonical (RFC 8949 Core Deterministic) encoding is always used: column
// payloads end up inside keys and values that are compared byte-for-byte,
// so the same value must always yield the same bytes. Timestamps are encoded
// as RFC3339Nano strings.
type CBOR[V any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec[struct{}] = CBOR[struct{}]{}

// NewCBOR builds a CBOR codec. maxNestedLevels bounds decode recursion;
// 0 keeps the library default.
func NewCBOR[V any](maxNestedLevels int) (CBOR[V], error) {
	eo := cbor.CoreDetEncOptions()
	eo.Time = cbor.TimeRFC3339Nano

	em, err := eo.EncMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	do := cbor.DecOptions{}
	if maxNestedLevels > 0 {
		do.MaxNestedLevels = maxNestedLevels
	}
	dm, err := do.DecMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	return CBOR[V]{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
func MustCBOR[V any](maxNestedLevels int) CBOR[V] {
	c, err := NewCBOR[V](maxNestedLevels)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR[V]) Encode(v V) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c CBOR[V]) Decode(b []byte) (V, error) {
	var v V
	err := c.dec.Unmarshal(b, &v)
	return v, err
}
