package codec

import (
	"encoding/binary"
	"math"
)

// doubleCodec backs DoubleType and DecimalType. DecimalType is carried as a
// float64: scale and arbitrary precision are not kept.
type doubleCodec struct{ kind Kind }

func (c doubleCodec) Kind() Kind { return c.kind }

func (c doubleCodec) Encode(v any) ([]byte, error) {
	f, err := toFloat64(c.kind, v)
	if err != nil {
		return nil, err
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, math.Float64bits(f))
	return b, nil
}

func (c doubleCodec) Decode(b []byte) (any, error) {
	if len(b) != 8 {
		return nil, badLength(c.kind, len(b), 8)
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

type floatCodec struct{}

func (floatCodec) Kind() Kind { return Float }

func (floatCodec) Encode(v any) ([]byte, error) {
	f, err := toFloat64(Float, v)
	if err != nil {
		return nil, err
	}
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, math.Float32bits(float32(f)))
	return b, nil
}

func (floatCodec) Decode(b []byte) (any, error) {
	if len(b) != 4 {
		return nil, badLength(Float, len(b), 4)
	}
	return math.Float32frombits(binary.BigEndian.Uint32(b)), nil
}
