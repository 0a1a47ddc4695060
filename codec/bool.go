package codec

import (
	"fmt"
	"strconv"
)

type boolCodec struct{}

func (boolCodec) Kind() Kind { return Boolean }

func (boolCodec) Encode(v any) ([]byte, error) {
	var t bool
	switch x := v.(type) {
	case bool:
		t = x
	case string:
		p, err := strconv.ParseBool(x)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTypeMismatch, Boolean, err)
		}
		t = p
	default:
		return nil, mismatch(Boolean, v)
	}
	if t {
		return []byte{0x01}, nil
	}
	return []byte{0x00}, nil
}

// Decode only knows 0x00 and 0x01. Any other byte has no defined value and
// decodes to nil.
func (boolCodec) Decode(b []byte) (any, error) {
	if len(b) != 1 {
		return nil, badLength(Boolean, len(b), 1)
	}
	switch b[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	}
	return nil, nil
}
