package blob

import (
	"errors"
	"fmt"
)

// MaxComponent is the largest payload a single composite component can carry
// (its length prefix is a big-endian uint16).
const MaxComponent = 0xFFFF

var ErrTooLarge = errors.New("blob: payload too large")

// Limit wraps another codec and rejects payloads above a size bound.
// A bound <= 0 disables that side.
//
// Wrap payloads destined for a composite component with MaxEncode set to
// MaxComponent so an oversized value fails before it reaches the key encoder.
type Limit[V any] struct {
	Inner     Codec[V]
	MaxEncode int
	MaxDecode int
}

func (c Limit[V]) Encode(v V) ([]byte, error) {
	b, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	if c.MaxEncode > 0 && len(b) > c.MaxEncode {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, len(b), c.MaxEncode)
	}
	return b, nil
}

func (c Limit[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("%w: %d > %d", ErrTooLarge, len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
