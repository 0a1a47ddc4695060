package codec

import (
	"strings"
	"time"
)

// dateCodec stores epoch milliseconds through the LongType layout, so it
// shares LongType's decode precision (instants before 1969-12-07 are not
// recovered exactly).
type dateCodec struct{}

func (dateCodec) Kind() Kind { return Date }

func (dateCodec) Encode(v any) ([]byte, error) {
	switch x := v.(type) {
	case time.Time:
		return putLong(x.UnixMilli()), nil
	case string:
		s := strings.TrimSpace(x)
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return putLong(t.UnixMilli()), nil
		}
		n, err := parseInt(Date, s)
		if err != nil {
			return nil, err
		}
		return putLong(n), nil
	}
	n, err := toInt64(Date, v)
	if err != nil {
		return nil, err
	}
	return putLong(n), nil
}

func (dateCodec) Decode(b []byte) (any, error) {
	if len(b) != 8 {
		return nil, badLength(Date, len(b), 8)
	}
	return time.UnixMilli(decodeLong(b)).UTC(), nil
}
