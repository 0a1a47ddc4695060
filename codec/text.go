package codec

import "fmt"

type utf8Codec struct{}

func (utf8Codec) Kind() Kind { return UTF8 }

// Encode writes nil as an empty string.
func (utf8Codec) Encode(v any) ([]byte, error) {
	s, ok := text(v)
	if !ok {
		return nil, mismatch(UTF8, v)
	}
	out := make([]byte, len(s))
	copy(out, s)
	return out, nil
}

func (utf8Codec) Decode(b []byte) (any, error) { return string(b), nil }

// asciiCodec keeps the low byte of each character on encode and the low
// seven bits of each byte on decode.
type asciiCodec struct{}

func (asciiCodec) Kind() Kind { return ASCII }

func (asciiCodec) Encode(v any) ([]byte, error) {
	s, ok := text(v)
	if !ok {
		return nil, mismatch(ASCII, v)
	}
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = append(out, byte(r))
	}
	return out, nil
}

func (asciiCodec) Decode(b []byte) (any, error) {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = c & 0x7F
	}
	return string(out), nil
}

func text(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", true
	case string:
		return x, true
	case []byte:
		return string(x), true
	case fmt.Stringer:
		return x.String(), true
	default:
		return "", false
	}
}
