package blob

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack stores V using vmihailenco/msgpack/v5. The zero value is ready to use.
//
// Map keys are sorted on encode so equal values always produce equal column
// payloads. Use `msgpack:"name"` tags for explicit field names.
type Msgpack[V any] struct{}

var _ Codec[struct{}] = Msgpack[struct{}]{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	err := msgpack.Unmarshal(b, &v)
	return v, err
}
