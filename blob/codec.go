// Package blob serializes structured Go values into the opaque payloads of
// BytesType, SetType, ListType and MapType columns. The marshalling layer
// passes those payloads through untouched; a Codec[V] gives them a shape on
// the application side.
package blob

// Codec converts V to and from an opaque column payload.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
