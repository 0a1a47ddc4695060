package blob

import "google.golang.org/protobuf/proto"

// Protobuf stores a proto message. Encoding is deterministic so a message
// always maps to the same column bytes within one binary.
type Protobuf[T proto.Message] struct {
	new func() T // e.g. func() *pb.Profile { return &pb.Profile{} }
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
