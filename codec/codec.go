// Package codec holds one encoder/decoder per atomic column type and the
// immutable Registry that maps canonical type names to them.
//
// Values cross the boundary as Go values (`any`); decoders return a fixed Go
// type per kind:
//
//	BytesType, ReversedType, SetType, ListType, MapType  []byte
//	LongType, CounterColumnType                          int64
//	Int32Type                                            int32
//	IntegerType                                          int64, or *big.Int past 8 bytes
//	UTF8Type, AsciiType                                  string
//	DoubleType, DecimalType                              float64
//	FloatType                                            float32
//	BooleanType                                          bool
//	DateType                                             time.Time (UTC)
//	UUIDType, LexicalUUIDType, TimeUUIDType              uuid.UUID
//
// Every codec obtained from a Registry decodes a nil buffer to a nil value.
package codec

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch  = errors.New("codec: unsupported value type")
	ErrInvalidLength = errors.New("codec: invalid encoded length")
	ErrOutOfRange    = errors.New("codec: value out of range")
	ErrCompositeLeaf = errors.New("codec: composite values are not handled by a leaf codec")
)

// Codec converts one atomic column type.
type Codec interface {
	Kind() Kind
	Encode(v any) ([]byte, error)
	Decode(b []byte) (any, error)
}

// Kind enumerates the leaf types known to this package.
type Kind uint8

const (
	Bytes Kind = iota
	Long
	Counter
	Int32
	Integer
	UTF8
	ASCII
	Double
	Decimal
	Float
	Boolean
	Date
	UUID
	LexicalUUID
	TimeUUID
	Composite
	Reversed
	Set
	List
	Map

	numKinds
)

var kindNames = [numKinds]string{
	Bytes:       "BytesType",
	Long:        "LongType",
	Counter:     "CounterColumnType",
	Int32:       "Int32Type",
	Integer:     "IntegerType",
	UTF8:        "UTF8Type",
	ASCII:       "AsciiType",
	Double:      "DoubleType",
	Decimal:     "DecimalType",
	Float:       "FloatType",
	Boolean:     "BooleanType",
	Date:        "DateType",
	UUID:        "UUIDType",
	LexicalUUID: "LexicalUUIDType",
	TimeUUID:    "TimeUUIDType",
	Composite:   "CompositeType",
	Reversed:    "ReversedType",
	Set:         "SetType",
	List:        "ListType",
	Map:         "MapType",
}

// String returns the canonical type name, e.g. "UTF8Type".
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Kinds lists every leaf kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

func mismatch(k Kind, v any) error {
	return fmt.Errorf("%w: %s cannot encode %T", ErrTypeMismatch, k, v)
}

func badLength(k Kind, got, want int) error {
	return fmt.Errorf("%w: %s wants %d bytes, got %d", ErrInvalidLength, k, want, got)
}
