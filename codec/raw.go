package codec

// rawCodec passes bytes through. It backs BytesType, ReversedType and the
// collection types, whose element layout is not modeled. Both directions
// return a fresh copy owned by the caller.
type rawCodec struct{ kind Kind }

func (c rawCodec) Kind() Kind { return c.kind }

func (c rawCodec) Encode(v any) ([]byte, error) {
	switch x := v.(type) {
	case []byte:
		return clone(x), nil
	case string:
		return []byte(x), nil
	default:
		return nil, mismatch(c.kind, v)
	}
}

func (c rawCodec) Decode(b []byte) (any, error) { return clone(b), nil }

// clone never returns nil, so an empty value stays distinct from a null one.
func clone(b []byte) []byte {
	return append(make([]byte, 0, len(b)), b...)
}

// compositeLeaf occupies the CompositeType slot so the name resolves, but
// refuses to run: composite keys go through the composite encoder.
type compositeLeaf struct{}

func (compositeLeaf) Kind() Kind                 { return Composite }
func (compositeLeaf) Encode(any) ([]byte, error) { return nil, ErrCompositeLeaf }
func (compositeLeaf) Decode([]byte) (any, error) { return nil, ErrCompositeLeaf }
