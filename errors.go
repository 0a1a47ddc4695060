package cassmarshal

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownType       = errors.New("cassmarshal: unknown type")
	ErrNestedComposite   = errors.New("cassmarshal: CompositeType inside CompositeType is not supported")
	ErrTooManyComponents = errors.New("cassmarshal: more components than the composite type declares")
	ErrCompositeOverrun  = errors.New("cassmarshal: encoded key carries more components than the composite type declares")
	ErrNotComposite      = errors.New("cassmarshal: type is not composite")
	ErrNotOpaque         = errors.New("cassmarshal: type does not carry opaque bytes")
)

// UnknownTypeError reports a leaf name the registry cannot resolve. No
// Marshal is produced when it is returned.
type UnknownTypeError struct {
	Descriptor string
	Name       string
}

func (e *UnknownTypeError) Error() string {
	if e.Descriptor == "" || e.Descriptor == e.Name {
		return fmt.Sprintf("cassmarshal: unknown type %q", e.Name)
	}
	return fmt.Sprintf("cassmarshal: unknown type %q in %q", e.Name, e.Descriptor)
}

func (e *UnknownTypeError) Is(target error) bool { return target == ErrUnknownType }
