package cassmarshal

// Hooks are lightweight callbacks for schema and decode events.
// Implementations MUST be cheap, non-blocking and safe for concurrent use:
// they run inline on every Marshal call that triggers them.
type Hooks interface {
	// A descriptor resolved into a Marshal.
	Resolved(descriptor string, composite bool)

	// A descriptor named a leaf type the registry does not know.
	UnknownType(descriptor, name string)

	// A composite buffer did not end on a component boundary; decoded is
	// how many components were returned. A last payload that is complete
	// but lacks its marker byte is returned and counted.
	CompositeTruncated(descriptor string, decoded int)

	// A composite buffer held more components than the type declares.
	CompositeOverrun(descriptor string, components, declared int)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) Resolved(string, bool)             {}
func (NopHooks) UnknownType(string, string)        {}
func (NopHooks) CompositeTruncated(string, int)    {}
func (NopHooks) CompositeOverrun(string, int, int) {}
