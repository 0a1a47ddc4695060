package cassmarshal

// coalesce picks def when v is T's zero value.
func coalesce[T comparable](v, def T) T {
	if v == *new(T) {
		return def
	}
	return v
}
