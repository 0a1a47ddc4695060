// Package cassmarshal converts between Go values and the binary column
// format of a wide-column store, driven by the comparator/validator strings
// the store publishes in its schema.
//
// Components:
//   - descriptor: parses "org.apache.cassandra.db.marshal.X" strings into a
//     Leaf or Composite descriptor.
//   - codec: one encoder/decoder per atomic type plus the immutable Registry.
//   - Composite: frames several leaf values into one sortable key with
//     end-of-component markers for slice bounds.
//   - Marshal: binds a descriptor to serialize/deserialize once; reuse it for
//     every row and column of that column family.
//
// Composite layout, per component:
//
//	len(u16 be) | payload(len) | eoc(1)
//
// eoc is 0x00 (equal) on every component but the last, whose marker follows
// the slice direction:
//
//	Start, inclusive  0xFF     End, inclusive  0x01
//	Start, exclusive  0x01     End, exclusive  0xFF
//
// Usage:
//
//	reg := codec.NewRegistry() // build once, share everywhere
//	m, err := cassmarshal.New(comparator, cassmarshal.Options{Registry: reg})
//	key, _ := m.Serialize([]any{"room42", int64(1000)})
//	from, _ := m.Slice(cassmarshal.SliceStart, cassmarshal.Exact("room42"), cassmarshal.Bound(int64(900), true))
package cassmarshal
