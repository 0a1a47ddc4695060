package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// EOC is the end-of-component marker that trails every composite component.
type EOC byte

const (
	// EOCEqual: keep comparing the next component.
	EOCEqual EOC = 0x00
	// EOCOpenLow closes a slice that ends at (or starts just after) a value.
	EOCOpenLow EOC = 0x01
	// EOCOpenHigh opens a slice that starts at (or ends just before) a value.
	EOCOpenHigh EOC = 0xFF
)

// MaxComponent is the largest payload the u16 length prefix can describe.
const MaxComponent = 0xFFFF

var ErrComponentTooLarge = errors.New("cassmarshal: composite component too large")

// Component is one framed piece of a composite key.
type Component struct {
	Payload []byte
	EOC     EOC
}

// EncodeComposite frames components back to back:
//
//	len(u16 be) | payload(len) | eoc(1)   * n
func EncodeComposite(comps []Component) ([]byte, error) {
	total := 0
	for i, c := range comps {
		if len(c.Payload) > MaxComponent {
			return nil, fmt.Errorf("%w: component %d is %d bytes (max %d)", ErrComponentTooLarge, i, len(c.Payload), MaxComponent)
		}
		total += 2 + len(c.Payload) + 1
	}

	var buf bytes.Buffer
	buf.Grow(total)

	var u2 [2]byte
	for _, c := range comps {
		binary.BigEndian.PutUint16(u2[:], uint16(len(c.Payload)))
		buf.Write(u2[:])
		buf.Write(c.Payload)
		buf.WriteByte(byte(c.EOC))
	}
	return buf.Bytes(), nil
}

// DecodeComposite reads components until the buffer runs out. A buffer cut
// short is not an error: whatever complete components were read are
// returned, and complete reports whether the input ended on a component
// boundary. A final component whose payload is present but whose marker is
// missing is still returned.
//
// Payloads are copied out of b into one backing array, so the caller may
// reuse b afterwards.
func DecodeComposite(b []byte) (comps []Component, complete bool) {
	// payload bytes never exceed len(b)
	arena := make([]byte, 0, len(b))
	off := 0
	for off < len(b) {
		if off+2 > len(b) {
			return comps, false
		}
		n := int(binary.BigEndian.Uint16(b[off : off+2]))
		off += 2
		if n > len(b)-off {
			return comps, false
		}
		start := len(arena)
		arena = append(arena, b[off:off+n]...)
		c := Component{Payload: arena[start : start+n : start+n]}
		off += n
		if off >= len(b) {
			comps = append(comps, c)
			return comps, false
		}
		c.EOC = EOC(b[off])
		off++
		comps = append(comps, c)
	}
	return comps, true
}
