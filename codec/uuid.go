package codec

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// uuidCodec backs UUIDType, LexicalUUIDType and TimeUUIDType: 16 raw bytes.
// TimeUUIDType only accepts version 1 UUIDs, and additionally encodes a
// time.Time as the lowest version 1 UUID of that millisecond (MinTimeUUID).
type uuidCodec struct{ kind Kind }

func (c uuidCodec) Kind() Kind { return c.kind }

func (c uuidCodec) Encode(v any) ([]byte, error) {
	var u uuid.UUID
	switch x := v.(type) {
	case uuid.UUID:
		u = x
	case [16]byte:
		u = x
	case []byte:
		p, err := uuid.FromBytes(x)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidLength, c.kind, err)
		}
		u = p
	case string:
		p, err := uuid.Parse(x)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTypeMismatch, c.kind, err)
		}
		u = p
	case time.Time:
		if c.kind != TimeUUID {
			return nil, mismatch(c.kind, v)
		}
		u = MinTimeUUID(x)
	default:
		return nil, mismatch(c.kind, v)
	}
	if c.kind == TimeUUID && u.Version() != 1 {
		return nil, fmt.Errorf("%w: %s wants a version 1 UUID, got version %d", ErrTypeMismatch, c.kind, u.Version())
	}
	out := make([]byte, 16)
	copy(out, u[:])
	return out, nil
}

func (c uuidCodec) Decode(b []byte) (any, error) {
	if len(b) != 16 {
		return nil, badLength(c.kind, len(b), 16)
	}
	var u uuid.UUID
	copy(u[:], b)
	return u, nil
}

// 100ns intervals between 1582-10-15 and the Unix epoch.
const gregorianOffset = 0x01B21DD213814000

// Clock-sequence/node halves of the lowest and highest version 1 UUIDs for
// a timestamp, as used by store-side range helpers.
const (
	minClockNode = 0x8080808080808080
	maxClockNode = 0x7f7f7f7f7f7f7f7f
)

// MinTimeUUID returns the version 1 UUID that starts a time slice at t
// (millisecond precision).
func MinTimeUUID(t time.Time) uuid.UUID {
	return timeUUID(uint64(t.UnixMilli())*10000, minClockNode)
}

// MaxTimeUUID returns the version 1 UUID that ends a time slice at t: the
// last 100ns tick of t's millisecond.
func MaxTimeUUID(t time.Time) uuid.UUID {
	return timeUUID(uint64(t.UnixMilli())*10000+9999, maxClockNode)
}

func timeUUID(ticks, clockNode uint64) uuid.UUID {
	ts := ticks + gregorianOffset
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], uint32(ts))
	binary.BigEndian.PutUint16(u[4:6], uint16(ts>>32))
	binary.BigEndian.PutUint16(u[6:8], uint16(ts>>48)&0x0FFF|0x1000)
	binary.BigEndian.PutUint64(u[8:16], clockNode)
	return u
}

// TimeOf returns the instant carried by a version 1 UUID.
func TimeOf(u uuid.UUID) time.Time {
	sec, nsec := u.Time().UnixTime()
	return time.Unix(sec, nsec).UTC()
}
