package cassmarshal

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/cassmarshal/blob"
	"github.com/unkn0wn-root/cassmarshal/codec"
)

type member struct {
	Nick  string   `msgpack:"nick" json:"nick"`
	Roles []string `msgpack:"roles" json:"roles"`
}

func TestValueTyped(t *testing.T) {
	v := Of[int64](newTestMarshal(t, "LongType", nil))
	b, err := v.Encode(-7)
	require.NoError(t, err)
	got, err := v.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, int64(-7), got)

	got, err = v.Decode(nil)
	require.NoError(t, err)
	assert.Zero(t, got)

	ts := Of[time.Time](newTestMarshal(t, "DateType", nil))
	at := time.UnixMilli(1_600_000_000_000).UTC()
	b, err = ts.Encode(at)
	require.NoError(t, err)
	back, err := ts.Decode(b)
	require.NoError(t, err)
	assert.True(t, back.Equal(at))
}

func TestValueWrongType(t *testing.T) {
	wrong := Of[string](newTestMarshal(t, "Int32Type", nil))
	b, err := Of[int32](newTestMarshal(t, "Int32Type", nil)).Encode(5)
	require.NoError(t, err)
	_, err = wrong.Decode(b)
	assert.True(t, errors.Is(err, codec.ErrTypeMismatch), "err = %v", err)
}

func TestValueComposite(t *testing.T) {
	v := Of[[]any](newTestMarshal(t, utf8Long, nil))
	b, err := v.Encode([]any{"room42", int64(1)})
	require.NoError(t, err)
	got, err := v.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, []any{"room42", int64(1)}, got)
}

func TestOpaqueColumns(t *testing.T) {
	in := member{Nick: "ada", Roles: []string{"owner", "mod"}}
	for _, raw := range []string{"BytesType", pkg + "MapType(" + pkg + "UTF8Type," + pkg + "UTF8Type)", pkg + "ListType(" + pkg + "UTF8Type)"} {
		c, err := Opaque[member](newTestMarshal(t, raw, nil), blob.Msgpack[member]{})
		require.NoError(t, err, raw)
		b, err := c.Encode(in)
		require.NoError(t, err)
		got, err := c.Decode(b)
		require.NoError(t, err)
		assert.Equal(t, in, got, raw)

		zero, err := c.Decode(nil)
		require.NoError(t, err)
		assert.Equal(t, member{}, zero)
	}
}

func TestOpaqueWithLimit(t *testing.T) {
	c, err := Opaque[string](newTestMarshal(t, "BytesType", nil), blob.Limit[string]{Inner: blob.String{}, MaxEncode: 4})
	require.NoError(t, err)
	_, err = c.Encode("toolong")
	assert.True(t, errors.Is(err, blob.ErrTooLarge))
}

func TestOpaqueRejectsTypedColumns(t *testing.T) {
	for _, raw := range []string{"UTF8Type", utf8Long} {
		_, err := Opaque[member](newTestMarshal(t, raw, nil), blob.JSON[member]{})
		assert.True(t, errors.Is(err, ErrNotOpaque), "%s: err = %v", raw, err)
	}
}
