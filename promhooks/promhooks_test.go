package promhooks

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/cassmarshal"
)

const (
	pkg      = "org.apache.cassandra.db.marshal."
	utf8Long = pkg + "CompositeType(" + pkg + "UTF8Type," + pkg + "LongType)"
)

func TestCountsMarshalEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := New(reg, "")
	opts := cassmarshal.Options{Hooks: h}

	m, err := cassmarshal.New(utf8Long, opts)
	require.NoError(t, err)
	_, err = cassmarshal.New(pkg+"UTF8Type", opts)
	require.NoError(t, err)
	_, err = cassmarshal.New(pkg+"FooType", opts)
	require.Error(t, err)

	// One full component followed by a cut-off second one.
	_, err = m.Deserialize([]byte{0x00, 0x01, 'a', 0x00, 0x00, 0x08, 0x00})
	require.NoError(t, err)

	// Three components against two declared.
	_, err = m.Deserialize([]byte{
		0x00, 0x01, 'a', 0x00,
		0x00, 0x01, 'b', 0x00,
		0x00, 0x01, 'c', 0x00,
	})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(h.resolved.WithLabelValues("CompositeType(UTF8Type,LongType)", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.resolved.WithLabelValues("UTF8Type", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.unknown.WithLabelValues("FooType")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.truncated.WithLabelValues("CompositeType(UTF8Type,LongType)")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.overrun.WithLabelValues("CompositeType(UTF8Type,LongType)")))
}

func TestNamespaceAndDoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := New(reg, "chat")
	h.Resolved("not(closed", false)

	n, err := testutil.GatherAndCount(reg, "chat_types_resolved_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.resolved.WithLabelValues("invalid", "false")))

	assert.Panics(t, func() { New(reg, "chat") })
}

func TestDecodeEventsReuseResolvedLabel(t *testing.T) {
	h := New(prometheus.NewRegistry(), "")

	// never resolved: labelled as given
	h.CompositeTruncated(utf8Long, 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.truncated.WithLabelValues(utf8Long)))

	h.Resolved(utf8Long, true)
	h.CompositeTruncated(utf8Long, 1)
	h.CompositeOverrun(utf8Long, 3, 2)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.truncated.WithLabelValues("CompositeType(UTF8Type,LongType)")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.overrun.WithLabelValues("CompositeType(UTF8Type,LongType)")))
}
