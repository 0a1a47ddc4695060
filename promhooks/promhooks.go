// Package promhooks counts cassmarshal hook events in Prometheus.
package promhooks

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/unkn0wn-root/cassmarshal"
	"github.com/unkn0wn-root/cassmarshal/descriptor"
)

// Hooks keeps one counter family per event. Descriptor labels use the short
// canonical form so cardinality follows the number of distinct types, not
// the spelling of their class names. The form is computed once, in
// Resolved; decode events only look it up.
type Hooks struct {
	resolved  *prometheus.CounterVec
	unknown   *prometheus.CounterVec
	truncated *prometheus.CounterVec
	overrun   *prometheus.CounterVec

	labels sync.Map // raw descriptor -> short form
}

var _ cassmarshal.Hooks = (*Hooks)(nil)

// New registers the counters on reg; nil means prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer, namespace string) *Hooks {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "cassmarshal"
	}
	f := promauto.With(reg)
	return &Hooks{
		resolved: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "types_resolved_total",
				Help:      "Type descriptors resolved into a marshal",
			},
			[]string{"type", "composite"},
		),
		unknown: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "unknown_types_total",
				Help:      "Descriptors naming an unregistered leaf type",
			},
			[]string{"name"},
		),
		truncated: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "composite_truncated_total",
				Help:      "Composite keys that ended mid-component",
			},
			[]string{"type"},
		),
		overrun: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "composite_overrun_total",
				Help:      "Composite keys carrying more components than declared",
			},
			[]string{"type"},
		),
	}
}

func (h *Hooks) Resolved(desc string, composite bool) {
	l := short(desc)
	h.labels.Store(desc, l)
	h.resolved.WithLabelValues(l, strconv.FormatBool(composite)).Inc()
}

func (h *Hooks) UnknownType(_, name string) {
	h.unknown.WithLabelValues(name).Inc()
}

func (h *Hooks) CompositeTruncated(desc string, _ int) {
	h.truncated.WithLabelValues(h.label(desc)).Inc()
}

func (h *Hooks) CompositeOverrun(desc string, _, _ int) {
	h.overrun.WithLabelValues(h.label(desc)).Inc()
}

// label falls back to the raw string for descriptors Resolved never saw.
func (h *Hooks) label(raw string) string {
	if l, ok := h.labels.Load(raw); ok {
		return l.(string)
	}
	return raw
}

func short(raw string) string {
	d, err := descriptor.Parse(raw)
	if err != nil {
		return "invalid"
	}
	return d.String()
}
