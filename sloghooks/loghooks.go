// Package sloghooks logs cassmarshal hook events to a *slog.Logger.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/cassmarshal"
	"github.com/unkn0wn-root/cassmarshal/descriptor"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	ResolvedEvery  uint64
	TruncatedEvery uint64
	// Optional descriptor formatter. Defaults to the short canonical form
	// ("CompositeType(UTF8Type,LongType)"), falling back to the raw string.
	Format func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	resolvedCtr  atomic.Uint64
	truncatedCtr atomic.Uint64
}

var _ cassmarshal.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) format(raw string) string {
	if h.opts.Format != nil {
		return h.opts.Format(raw)
	}
	d, err := descriptor.Parse(raw)
	if err != nil {
		return raw
	}
	return d.String()
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Resolved(desc string, composite bool) {
	if h.l == nil || !sample(h.opts.ResolvedEvery, &h.resolvedCtr) {
		return
	}
	h.l.Debug("cassmarshal.resolved",
		"type", h.format(desc),
		"composite", composite)
}

func (h *Hooks) UnknownType(desc, name string) {
	if h.l == nil {
		return
	}
	h.l.Error("cassmarshal.unknown_type",
		"descriptor", desc,
		"name", name)
}

func (h *Hooks) CompositeTruncated(desc string, decoded int) {
	if h.l == nil || !sample(h.opts.TruncatedEvery, &h.truncatedCtr) {
		return
	}
	h.l.Info("cassmarshal.composite_truncated",
		"type", h.format(desc),
		"decoded", decoded)
}

func (h *Hooks) CompositeOverrun(desc string, components, declared int) {
	if h.l == nil {
		return
	}
	h.l.Warn("cassmarshal.composite_overrun",
		"type", h.format(desc),
		"components", components,
		"declared", declared)
}
