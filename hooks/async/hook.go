// Package asynchook moves hook delivery off the encode/decode path.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    TruncatedEvery: 10, // sample: ~every 10th truncated key
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	m, err := cassmarshal.New(comparator, cassmarshal.Options{Hooks: hooks})
//
// Events are dropped, not queued, once the buffer is full.
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/cassmarshal"
)

type Hooks struct {
	inner   cassmarshal.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

var _ cassmarshal.Hooks = (*Hooks)(nil)

func New(inner cassmarshal.Hooks, workers, qlen int) *Hooks {
	if inner == nil {
		inner = cassmarshal.NopHooks{}
	}
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Events fired after
// Close are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

// Dropped reports how many events were discarded.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default:
		h.dropped.Add(1)
	}
}

func (h *Hooks) Resolved(d string, c bool) { h.try(func() { h.inner.Resolved(d, c) }) }
func (h *Hooks) UnknownType(d, n string)   { h.try(func() { h.inner.UnknownType(d, n) }) }
func (h *Hooks) CompositeTruncated(d string, n int) {
	h.try(func() { h.inner.CompositeTruncated(d, n) })
}
func (h *Hooks) CompositeOverrun(d string, n, decl int) {
	h.try(func() { h.inner.CompositeOverrun(d, n, decl) })
}
