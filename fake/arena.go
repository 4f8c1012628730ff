// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementations for testing and development.
// Provides predictable, controllable behavior for the arena contracts.

package fake

import (
	"sync/atomic"

	"github.com/momentics/hioload-slicearray/api"
)

// Arena is a controllable api.Arena for tests. It counts every call,
// verifies that callers honor the one-allocation-at-a-time contract,
// and can simulate pool exhaustion after a fixed number of spans.
type Arena[T any] struct {
	// MaxSpans, when positive, makes AllocSpan panic once that many
	// spans have been handed out, imitating a fatally exhausted pool.
	MaxSpans int64

	spans    atomic.Int64
	elems    atomic.Int64
	reclaims atomic.Int64
	inside   atomic.Int32
	overlaps atomic.Int64
}

var _ api.Arena[int] = (*Arena[int])(nil)

// NewArena returns an unbounded counting arena.
func NewArena[T any]() *Arena[T] { return &Arena[T]{} }

// AllocSpan hands out a heap span and records the call. Concurrent
// entry by two callers is recorded as an overlap; containers route all
// allocation through their growth lock, so any overlap marks a broken
// caller.
func (f *Arena[T]) AllocSpan(n int) []T {
	if f.inside.Add(1) != 1 {
		f.overlaps.Add(1)
	}
	defer f.inside.Add(-1)

	if f.MaxSpans > 0 && f.spans.Load() >= f.MaxSpans {
		panic("fake: arena exhausted")
	}
	f.spans.Add(1)
	f.elems.Add(int64(n))
	return make([]T, n)
}

// Reclaim records the call.
func (f *Arena[T]) Reclaim() { f.reclaims.Add(1) }

// Stats reports the counters in span and element units.
func (f *Arena[T]) Stats() api.ArenaStats {
	return api.ArenaStats{
		TotalAlloc: f.spans.Load(),
		InUse:      f.elems.Load(),
		Slabs:      f.spans.Load(),
		NUMANode:   -1,
	}
}

// Spans reports how many spans have been handed out.
func (f *Arena[T]) Spans() int64 { return f.spans.Load() }

// Reclaims reports how many times Reclaim ran.
func (f *Arena[T]) Reclaims() int64 { return f.reclaims.Load() }

// Overlaps reports how often two callers were inside AllocSpan at
// once. Stays zero for any caller honoring the serialization contract.
func (f *Arena[T]) Overlaps() int64 { return f.overlaps.Load() }
