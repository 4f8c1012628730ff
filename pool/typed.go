// File: pool/typed.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Typed arenas over the slab machinery. HeapArena keeps every slab as a
// plain []T so the GC sees all pointers; RawArena views SlabArena bytes
// through unsafe.Slice and is restricted to pointer-free element types.

package pool

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-slicearray/api"
	"github.com/momentics/hioload-slicearray/core/concurrency"
)

var (
	_ api.Arena[int]    = (*HeapArena[int])(nil)
	_ api.Arena[uint64] = (*RawArena[uint64])(nil)
)

// defaultSlabElems is the per-slab element count when a constructor is
// given a non-positive one.
const defaultSlabElems = 8192

// heapSlab is one []T consumed front to back by a bump cursor.
type heapSlab[T any] struct {
	items []T
	used  atomic.Int64
}

func (s *heapSlab[T]) cap() int64 { return int64(len(s.items)) }

// HeapArena is the GC-safe api.Arena. It works for any element type,
// including ones holding pointers, strings or slices: slabs are regular
// Go slices, so everything a span refers to stays visibly reachable.
//
// Retired slabs are parked in an arena-local ring rather than the
// process-wide byte cache, since []T slabs only fit arenas of the same
// element type.
type HeapArena[T any] struct {
	slabLen  int
	elemSize int64

	active atomic.Pointer[heapSlab[T]]

	mu     sync.Mutex
	filled *queue.Queue // retired *heapSlab[T], oldest first

	park *concurrency.LockFreeQueue[[]T]

	totalAlloc atomic.Int64
	totalReuse atomic.Int64
	inUse      atomic.Int64
	mappedB    atomic.Int64
	slabCount  atomic.Int64
}

// NewHeapArena allocates nothing up front. slabElems is the element
// count of each slab; spans longer than that get a dedicated slab.
func NewHeapArena[T any](slabElems int) *HeapArena[T] {
	if slabElems <= 0 {
		slabElems = defaultSlabElems
	}
	var probe T
	a := &HeapArena[T]{
		slabLen:  slabElems,
		elemSize: int64(unsafe.Sizeof(probe)),
		filled:   queue.New(),
		park:     concurrency.NewLockFreeQueue[[]T](recycleDepth),
	}
	a.active.Store(&heapSlab[T]{})
	return a
}

// AllocSpan returns a zero-filled span of exactly n elements. Safe for
// any number of concurrent callers. The span stays valid until Reclaim.
func (a *HeapArena[T]) AllocSpan(n int) []T {
	if n <= 0 {
		return nil
	}
	for {
		s := a.active.Load()
		end := s.used.Add(int64(n))
		if end <= s.cap() {
			off := end - int64(n)
			a.totalAlloc.Add(1)
			a.inUse.Add(int64(n) * a.elemSize)
			return s.items[off:end:end]
		}
		if span := a.grow(s, n); span != nil {
			return span
		}
	}
}

func (a *HeapArena[T]) grow(prev *heapSlab[T], n int) []T {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n > a.slabLen {
		s := &heapSlab[T]{items: make([]T, n)}
		s.used.Store(int64(n))
		a.filled.Add(s)
		a.mappedB.Add(int64(n) * a.elemSize)
		a.slabCount.Add(1)
		a.totalAlloc.Add(1)
		a.inUse.Add(int64(n) * a.elemSize)
		return s.items[0:n:n]
	}

	if a.active.Load() != prev {
		return nil
	}
	next := a.obtainSlab()
	a.filled.Add(prev)
	a.active.Store(next)
	return nil
}

// obtainSlab reuses a parked slab or makes a fresh one. Called with mu
// held.
func (a *HeapArena[T]) obtainSlab() *heapSlab[T] {
	a.slabCount.Add(1)
	a.mappedB.Add(int64(a.slabLen) * a.elemSize)
	if items, ok := a.park.Dequeue(); ok {
		a.totalReuse.Add(1)
		return &heapSlab[T]{items: items}
	}
	return &heapSlab[T]{items: make([]T, a.slabLen)}
}

// Reclaim retires every slab. Regular slabs are zeroed and parked for
// reuse; oversize one-offs and overflow go back to the GC. Exclusive
// phase only.
func (a *HeapArena[T]) Reclaim() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for a.filled.Length() > 0 {
		a.retireLocked(a.filled.Remove().(*heapSlab[T]))
	}
	if s := a.active.Load(); s.cap() > 0 {
		a.retireLocked(s)
	}
	a.active.Store(&heapSlab[T]{})
	a.inUse.Store(0)
}

func (a *HeapArena[T]) retireLocked(s *heapSlab[T]) {
	a.slabCount.Add(-1)
	a.mappedB.Add(-s.cap() * a.elemSize)
	n := s.used.Load()
	if c := s.cap(); n > c {
		n = c // bump overshoot never wrote past capacity
	}
	clear(s.items[:n])
	if len(s.items) != a.slabLen {
		return // oversize one-off, let the GC have it
	}
	a.park.Enqueue(s.items)
}

// Stats reports a point-in-time view in bytes.
func (a *HeapArena[T]) Stats() api.ArenaStats {
	return api.ArenaStats{
		TotalAlloc:  a.totalAlloc.Load(),
		TotalReuse:  a.totalReuse.Load(),
		InUse:       a.inUse.Load(),
		Slabs:       a.slabCount.Load(),
		MappedBytes: a.mappedB.Load(),
		NUMANode:    -1,
	}
}

// RawArena is the zero-copy api.Arena: spans are unsafe.Slice views
// over SlabArena bytes, so elements live outside the GC heap (hugepage
// mappings on Linux). The element type must be pointer-free; anything
// the GC would need to trace is rejected at construction with
// api.ErrPointerElements.
type RawArena[T any] struct {
	slabs    *SlabArena
	elemSize int
}

// NewRawArena verifies T carries no pointers and binds a fresh
// SlabArena.
func NewRawArena[T any](cfg ArenaConfig) (*RawArena[T], error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if typeHasPointers(t) {
		return nil, fmt.Errorf("pool: %s: %w", t, api.ErrPointerElements)
	}
	return &RawArena[T]{
		slabs:    NewSlabArena(cfg),
		elemSize: int(t.Size()),
	}, nil
}

// AllocSpan returns a zero-filled span of exactly n elements. Safe for
// any number of concurrent callers. The span stays valid until Reclaim
// or Release.
func (a *RawArena[T]) AllocSpan(n int) []T {
	if n <= 0 {
		return nil
	}
	if a.elemSize == 0 {
		return make([]T, n) // zero-size types carry no storage
	}
	buf := a.slabs.AllocBlock(n * a.elemSize)
	// Slab bases are page- or size-class-aligned and offsets are
	// 64-byte multiples, so any Go element alignment holds here.
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[0])), n)
}

// Reclaim retires the backing slabs into the process-wide recycle
// cache. Exclusive phase only.
func (a *RawArena[T]) Reclaim() { a.slabs.Reclaim() }

// Release unmaps the backing slabs and detaches the arena for good.
func (a *RawArena[T]) Release() error { return a.slabs.Release() }

// Stats reports the backing SlabArena view.
func (a *RawArena[T]) Stats() api.ArenaStats { return a.slabs.Stats() }

// typeHasPointers walks t the way the runtime's pointer bitmaps see it.
func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, maps, chans, slices, strings, funcs, interfaces.
		return true
	}
}
