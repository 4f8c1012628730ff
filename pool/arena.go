// File: pool/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bump-pointer slab arena. Spans are carved off large mapped slabs with
// a single atomic add; installing the next slab is the only serialized
// step. Nothing is freed span by span: Reclaim retires whole slabs into
// a process-wide recycle cache so steady-state frame loops stop talking
// to the OS entirely.

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-slicearray/api"
	"github.com/momentics/hioload-slicearray/core/concurrency"
)

const (
	// DefaultSlabSize is the per-slab mapping size used when a config
	// leaves it zero.
	DefaultSlabSize = 1 << 20

	// blockAlign keeps neighbouring spans on separate cache lines.
	blockAlign = 64

	// recycleDepth bounds each size class of the recycle cache. Slabs
	// retired past this depth are unmapped instead of parked.
	recycleDepth = 64
)

// ArenaConfig tunes a SlabArena.
type ArenaConfig struct {
	// SlabSize is the byte size of each mapped slab. Spans larger than
	// this get a dedicated mapping of their own.
	SlabSize int
	// NUMANode is a placement preference, -1 for any node. Placement is
	// first-touch; the value is surfaced in Stats for operators.
	NUMANode int
}

// DefaultArenaConfig returns the tuning used by the examples and
// benchmarks.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		SlabSize: DefaultSlabSize,
		NUMANode: -1,
	}
}

// slab is one mapped region consumed front to back by a bump cursor.
// used may overshoot the capacity: losers of the final bump detect the
// overshoot and turn the slab over.
type slab struct {
	region Region
	used   atomic.Int64
}

func (s *slab) cap() int64 { return int64(len(s.region.Data)) }

// SlabArena hands out cache-line-aligned byte spans.
//
// AllocBlock is safe for any number of concurrent callers. Reclaim and
// Release demand exclusivity: the caller must guarantee every producer
// has finished (joined) and no span handed out earlier is referenced
// afterwards. These are the same phase rules the containers built on
// top of the arena follow.
type SlabArena struct {
	cfg    ArenaConfig
	source RegionSource

	active atomic.Pointer[slab]

	mu     sync.Mutex
	filled *queue.Queue // retired *slab entries, oldest first

	released atomic.Bool

	totalAlloc atomic.Int64
	totalReuse atomic.Int64
	inUse      atomic.Int64
	mappedB    atomic.Int64
	slabCount  atomic.Int64
}

// NewSlabArena maps nothing up front; the first AllocBlock pays for the
// first slab.
func NewSlabArena(cfg ArenaConfig) *SlabArena {
	if cfg.SlabSize <= 0 {
		cfg.SlabSize = DefaultSlabSize
	}
	cfg.SlabSize = alignUp(cfg.SlabSize, blockAlign)
	a := &SlabArena{
		cfg:    cfg,
		source: newRegionSource(),
		filled: queue.New(),
	}
	// Zero-capacity sentinel: the first AllocBlock overshoots it and
	// falls into the slow path, which maps the real slab.
	a.active.Store(&slab{})
	return a
}

// AllocBlock returns a zero-filled span of exactly size bytes, aligned
// to a cache line inside its slab. The span stays valid until Reclaim
// or Release. A non-positive size returns nil.
func (a *SlabArena) AllocBlock(size int) []byte {
	if a.released.Load() {
		panic("pool: SlabArena used after Release")
	}
	if size <= 0 {
		return nil
	}
	need := alignUp(size, blockAlign)
	for {
		s := a.active.Load()
		end := s.used.Add(int64(need))
		if end <= s.cap() {
			off := end - int64(need)
			a.totalAlloc.Add(1)
			a.inUse.Add(int64(need))
			return s.region.Data[off : off+int64(size) : off+int64(size)]
		}
		if buf := a.grow(s, need, size); buf != nil {
			return buf
		}
	}
}

// grow runs the serialized side of AllocBlock. It either serves an
// oversize request from a dedicated slab, installs a fresh active slab
// in place of prev, or detects that another caller already did and
// reports nil so the bump loop retries.
func (a *SlabArena) grow(prev *slab, need, size int) []byte {
	a.mu.Lock()
	defer a.mu.Unlock()

	if need > a.cfg.SlabSize {
		// Dedicated slab, ledgered as already full so the regular
		// active slab keeps serving small blocks.
		s := a.obtainSlab(need)
		s.used.Store(s.cap())
		a.filled.Add(s)
		a.totalAlloc.Add(1)
		a.inUse.Add(int64(need))
		return s.region.Data[0:size:size]
	}

	if a.active.Load() != prev {
		return nil // lost the race; the winner installed a fresh slab
	}
	next := a.obtainSlab(a.cfg.SlabSize)
	a.filled.Add(prev)
	a.active.Store(next)
	return nil
}

// obtainSlab pulls a parked region of the right class or maps a new
// one. Called with mu held.
func (a *SlabArena) obtainSlab(size int) *slab {
	want := regionSize(size)
	if r, ok := recycleRing(want).Dequeue(); ok {
		a.totalReuse.Add(1)
		a.slabCount.Add(1)
		a.mappedB.Add(int64(len(r.Data)))
		return &slab{region: r}
	}
	r, err := a.source.Map(size, a.cfg.NUMANode)
	if err != nil || len(r.Data) < size {
		r = heapRegion(want)
	}
	a.slabCount.Add(1)
	a.mappedB.Add(int64(len(r.Data)))
	return &slab{region: r}
}

// Reclaim retires every slab, zeroing the written prefix and parking
// the regions for the next generation. The arena is immediately usable
// again and will serve from the cache before mapping anything new.
//
// Exclusive phase only: no AllocBlock may be in flight, and no span
// handed out before the call may be read or written after it.
func (a *SlabArena) Reclaim() {
	if a.released.Load() {
		panic("pool: SlabArena used after Release")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for a.filled.Length() > 0 {
		a.retireLocked(a.filled.Remove().(*slab))
	}
	if s := a.active.Load(); s.cap() > 0 {
		a.retireLocked(s)
	}
	a.active.Store(&slab{})
	a.inUse.Store(0)
}

// retireLocked zeroes a slab's written prefix and parks its region, or
// unmaps it when the size class is full. Cached regions are therefore
// always fully zero, which is what lets AllocBlock promise zero-filled
// spans without touching the fast path.
func (a *SlabArena) retireLocked(s *slab) {
	n := s.used.Load()
	if c := s.cap(); n > c {
		n = c // bump overshoot never wrote past capacity
	}
	clear(s.region.Data[:n])
	a.slabCount.Add(-1)
	a.mappedB.Add(-int64(len(s.region.Data)))
	if !recycleRing(len(s.region.Data)).Enqueue(s.region) {
		a.source.Unmap(s.region)
	}
}

// Release unmaps every slab and detaches the arena for good. Unlike
// Reclaim nothing is parked: memory goes straight back to the OS or the
// heap. Any later call on the arena panics. A second Release reports
// api.ErrArenaReleased.
func (a *SlabArena) Release() error {
	if !a.released.CompareAndSwap(false, true) {
		return api.ErrArenaReleased
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for a.filled.Length() > 0 {
		s := a.filled.Remove().(*slab)
		a.slabCount.Add(-1)
		a.mappedB.Add(-int64(len(s.region.Data)))
		a.source.Unmap(s.region)
	}
	if s := a.active.Load(); s.cap() > 0 {
		a.slabCount.Add(-1)
		a.mappedB.Add(-int64(len(s.region.Data)))
		a.source.Unmap(s.region)
	}
	a.active.Store(&slab{})
	a.inUse.Store(0)
	return nil
}

// Stats reports a point-in-time view. Safe concurrently with appends;
// the relaxed counters may lag in-flight allocations.
func (a *SlabArena) Stats() api.ArenaStats {
	return api.ArenaStats{
		TotalAlloc:  a.totalAlloc.Load(),
		TotalReuse:  a.totalReuse.Load(),
		InUse:       a.inUse.Load(),
		Slabs:       a.slabCount.Load(),
		MappedBytes: a.mappedB.Load(),
		NUMANode:    a.cfg.NUMANode,
	}
}

// alignUp rounds n up to the next multiple of align, a power of two.
func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// Process-wide recycle cache. Regions retired by Reclaim are parked
// here keyed by their exact byte length; any arena asking for the same
// class reuses them, mapping nothing. Each class is a bounded MPMC
// ring, so a burst of arenas cannot pin unbounded memory.
var (
	recycleMu sync.RWMutex
	recycle   = make(map[int]*concurrency.LockFreeQueue[Region])
)

func recycleRing(size int) *concurrency.LockFreeQueue[Region] {
	recycleMu.RLock()
	q := recycle[size]
	recycleMu.RUnlock()
	if q != nil {
		return q
	}
	recycleMu.Lock()
	defer recycleMu.Unlock()
	if q = recycle[size]; q == nil {
		q = concurrency.NewLockFreeQueue[Region](recycleDepth)
		recycle[size] = q
	}
	return q
}

// FlushRecycleCache hands every parked slab back to the OS. Useful
// between benchmark configurations and in tests that count mappings.
func FlushRecycleCache() {
	recycleMu.RLock()
	defer recycleMu.RUnlock()
	src := newRegionSource()
	for _, q := range recycle {
		for {
			r, ok := q.Dequeue()
			if !ok {
				break
			}
			src.Unmap(r)
		}
	}
}
