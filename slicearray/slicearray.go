// File: slicearray/slicearray.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core container: lock-free slot reservation over a chain of
// arena-backed blocks, with spin-serialized growth.

package slicearray

import (
	"sync/atomic"

	"github.com/momentics/hioload-slicearray/api"
	"github.com/momentics/hioload-slicearray/core/concurrency"
	"github.com/momentics/hioload-slicearray/pool"
)

// DefaultBlockCap is used when New is given a non-positive capacity.
const DefaultBlockCap = 256

var _ api.Appender[int] = (*Array[int])(nil)

// Array is a growable append-only sequence of T stored in a chain of
// fixed-capacity blocks. Block storage comes from a bound api.Arena;
// block headers are plain heap objects recycled across generations.
//
// Append is safe for any number of concurrent goroutines. Everything
// else (cursors, Sort, Reset, exact Len) belongs to the exclusive
// phase: all producers have returned and been joined by the caller.
type Array[T any] struct {
	blockCap int
	less     func(a, b T) bool

	arena api.Arena[T]

	// Shared write-phase state. cursor is the next free slot of the
	// tail block. The grower publishes tail first and cursor last; the
	// fast path reads them in the opposite order.
	cursor  atomic.Int64
	tail    atomic.Pointer[block[T]]
	nblocks atomic.Int64

	growLock concurrency.SpinLock

	// head is written under growLock and read in the exclusive phase.
	head *block[T]

	headers *pool.SyncPool[*block[T]]
}

// New builds an unbound container. blockCap is the element capacity of
// every chain block, DefaultBlockCap when non-positive. less defines
// the strict order used by Sort; nil is allowed for containers that
// never sort.
func New[T any](blockCap int, less func(a, b T) bool) *Array[T] {
	if blockCap <= 0 {
		blockCap = DefaultBlockCap
	}
	return &Array[T]{
		blockCap: blockCap,
		less:     less,
		headers:  pool.NewSyncPool(func() *block[T] { return new(block[T]) }),
	}
}

// Bind attaches the arena that supplies block storage. It must precede
// the first Append and may be repeated after a Reset, which is how a
// container migrates to a fresh arena between generations.
func (a *Array[T]) Bind(arena api.Arena[T]) {
	if a.head != nil {
		panic("slicearray: Bind on a non-empty container")
	}
	a.arena = arena
}

// Append reserves a unique slot and writes v into it. No locks are
// taken unless the tail block is full or absent. The element becomes
// observable to whoever establishes a happens-after relationship with
// this call returning: join the producers, then read.
func (a *Array[T]) Append(v T) {
	for {
		// The cursor must be read before the tail it indexes. Because
		// the grower publishes in the opposite order, a torn pair here
		// is always an old cursor against a current tail, which fails
		// the bounds check or the CAS instead of reserving a slot in a
		// block the cursor does not index.
		cur := a.cursor.Load()
		tail := a.tail.Load()
		if tail != nil && cur < int64(len(tail.items)) {
			if a.cursor.CompareAndSwap(cur, cur+1) {
				tail.items[cur] = v
				return
			}
			continue
		}
		a.grow()
	}
}

// grow serializes chain growth. Contenders spin on the lock, re-check
// the growth condition once inside (someone else may have grown the
// chain already), and leave the new tail fully linked before the
// release barrier lets anyone proceed.
func (a *Array[T]) grow() {
	a.growLock.Lock()
	tail := a.tail.Load()
	if tail == nil || a.cursor.Load() >= int64(len(tail.items)) {
		nb := a.newBlock()
		nb.prev = tail
		if tail != nil {
			tail.next = nb
		} else {
			a.head = nb
		}
		a.nblocks.Add(1)
		// Publication order the fast path depends on: the tail becomes
		// visible before the cursor opens its slots.
		a.tail.Store(nb)
		a.cursor.Store(0)
	}
	a.growLock.Unlock()
}

// newBlock carves a fresh block. Called with growLock held, so the
// arena sees one caller at a time for this container.
func (a *Array[T]) newBlock() *block[T] {
	if a.arena == nil {
		panic("slicearray: Append before Bind")
	}
	b := a.headers.Get()
	b.items = a.arena.AllocSpan(a.blockCap)
	return b
}

// Reset destroys every element, drops the chain and returns the
// container to the freshly bound state. Exclusive phase only. It must
// run to completion before the bound arena's Reclaim or Release; the
// caller owns that two-step teardown order.
func (a *Array[T]) Reset() {
	for b := a.head; b != nil; {
		next := b.next
		clear(b.items)
		b.items, b.next, b.prev = nil, nil, nil
		a.headers.Put(b)
		b = next
	}
	a.head = nil
	a.tail.Store(nil)
	a.cursor.Store(0)
	a.nblocks.Store(0)
}

// Len reports the element count. Exact once writers are quiescent; a
// call racing the write phase can be off by up to one block.
func (a *Array[T]) Len() int {
	n := a.nblocks.Load()
	if n == 0 {
		return 0
	}
	return int(n-1)*a.blockCap + int(a.cursor.Load())
}

// Empty reports whether nothing has been appended.
func (a *Array[T]) Empty() bool { return a.Len() == 0 }

// Blocks reports the current chain length in blocks.
func (a *Array[T]) Blocks() int { return int(a.nblocks.Load()) }

// BlockCap reports the per-block element capacity.
func (a *Array[T]) BlockCap() int { return a.blockCap }
