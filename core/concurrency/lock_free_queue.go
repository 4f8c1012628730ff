// File: core/concurrency/lock_free_queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded MPMC queue after Dmitry Vyukov's sequence-numbered design.
// Used by the pool layer as the cross-arena slab recycle cache, where
// several arenas may retire and claim slabs concurrently.

package concurrency

import "sync/atomic"

const cacheLinePad = 64

// LockFreeQueue is a bounded multi-producer/multi-consumer queue.
// Capacity is rounded up to a power of two at construction.
type LockFreeQueue[T any] struct {
	head atomic.Uint64
	_    [cacheLinePad]byte
	tail atomic.Uint64
	_    [cacheLinePad]byte
	mask uint64
	ring []slot[T]
}

type slot[T any] struct {
	sequence atomic.Uint64
	value    T
}

// NewLockFreeQueue creates a queue holding up to capacity items
// (rounded up to a power of two, minimum 2).
func NewLockFreeQueue[T any](capacity int) *LockFreeQueue[T] {
	size := 2
	for size < capacity {
		size <<= 1
	}
	q := &LockFreeQueue[T]{
		mask: uint64(size - 1),
		ring: make([]slot[T], size),
	}
	for i := range q.ring {
		q.ring[i].sequence.Store(uint64(i))
	}
	return q
}

// Enqueue adds v; returns false if the queue is full.
func (q *LockFreeQueue[T]) Enqueue(v T) bool {
	for {
		tail := q.tail.Load()
		s := &q.ring[tail&q.mask]
		diff := int64(s.sequence.Load()) - int64(tail)
		switch {
		case diff == 0:
			if q.tail.CompareAndSwap(tail, tail+1) {
				s.value = v
				s.sequence.Store(tail + 1)
				return true
			}
		case diff < 0:
			return false // full
		default:
			// tail moved under us, retry
		}
	}
}

// Dequeue removes the oldest item; ok is false if the queue is empty.
func (q *LockFreeQueue[T]) Dequeue() (item T, ok bool) {
	for {
		head := q.head.Load()
		s := &q.ring[head&q.mask]
		diff := int64(s.sequence.Load()) - int64(head+1)
		switch {
		case diff == 0:
			if q.head.CompareAndSwap(head, head+1) {
				item = s.value
				var zero T
				s.value = zero // release the reference for the GC
				s.sequence.Store(head + q.mask + 1)
				return item, true
			}
		case diff < 0:
			var zero T
			return zero, false // empty
		default:
			// head moved under us, retry
		}
	}
}

// Len returns the number of items currently queued. The value is
// a snapshot and may be stale under concurrent use.
func (q *LockFreeQueue[T]) Len() int {
	return int(q.tail.Load() - q.head.Load())
}

// Cap returns the rounded capacity.
func (q *LockFreeQueue[T]) Cap() int {
	return len(q.ring)
}
