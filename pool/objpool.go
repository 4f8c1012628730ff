// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package pool

import "sync"

// ObjectPool hands out reusable objects of a single type.
type ObjectPool[T any] interface {
	Get() T
	Put(T)
}

// SyncPool adapts sync.Pool to a typed ObjectPool. The slice containers
// keep one per instance to recycle block headers across Reset cycles.
// Callers clear an object before Put: a parked header must not pin
// element spans the arena is about to reclaim.
type SyncPool[T any] struct {
	inner sync.Pool
}

var _ ObjectPool[int] = (*SyncPool[int])(nil)

// NewSyncPool builds a pool producing fresh objects from newFn.
func NewSyncPool[T any](newFn func() T) *SyncPool[T] {
	p := &SyncPool[T]{}
	p.inner.New = func() any { return newFn() }
	return p
}

// Get pops a recycled object or makes a fresh one.
func (p *SyncPool[T]) Get() T {
	return p.inner.Get().(T)
}

// Put parks obj for reuse.
func (p *SyncPool[T]) Put(obj T) {
	p.inner.Put(obj)
}
