// File: core/concurrency/spinlock.go
// Package concurrency provides the synchronization primitives used by the
// slicearray data plane.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SpinLock is a test-and-test-and-set lock for short, rare critical
// sections (block creation, slab turnover). Waiters spin on a local load
// until the flag looks free and only then attempt the atomic acquire, so
// contended waiting generates no cross-core write traffic.

package concurrency

import "sync/atomic"

// SpinLock is a TTAS spin lock. The zero value is unlocked.
// It must not be copied after first use.
type SpinLock struct {
	state atomic.Uint32
}

// Lock acquires the lock, spinning with escalating backoff while it is held
// elsewhere.
func (l *SpinLock) Lock() {
	var b Backoff
	for {
		// Wait until the flag looks free before touching the bus with a CAS.
		// The load stays in the local cache line; the owner's release store
		// invalidates it and breaks the loop.
		for l.state.Load() != 0 {
			b.Wait()
		}
		if l.state.CompareAndSwap(0, 1) {
			return
		}
	}
}

// TryLock acquires the lock without waiting; reports whether it succeeded.
func (l *SpinLock) TryLock() bool {
	return l.state.CompareAndSwap(0, 1)
}

// Unlock releases the lock. The atomic store is a full barrier: every write
// made while holding the lock is visible to the next acquirer before it
// proceeds.
func (l *SpinLock) Unlock() {
	l.state.Store(0)
}
