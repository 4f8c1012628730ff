// File: core/concurrency/backoff.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Escalating wait strategy for retry loops: stay hot for a bounded number
// of iterations, then yield the processor, then sleep. Keeps short waits
// cheap without letting a stalled peer starve the scheduler.

package concurrency

import (
	"runtime"
	"time"
)

const (
	backoffSpinLimit  = 64  // busy iterations before yielding
	backoffYieldLimit = 128 // total iterations before sleeping
)

// Backoff tracks how long a caller has been waiting. The zero value is
// ready to use; Reset reuses it for a new wait.
type Backoff struct {
	round int
}

// Wait blocks for one escalation step.
func (b *Backoff) Wait() {
	switch {
	case b.round < backoffSpinLimit:
		// busy iteration, no scheduler involvement
	case b.round < backoffYieldLimit:
		runtime.Gosched()
	default:
		time.Sleep(time.Microsecond)
	}
	b.round++
}

// Reset restarts the escalation from the hot stage.
func (b *Backoff) Reset() {
	b.round = 0
}
