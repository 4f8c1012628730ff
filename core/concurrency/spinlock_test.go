package concurrency

import (
	"sync"
	"testing"
)

func TestSpinLock_Exclusion(t *testing.T) {
	var l SpinLock
	var counter int // protected by l

	const goroutines = 8
	const rounds = 20000

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				l.Lock()
				counter++
				l.Unlock()
			}
		}()
	}
	wg.Wait()

	if counter != goroutines*rounds {
		t.Errorf("counter = %d, want %d (lost increments)", counter, goroutines*rounds)
	}
}

func TestSpinLock_TryLock(t *testing.T) {
	var l SpinLock
	if !l.TryLock() {
		t.Fatal("TryLock failed on free lock")
	}
	if l.TryLock() {
		t.Error("TryLock succeeded on held lock")
	}
	l.Unlock()
	if !l.TryLock() {
		t.Error("TryLock failed after Unlock")
	}
	l.Unlock()
}

func TestBackoff_Escalates(t *testing.T) {
	var b Backoff
	// The first stages must not sleep; just make sure every stage returns.
	for i := 0; i < backoffYieldLimit+4; i++ {
		b.Wait()
	}
	b.Reset()
	if b.round != 0 {
		t.Errorf("round = %d after Reset, want 0", b.round)
	}
}
