// Package tests
// Author: momentics <momentics@gmail.com>
//
// Integration tests driving the container and the real arena backends
// through full write, read, sort and reset generations.

package tests

import (
	"sync"
	"testing"

	"github.com/momentics/hioload-slicearray/pool"
	"github.com/momentics/hioload-slicearray/slicearray"
)

// fillTagged appends perProd producer-tagged values from each of
// producers goroutines and joins them before returning.
func fillTagged(arr *slicearray.Array[uint64], producers, perProd int) {
	var wg sync.WaitGroup
	for w := 0; w < producers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			base := uint64(w) << 32
			for i := 0; i < perProd; i++ {
				arr.Append(base | uint64(i))
			}
		}(w)
	}
	wg.Wait()
}

func TestRawArenaFullGeneration(t *testing.T) {
	const producers, perProd, blockCap = 4, 100, 16

	arena, err := pool.NewRawArena[uint64](pool.DefaultArenaConfig())
	if err != nil {
		t.Fatalf("NewRawArena: %v", err)
	}
	defer arena.Release()

	arr := slicearray.New[uint64](blockCap, func(a, b uint64) bool { return a < b })
	arr.Bind(arena)
	fillTagged(arr, producers, perProd)

	if got, want := arr.Len(), producers*perProd; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}

	seen := make(map[uint64]int, producers*perProd)
	for it := arr.Begin(); it != arr.End(); it = it.Next() {
		seen[it.Value()]++
	}
	for w := 0; w < producers; w++ {
		for i := 0; i < perProd; i++ {
			v := uint64(w)<<32 | uint64(i)
			if seen[v] != 1 {
				t.Fatalf("value %#x appeared %d times, want once", v, seen[v])
			}
		}
	}

	arr.Sort()
	var prev uint64
	for it := arr.Begin(); it != arr.End(); it = it.Next() {
		v := it.Value()
		if v < prev {
			t.Fatalf("order violated: %#x after %#x", v, prev)
		}
		prev = v
	}

	// Teardown order: container first, then the arena.
	arr.Reset()
	arena.Reclaim()
	if !arr.Empty() {
		t.Fatal("container not empty after Reset")
	}
	if inUse := arena.Stats().InUse; inUse != 0 {
		t.Errorf("arena InUse = %d after Reclaim, want 0", inUse)
	}
}

func TestHeapArenaWithPointeredElements(t *testing.T) {
	type event struct {
		Seq  uint64
		Name string
	}
	const producers, perProd = 4, 100

	arena := pool.NewHeapArena[event](256)
	arr := slicearray.New[event](32, func(a, b event) bool { return a.Seq < b.Seq })
	arr.Bind(arena)

	var wg sync.WaitGroup
	for w := 0; w < producers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perProd; i++ {
				arr.Append(event{Seq: uint64(w)<<32 | uint64(i), Name: "event"})
			}
		}(w)
	}
	wg.Wait()

	arr.Sort()
	var prev uint64
	count := 0
	for it := arr.Begin(); it != arr.End(); it = it.Next() {
		e := it.Value()
		if e.Seq < prev {
			t.Fatalf("order violated: %#x after %#x", e.Seq, prev)
		}
		if e.Name != "event" {
			t.Fatalf("payload corrupted at seq %#x: %q", e.Seq, e.Name)
		}
		prev = e.Seq
		count++
	}
	if count != producers*perProd {
		t.Fatalf("walked %d elements, want %d", count, producers*perProd)
	}

	arr.Reset()
	arena.Reclaim()
}

func TestGenerationsReuseSlabs(t *testing.T) {
	const generations = 6

	arena, err := pool.NewRawArena[uint64](pool.ArenaConfig{SlabSize: 1 << 16, NUMANode: -1})
	if err != nil {
		t.Fatalf("NewRawArena: %v", err)
	}
	defer arena.Release()

	arr := slicearray.New[uint64](64, nil)
	arr.Bind(arena)

	for gen := 0; gen < generations; gen++ {
		fillTagged(arr, 2, 2000)
		if got, want := arr.Len(), 4000; got != want {
			t.Fatalf("gen %d: Len() = %d, want %d", gen, got, want)
		}
		arr.Reset()
		arena.Reclaim()
	}

	st := arena.Stats()
	if st.TotalReuse == 0 {
		t.Errorf("no slab reuse across %d generations: %+v", generations, st)
	}
	if st.InUse != 0 {
		t.Errorf("InUse = %d after final Reclaim", st.InUse)
	}
}
