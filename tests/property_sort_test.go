// Copyright 2025 momentics@gmail.com
// License: Apache 2.0

// property_sort_test.go — Randomized sort equivalence against the library sort.
package tests

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/momentics/hioload-slicearray/pool"
	"github.com/momentics/hioload-slicearray/slicearray"
)

// TestSort_PropertyMatchesReference sorts randomized fills, duplicates
// included, and compares the walked sequence element by element against
// the slice sorted by the standard library.
func TestSort_PropertyMatchesReference(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	arena := pool.NewHeapArena[int](1 << 12)

	for round := 0; round < 10; round++ {
		n := rnd.Intn(3000)
		blockCap := 1 + rnd.Intn(64)

		arr := slicearray.New[int](blockCap, func(a, b int) bool { return a < b })
		arr.Bind(arena)

		want := make([]int, n)
		for i := range want {
			v := rnd.Intn(500)
			want[i] = v
			arr.Append(v)
		}
		sort.Ints(want)

		arr.Sort()

		got := make([]int, 0, n)
		for it := arr.Begin(); it != arr.End(); it = it.Next() {
			got = append(got, it.Value())
		}
		if len(got) != len(want) {
			t.Fatalf("round %d (n=%d, blockCap=%d): walked %d elements",
				round, n, blockCap, len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("round %d (n=%d, blockCap=%d): index %d: got %d, want %d",
					round, n, blockCap, i, got[i], want[i])
			}
		}

		arr.Reset()
		arena.Reclaim()
	}
}

// TestSort_NearSortedStream mirrors the intended workload: values
// arrive displaced at most a few positions from order, and the sort
// pass restores the exact order.
func TestSort_NearSortedStream(t *testing.T) {
	const n, jitter = 20000, 8

	arena := pool.NewHeapArena[int64](1 << 12)
	arr := slicearray.New[int64](256, func(a, b int64) bool { return a < b })
	arr.Bind(arena)

	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < n; i++ {
		arr.Append(int64(i) + rnd.Int63n(2*jitter+1) - jitter)
	}

	arr.Sort()

	prev := int64(-1 << 62)
	count := 0
	for it := arr.Begin(); it != arr.End(); it = it.Next() {
		v := it.Value()
		if v < prev {
			t.Fatalf("order violated at element %d: %d after %d", count, v, prev)
		}
		prev = v
		count++
	}
	if count != n {
		t.Fatalf("walked %d elements, want %d", count, n)
	}

	arr.Reset()
	arena.Reclaim()
}
