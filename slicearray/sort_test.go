// Copyright 2025 momentics@gmail.com
// SPDX-License-Identifier: Apache-2.0

package slicearray_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-slicearray/fake"
	"github.com/momentics/hioload-slicearray/slicearray"
)

func TestSortEmptyAndSingle(t *testing.T) {
	arr, _ := newBound(t, 4)
	arr.Sort() // no-op on empty
	arr.Append(1)
	arr.Sort()
	require.Equal(t, []int{1}, collect(arr))
}

func TestSortNearSorted(t *testing.T) {
	arr, _ := newBound(t, 8)
	for _, v := range []int{1, 2, 4, 3, 5, 6, 8, 7, 9, 10, 12, 11} {
		arr.Append(v)
	}
	arr.Sort()
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, collect(arr))
}

func TestSortReversed(t *testing.T) {
	arr, _ := newBound(t, 4)
	for i := 30; i > 0; i-- {
		arr.Append(i)
	}
	arr.Sort()
	got := collect(arr)
	for i, v := range got {
		require.Equal(t, i+1, v)
	}
}

func TestSortDuplicates(t *testing.T) {
	arr, _ := newBound(t, 4)
	for _, v := range []int{3, 1, 3, 2, 1, 3, 2} {
		arr.Append(v)
	}
	arr.Sort()
	require.Equal(t, []int{1, 1, 2, 2, 3, 3, 3}, collect(arr))
}

func TestSortRandomAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{2, 5, 16, 33, 257} {
		arr, _ := newBound(t, 8)
		want := make([]int, n)
		for i := range want {
			v := rng.Intn(100)
			want[i] = v
			arr.Append(v)
		}
		sort.Ints(want)
		arr.Sort()
		if diff := cmp.Diff(want, collect(arr)); diff != "" {
			t.Fatalf("n=%d mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestSortIdempotent(t *testing.T) {
	arr, _ := newBound(t, 4)
	for _, v := range []int{9, 1, 8, 2, 7, 3} {
		arr.Append(v)
	}
	arr.Sort()
	once := collect(arr)
	arr.Sort()
	require.Equal(t, once, collect(arr))
}

func TestSortWithoutComparatorPanics(t *testing.T) {
	arr := slicearray.New[int](4, nil)
	arr.Bind(fake.NewArena[int]())
	arr.Append(2)
	arr.Append(1)
	require.Panics(t, func() { arr.Sort() })
}
