// File: cmd/slicebench/profile_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseProfileHuJSON(t *testing.T) {
	data := []byte(`{
		// nightly soak settings
		"producers": 4,
		"appends": 250000,
		"backend": "heap",
	}`)
	p, err := parseProfile(data)
	require.NoError(t, err)
	require.Equal(t, 4, p.Producers)
	require.Equal(t, 250000, p.Appends)
	require.Equal(t, "heap", p.Backend)
	require.Zero(t, p.BlockCap)
}

func TestParseProfileRejectsGarbage(t *testing.T) {
	_, err := parseProfile([]byte("producers: 4"))
	require.Error(t, err)
}

func TestMergeProfileOverlay(t *testing.T) {
	base := Profile{
		Producers: 8,
		Appends:   1000,
		BlockCap:  64,
		Backend:   "raw",
		SlabSize:  1 << 20,
		Runs:      1,
		Jitter:    16,
	}
	merged := mergeProfile(base, Profile{Producers: 2, Backend: "heap"})
	require.Equal(t, 2, merged.Producers)
	require.Equal(t, "heap", merged.Backend)
	require.Equal(t, 1000, merged.Appends)
	require.Equal(t, 64, merged.BlockCap)
	require.Equal(t, 1<<20, merged.SlabSize)
}

func TestProfileValidate(t *testing.T) {
	good := Profile{Producers: 1, Appends: 1, BlockCap: 1, Backend: "raw", Runs: 1}
	require.NoError(t, good.validate())

	bad := good
	bad.Backend = "mmap"
	require.Error(t, bad.validate())

	bad = good
	bad.Producers = 0
	require.Error(t, bad.validate())
}

func TestSweepPoints(t *testing.T) {
	require.Equal(t, []int{1}, sweepPoints(1))
	require.Equal(t, []int{1, 2, 4, 8}, sweepPoints(8))
	require.Equal(t, []int{1, 2, 4, 6}, sweepPoints(6))
}
