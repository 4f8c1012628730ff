// File: cmd/slicebench/root.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagProfile string
	flagOut     string
	flagQuiet   bool
	flagJSONOut bool

	// Workload flags, overridable by a profile file
	flagProducers int
	flagAppends   int
	flagBlockCap  int
	flagBackend   string
	flagSlabSize  int
	flagPin       bool
	flagRuns      int
	flagJitter    int
)

var rootCmd = &cobra.Command{
	Use:   "slicebench",
	Short: "Load generator for the slicearray container and its arenas",
	Long: `slicebench drives the append-only slicearray container under
configurable producer counts, block capacities and arena backends, and
reports throughput together with arena statistics. Workload defaults
may come from a HuJSON profile file; flags set explicitly on the
command line win over the profile.`,
	Version: version,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagProfile, "profile", "", "HuJSON profile file with workload defaults")
	pf.StringVar(&flagOut, "out", "", "write JSON results to this file (atomic replace)")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "suppress progress output")
	pf.BoolVar(&flagJSONOut, "json", false, "print collected results as JSON on stdout")

	pf.IntVar(&flagProducers, "producers", 8, "concurrent producer goroutines")
	pf.IntVar(&flagAppends, "appends", 1000000, "appends per producer")
	pf.IntVar(&flagBlockCap, "blockcap", 1024, "elements per chain block")
	pf.StringVar(&flagBackend, "backend", "raw", "arena backend: raw or heap")
	pf.IntVar(&flagSlabSize, "slabsize", 1<<20, "slab size in bytes")
	pf.BoolVar(&flagPin, "pin", false, "pin producer threads to CPUs")
	pf.IntVar(&flagRuns, "runs", 1, "repetitions per configuration")
	pf.IntVar(&flagJitter, "jitter", 16, "input displacement for the sort bench")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints a progress message unless in quiet mode.
func printInfo(format string, args ...any) {
	if !flagQuiet {
		fmt.Printf(format, args...)
	}
}
