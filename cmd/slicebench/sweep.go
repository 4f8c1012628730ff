// File: cmd/slicebench/sweep.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSweepCmd())
}

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Sweep append throughput across producer counts",
		Long: `Sweep runs the append workload at 1, 2, 4, ... producers up to
--producers, collecting one result per point. Useful for spotting the
contention knee of a given host.

Example:
  slicebench sweep --producers 32 --out sweep.json
  slicebench sweep --producers 8 --runs 3 --pin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadWorkload(cmd.Flags())
			if err != nil {
				return err
			}
			var results []result
			for _, n := range sweepPoints(p.Producers) {
				point := p
				point.Producers = n
				printInfo("sweep: %d producers\n", n)
				for i := 0; i < p.Runs; i++ {
					r, err := runAppend(point)
					if err != nil {
						return err
					}
					results = append(results, r)
				}
			}
			return emitResults(results)
		},
	}
}

// sweepPoints doubles from one producer up to max, always ending on max
// itself.
func sweepPoints(max int) []int {
	var pts []int
	for n := 1; n < max; n *= 2 {
		pts = append(pts, n)
	}
	return append(pts, max)
}
