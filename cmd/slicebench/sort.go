// File: cmd/slicebench/sort.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSortCmd())
}

func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Measure in-place sort over a nearly ordered fill",
		Long: `Sort fills one container with values displaced up to --jitter
positions from sorted order, then measures the in-place insertion sort.
The fill is deterministic, so runs on different hosts compare directly.

Example:
  slicebench sort --appends 200000 --jitter 64
  slicebench sort --backend heap --runs 5 --out sort.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadWorkload(cmd.Flags())
			if err != nil {
				return err
			}
			results := make([]result, 0, p.Runs)
			for i := 0; i < p.Runs; i++ {
				r, err := runSort(p)
				if err != nil {
					return err
				}
				results = append(results, r)
			}
			return emitResults(results)
		},
	}
}
