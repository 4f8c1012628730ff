// File: cmd/slicebench/append.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newAppendCmd())
}

func newAppendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "append",
		Short: "Measure concurrent append throughput",
		Long: `Append drives N producer goroutines through one shared container,
each appending its own tagged value range, and reports sustained
appends per second together with arena accounting.

Example:
  slicebench append --producers 16 --appends 500000
  slicebench append --backend heap --blockcap 4096 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadWorkload(cmd.Flags())
			if err != nil {
				return err
			}
			results := make([]result, 0, p.Runs)
			for i := 0; i < p.Runs; i++ {
				r, err := runAppend(p)
				if err != nil {
					return err
				}
				results = append(results, r)
			}
			return emitResults(results)
		},
	}
}
