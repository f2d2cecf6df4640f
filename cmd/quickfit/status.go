package main

import (
	"github.com/spf13/cobra"
)

func newStatusCmd(opts *globalOptions) *cobra.Command {
	var showStats bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the initial category table",
		Long: `The status command builds an allocator from the configuration flags and
prints its category table: block size, free blocks and whether any are free.

Example:
  quickfit status
  quickfit status --preset pow2 --initial 3
  quickfit status --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			if err := s.out.Status(s.alloc.Status()); err != nil {
				return err
			}
			if showStats {
				return s.out.Stats(s.alloc.Stats())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showStats, "stats", false, "Also print operation counters")
	return cmd
}
