package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/quickfit/internal/command"
)

func newAllocateCmd(opts *globalOptions) *cobra.Command {
	return newBatchCmd(opts, command.VerbAllocate, &cobra.Command{
		Use:     "allocate <size>...",
		Aliases: []string{"alloc"},
		Short:   "Allocate processes on a fresh allocator",
		Long: `The allocate command allocates each given process size, in order, on a
fresh allocator and prints every outcome followed by the category table.

Example:
  quickfit allocate 120
  quickfit allocate 50 50 50 50 50 50`,
	})
}

func newDeallocateCmd(opts *globalOptions) *cobra.Command {
	return newBatchCmd(opts, command.VerbDeallocate, &cobra.Command{
		Use:     "deallocate <size>...",
		Aliases: []string{"free"},
		Short:   "Return blocks to a fresh allocator",
		Long: `The deallocate command returns one block for each given block size, in
order, to a fresh allocator and prints every outcome followed by the
category table. Sizes must match a category exactly.

Example:
  quickfit deallocate 200
  quickfit deallocate 75`,
	})
}

// newBatchCmd fills in Args and RunE so that each argument becomes one
// command with the given verb.
func newBatchCmd(opts *globalOptions, verb command.Verb, cmd *cobra.Command) *cobra.Command {
	cmd.Args = cobra.MinimumNArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmds := make([]command.Command, len(args))
		for i, arg := range args {
			size, err := command.ParseSize(arg)
			if err != nil {
				return fmt.Errorf("argument %d: %w", i+1, err)
			}
			cmds[i] = command.Command{Verb: verb, Size: size}
		}

		s, err := opts.newSession(cmd)
		if err != nil {
			return err
		}
		for _, c := range cmds {
			if _, err := s.exec(c); err != nil {
				return err
			}
		}
		return s.out.Status(s.alloc.Status())
	}
	return cmd
}
