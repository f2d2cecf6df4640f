package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRunCmd(opts *globalOptions) *cobra.Command {
	var (
		keepGoing bool
		each      bool
	)

	cmd := &cobra.Command{
		Use:   "run <script|->",
		Short: "Replay a script of operations",
		Long: `The run command replays a script of operations, one per line, against a
single allocator and prints the final category table. Use "-" to read the
script from standard input. Lines starting with # are ignored.

Script example:
  allocate 120
  allocate 600   # fails: larger than every category
  deallocate 75  # fails: not a category
  reset

Example:
  quickfit run ops.txt
  quickfit run --each ops.txt
  cat ops.txt | quickfit run -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			s.showStatus = each
			s.help = cmd.OutOrStdout()

			if err := s.replay(in, keepGoing); err != nil {
				return err
			}
			if each {
				return nil
			}
			return s.out.Status(s.alloc.Status())
		},
	}
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Report malformed lines and continue")
	cmd.Flags().BoolVar(&each, "each", false, "Print the table after every state change")
	return cmd
}
