package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/quickfit/internal/command"
	"github.com/joshuapare/quickfit/internal/logger"
	"github.com/joshuapare/quickfit/internal/term"
)

const prompt = "quickfit> "

func newShellCmd(opts *globalOptions) *cobra.Command {
	var table bool

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive allocation shell",
		Long: `The shell command starts an interactive session on one allocator. Type
"allocate 120", "deallocate 200", "reset", "status" or "help". Invalid
input is reported and the session continues.

Example:
  quickfit shell
  quickfit --categories 32,64,128 --initial 2 shell --table=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			s.showStatus = table
			s.help = cmd.OutOrStdout()

			interactive := false
			if f, ok := cmd.InOrStdin().(*os.File); ok {
				interactive = term.IsTerminal(f)
			}
			return runShell(s, cmd.InOrStdin(), cmd.OutOrStdout(), interactive)
		},
	}
	cmd.Flags().BoolVar(&table, "table", true, "Print the table after every state change")
	return cmd
}

// runShell reads commands until quit or end of input. Input errors never end
// the session.
func runShell(s *session, in io.Reader, out io.Writer, interactive bool) error {
	if interactive {
		fmt.Fprintln(out, `Quick Fit memory allocation. Type "help" for commands.`)
		if err := s.out.Status(s.alloc.Status()); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			break
		}

		c, err := command.Parse(scanner.Text())
		if errors.Is(err, command.ErrEmpty) {
			continue
		}
		if err != nil {
			logger.Debug("rejected input", "error", err)
			if err := s.out.Error(err); err != nil {
				return err
			}
			continue
		}

		quit, err := s.exec(c)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}
