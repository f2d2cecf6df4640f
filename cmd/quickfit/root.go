package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/quickfit/alloc"
	"github.com/joshuapare/quickfit/internal/command"
	"github.com/joshuapare/quickfit/internal/logger"
	"github.com/joshuapare/quickfit/internal/render"
	"github.com/joshuapare/quickfit/internal/term"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	preset     string
	categories string
	initial    int
	logDir     string

	logCloser io.Closer
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "quickfit",
		Short: "Simulate Quick Fit memory allocation",
		Long: `quickfit simulates the Quick Fit allocation strategy: a fixed set of
block-size categories, each with a pool of free blocks. A request is served
from the smallest category that can hold it and still has a free block.

Example:
  quickfit status
  quickfit allocate 120 50 600
  quickfit --categories 64,128,256 --initial 2 shell
  quickfit run ops.txt`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			closer, err := logger.Init(logger.Options{
				LogDir:  opts.logDir,
				Verbose: opts.verbose,
				Stderr:  cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			opts.logCloser = closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logCloser != nil {
				return opts.logCloser.Close()
			}
			return nil
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress per-operation messages")
	flags.BoolVar(&opts.jsonOut, "json", false, "Output in JSON format")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&opts.preset, "preset", alloc.PresetClassic, "Category preset (see 'quickfit presets')")
	flags.StringVar(&opts.categories, "categories", "", "Comma-separated ascending block sizes, overrides --preset")
	flags.IntVar(&opts.initial, "initial", alloc.DefaultInitialFreeCount, "Initial free blocks per category")
	flags.StringVar(&opts.logDir, "log-dir", "", "Write JSON logs to this directory")

	rootCmd.AddCommand(
		newStatusCmd(opts),
		newAllocateCmd(opts),
		newDeallocateCmd(opts),
		newRunCmd(opts),
		newShellCmd(opts),
		newPresetsCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// config resolves the allocator configuration from the global flags.
func (o *globalOptions) config() (alloc.Config, error) {
	cfg, err := alloc.Preset(o.preset)
	if err != nil {
		return alloc.Config{}, err
	}
	if o.categories != "" {
		sizes, err := command.ParseSizeList(o.categories)
		if err != nil {
			return alloc.Config{}, fmt.Errorf("invalid --categories: %w", err)
		}
		cfg.Categories = sizes
	}
	cfg.InitialFreeCount = o.initial
	return cfg, nil
}

// newAllocator builds a fresh allocator from the global flags.
func (o *globalOptions) newAllocator() (*alloc.QuickFit, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}
	qf, err := alloc.New(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("allocator created", "categories", cfg.Categories, "initial", cfg.InitialFreeCount)
	return qf, nil
}

// newRenderer returns a renderer for out, with color only on terminals.
func (o *globalOptions) newRenderer(out io.Writer) *render.Renderer {
	color := false
	if f, ok := out.(*os.File); ok && !o.noColor {
		color = term.IsTerminal(f)
	}
	return render.New(out, render.Options{Color: color, JSON: o.jsonOut})
}

// newSession wires a fresh allocator to cmd's output.
func (o *globalOptions) newSession(cmd *cobra.Command) (*session, error) {
	qf, err := o.newAllocator()
	if err != nil {
		return nil, err
	}
	return &session{
		alloc: qf,
		out:   o.newRenderer(cmd.OutOrStdout()),
		quiet: o.quiet,
	}, nil
}
