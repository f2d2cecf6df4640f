package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/quickfit/alloc"
)

func newPresetsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List category presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			type presetInfo struct {
				Name string       `json:"name"`
				alloc.Config
			}

			var list []presetInfo
			for _, name := range alloc.Presets() {
				cfg, err := alloc.Preset(name)
				if err != nil {
					return err
				}
				list = append(list, presetInfo{Name: name, Config: cfg})
			}

			out := cmd.OutOrStdout()
			if opts.jsonOut {
				return printJSON(out, list)
			}
			for _, p := range list {
				fmt.Fprintf(out, "%-8s %s\n", p.Name, p.Config)
			}
			return nil
		},
	}
}
