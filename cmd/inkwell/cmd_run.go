package main

import (
	"context"
	"fmt"

	"github.com/dshills/inkwell/internal/document"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		lines string
		write bool
	)

	cmd := &cobra.Command{
		Use:   "run plugin [file]",
		Short: "Run a plugin by name",
		Long: `Run applies a registered plugin to the input. Built-in plugins and Lua
scripts loaded with --script or plugins.scripts are available; see
"inkwell plugins" for the list.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			return a.edit(cmd, args[1:], write, func(ctx context.Context, doc *document.Document) error {
				if lines != "" {
					if err := selectLines(doc.Buffer, lines); err != nil {
						return err
					}
				}
				return a.mgr.Apply(ctx, doc.ID, name)
			})
		},
	}

	cmd.Flags().StringVarP(&lines, "lines", "l", "", "select line range N or N:M before running")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")

	return cmd
}

func newPluginsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List registered plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range a.plugins.Names() {
				if a.cfg.Plugins.IsDisabled(name) {
					fmt.Fprintf(out, "%s (disabled)\n", name)
					continue
				}
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
