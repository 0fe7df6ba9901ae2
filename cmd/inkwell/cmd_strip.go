package main

import (
	"context"

	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/plugin"
	"github.com/spf13/cobra"
)

func newStripCmd(a *app) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "strip [file]",
		Short: "Remove trailing whitespace from every line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(cmd, args, write, func(ctx context.Context, doc *document.Document) error {
				return a.apply(ctx, doc, plugin.WhitespaceStripper{})
			})
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")

	return cmd
}
