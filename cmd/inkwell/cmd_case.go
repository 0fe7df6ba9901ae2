package main

import (
	"context"

	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/plugin"
	"github.com/dshills/inkwell/internal/textops"
	"github.com/spf13/cobra"
)

func newCaseCmd(a *app) *cobra.Command {
	var (
		lines string
		write bool
	)

	cmd := &cobra.Command{
		Use:       "case upper|lower|invert|title [file]",
		Short:     "Change the case of text",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"upper", "lower", "invert", "title"},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := textops.ParseCaseMode(args[0])
			if err != nil {
				return err
			}
			return a.edit(cmd, args[1:], write, func(ctx context.Context, doc *document.Document) error {
				if err := selectLines(doc.Buffer, lines); err != nil {
					return err
				}
				return a.apply(ctx, doc, plugin.CaseTransform{Mode: mode})
			})
		},
	}

	cmd.Flags().StringVarP(&lines, "lines", "l", "", "line range N or N:M (1-based, inclusive)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")

	return cmd
}
