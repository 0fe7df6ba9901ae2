package main

import (
	"context"

	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/plugin"
	"github.com/spf13/cobra"
)

func newCommentCmd(a *app) *cobra.Command {
	var (
		marker string
		lines  string
		write  bool
	)

	cmd := &cobra.Command{
		Use:   "comment [file]",
		Short: "Toggle line comments",
		Long: `Comment adds the language's line comment marker to each selected line,
or removes it when the first selected line already starts with it.
The whole file is selected unless --lines is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(cmd, args, write, func(ctx context.Context, doc *document.Document) error {
				if err := selectLines(doc.Buffer, lines); err != nil {
					return err
				}
				return a.apply(ctx, doc, plugin.CommentToggle{Marker: marker})
			})
		},
	}

	cmd.Flags().StringVarP(&marker, "marker", "m", "", "comment marker (default: the language's)")
	cmd.Flags().StringVarP(&lines, "lines", "l", "", "line range N or N:M (1-based, inclusive)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")

	return cmd
}
