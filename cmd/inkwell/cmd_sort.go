package main

import (
	"context"

	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/plugin"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

func newSortCmd(a *app) *cobra.Command {
	var (
		reverse    bool
		ignoreCase bool
		unique     bool
		column     int
		lang       string
		lines      string
		write      bool
	)

	cmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Sort lines",
		Long: `Sort orders lines with locale-aware collation. Flags that are not
given fall back to the [sort] section of the config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(cmd, args, write, func(ctx context.Context, doc *document.Document) error {
				if lines != "" {
					if err := selectLines(doc.Buffer, lines); err != nil {
						return err
					}
				}

				opts := a.mgr.Context(doc).SortOptions()
				flags := cmd.Flags()
				if flags.Changed("reverse") {
					opts.Reverse = reverse
				}
				if flags.Changed("ignore-case") {
					opts.IgnoreCase = ignoreCase
				}
				if flags.Changed("unique") {
					opts.RemoveDuplicates = unique
				}
				if flags.Changed("language") {
					tag, err := language.Parse(lang)
					if err != nil {
						return err
					}
					opts.Language = tag
				}
				opts.StartColumn = column

				return a.apply(ctx, doc, plugin.SortLines{Options: &opts})
			})
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "sort in descending order")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "compare without case")
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "drop duplicate lines")
	cmd.Flags().IntVarP(&column, "column", "k", 0, "compare from this column (0-based, in characters)")
	cmd.Flags().StringVar(&lang, "language", "", "collation language tag, e.g. de or sv")
	cmd.Flags().StringVarP(&lines, "lines", "l", "", "line range N or N:M (1-based, inclusive)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")

	return cmd
}
