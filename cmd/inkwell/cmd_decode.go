package main

import (
	"context"

	"github.com/dshills/inkwell/internal/document"
	"github.com/spf13/cobra"
)

func newDecodeCmd(a *app) *cobra.Command {
	var (
		to      string
		newline string
		keep    bool
		write   bool
	)

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a file and write it back out",
		Long: `Decode reads the input through the streaming decoder and writes it
with the save settings. Use it to convert charsets and newlines or to
check that a file is valid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if to != "" {
				a.cfg.Save.Encoding = to
			}
			if newline != "" {
				a.cfg.Save.Newline = newline
			}
			if keep {
				a.cfg.Stream.TrimTrailingNewline = false
				a.cfg.Save.AddTrailingNewline = false
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.edit(cmd, args, write, func(context.Context, *document.Document) error {
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "", "output charset (IANA name)")
	cmd.Flags().StringVarP(&newline, "newline", "n", "", "output newline: lf, crlf, cr or detect")
	cmd.Flags().BoolVar(&keep, "keep-trailing-newline", false, "write the final newline exactly as read")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")

	return cmd
}
