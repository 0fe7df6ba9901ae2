package main

import (
	"github.com/dshills/inkwell/internal/docinfo"
	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	var (
		lines  string
		indent bool
	)

	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Print document statistics as JSON",
		Long: `Info prints line, word and character counts along with the detected
language, newline and editing settings. With --lines the selected range
is counted as well.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, a, argOrEmpty(args), lines, indent)
		},
	}

	cmd.Flags().StringVarP(&lines, "lines", "l", "", "also count this line range N or N:M")
	cmd.Flags().BoolVarP(&indent, "pretty", "p", false, "indent the output")

	return cmd
}

func runInfo(cmd *cobra.Command, a *app, path, lines string, indent bool) error {
	doc, err := a.open(cmd, path)
	if err != nil {
		return err
	}
	defer a.mgr.Close(doc.ID)

	var j jsonDoc
	j.set("path", doc.Path)
	j.set("language", doc.Buffer.Language())
	j.set("encoding", doc.Encoding)
	j.set("newline", doc.Newline.String())
	j.set("trimmed_trailing_newline", doc.TrimmedTrailingNewline)
	j.set("stats", docinfo.Document(doc.Buffer))
	j.settings("settings", doc.Settings)

	if lines != "" {
		if err := selectLines(doc.Buffer, lines); err != nil {
			return err
		}
		if sel, ok := docinfo.Selection(doc.Buffer); ok {
			j.set("selection", sel)
		}
	}

	out, err := j.bytes(indent)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
