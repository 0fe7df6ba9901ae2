package main

import (
	"github.com/spf13/cobra"
)

func newModelineCmd(a *app) *cobra.Command {
	var indent bool

	cmd := &cobra.Command{
		Use:   "modeline [file]",
		Short: "Print the vim, emacs and kate modeline options of a file",
		Long: `Modeline prints the options assigned by the file's modelines and the
editing settings that result from them, as JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.open(cmd, argOrEmpty(args))
			if err != nil {
				return err
			}
			defer a.mgr.Close(doc.ID)

			var j jsonDoc
			j.set("enabled", a.cfg.Modeline.Enabled)
			j.modelineOptions("options", doc.Modeline)
			j.settings("settings", doc.Settings)

			out, err := j.bytes(indent)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().BoolVarP(&indent, "pretty", "p", false, "indent the output")

	return cmd
}
