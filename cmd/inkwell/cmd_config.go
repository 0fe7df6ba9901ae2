package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dshills/inkwell/internal/config"
	"github.com/dshills/inkwell/internal/config/watcher"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(a.cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.configPath)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Reload the configuration whenever it changes",
		Long: `Watch validates the configuration file each time it is written and
reports the result until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigWatch(cmd, a)
		},
	})

	return cmd
}

func runConfigWatch(cmd *cobra.Command, a *app) error {
	if a.configPath == "" {
		return errors.New("no configuration file")
	}

	var mu sync.Mutex
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	w, err := watcher.New(a.configPath, func(cfg *config.Config, err error) {
		mu.Lock()
		defer mu.Unlock()

		if err != nil {
			fmt.Fprintf(errOut, "invalid: %v\n", err)
			return
		}
		configureLogging(cfg.Logging)
		a.cfg = cfg
		fmt.Fprintf(out, "reloaded %s\n", a.configPath)
	})
	if err != nil {
		return err
	}
	defer w.Close()

	log.Info("watching config", "path", w.Path())
	<-cmd.Context().Done()
	return nil
}
