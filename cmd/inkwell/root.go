package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/inkwell/internal/config"
	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/plugin"
	"github.com/dshills/inkwell/internal/plugin/lua"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("inkwell.cli")

type rootOptions struct {
	configPath string
	logLevel   string
	logFile    string
	encoding   string
	stdinName  string
	scripts    []string
}

// app is the state shared by subcommands, built before each runs.
type app struct {
	configPath string
	stdinName  string
	cfg        *config.Config
	plugins    *plugin.Registry
	mgr        *document.Manager
}

func newRootCmd() *cobra.Command {
	var opts rootOptions
	a := &app{}

	cmd := &cobra.Command{
		Use:           "inkwell",
		Short:         "Headless text editing operations",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(&opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to configuration file (TOML or YAML)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: none, error, warning, notice, info, debug")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	flags.StringVarP(&opts.encoding, "encoding", "e", "", "input charset (IANA name)")
	flags.StringVar(&opts.stdinName, "name", "", "file name used to detect the language of standard input")
	flags.StringArrayVar(&opts.scripts, "script", nil, "load a Lua plugin script (repeatable)")

	cmd.AddCommand(newDecodeCmd(a))
	cmd.AddCommand(newStripCmd(a))
	cmd.AddCommand(newCommentCmd(a))
	cmd.AddCommand(newCaseCmd(a))
	cmd.AddCommand(newSortCmd(a))
	cmd.AddCommand(newInfoCmd(a))
	cmd.AddCommand(newModelineCmd(a))
	cmd.AddCommand(newRunCmd(a))
	cmd.AddCommand(newPluginsCmd(a))
	cmd.AddCommand(newConfigCmd(a))

	return cmd
}

func (a *app) init(opts *rootOptions) error {
	path := opts.configPath
	if path == "" {
		path = defaultConfigPath()
	}

	cfg, err := config.Load(path, config.Options{})
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Logging.File = opts.logFile
	}
	if opts.encoding != "" {
		cfg.Stream.Encoding = opts.encoding
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	configureLogging(cfg.Logging)

	reg := plugin.NewBuiltinRegistry()
	scripts := append(append([]string{}, cfg.Plugins.Scripts...), opts.scripts...)
	if err := lua.Register(reg, scripts); err != nil {
		return err
	}

	mgr, err := document.NewManager(cfg, document.WithPlugins(reg))
	if err != nil {
		return err
	}

	a.configPath = path
	a.stdinName = opts.stdinName
	a.cfg = cfg
	a.plugins = reg
	a.mgr = mgr
	return nil
}

func configureLogging(l config.LoggingConfig) {
	var path *string
	if l.File != "" {
		path = &l.File
	}
	commonlog.Configure(l.Verbosity(), path)
}

// defaultConfigPath is $INKWELL_CONFIG, or config.toml in the user
// config directory.
func defaultConfigPath() string {
	if p := os.Getenv(config.EnvPrefix + "CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "inkwell", "config.toml")
}
