package config

import (
	"bytes"
	"fmt"

	"github.com/dshills/inkwell/internal/config/loader"
	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"
)

var log = commonlog.GetLogger("inkwell.config")

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "INKWELL_"

// Options configures Load.
type Options struct {
	// FS reads config files; nil uses the OS.
	FS loader.FileSystem

	// Env is the environment loader; nil uses EnvPrefix over os.Environ.
	// Set SkipEnv to ignore the environment.
	Env     loader.Loader
	SkipEnv bool
}

// Load reads path over the defaults, then applies the environment. An
// empty path or a missing file leaves the defaults in place.
func Load(path string, opts Options) (*Config, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = loader.DefaultFS()
	}

	merged := make(map[string]any)
	if path != "" {
		file, err := loader.ForPath(fsys, path).Load()
		if err != nil {
			return nil, err
		}
		if file == nil {
			log.Debug("config file not found, using defaults", "path", path)
		}
		merged = loader.DeepMerge(merged, file)
	}

	if !opts.SkipEnv {
		env := opts.Env
		if env == nil {
			env = NewEnvLoader()
		}
		vars, err := env.Load()
		if err != nil {
			return nil, fmt.Errorf("reading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, vars)
	}

	cfg, err := FromMap(merged)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info("config loaded", "path", path)
	return cfg, nil
}

// NewEnvLoader returns the INKWELL_ environment loader.
func NewEnvLoader() *loader.EnvLoader {
	l := loader.NewEnvLoader(EnvPrefix,
		"stream", "save", "comment", "sort", "case", "modeline", "plugins", "logging")
	l.AddMapping(EnvPrefix+"LOG_LEVEL", "logging.level")
	return l
}

// FromMap decodes a nested settings map over the defaults. Unknown keys
// are errors.
func FromMap(m map[string]any) (*Config, error) {
	cfg := Default()
	if len(m) == 0 {
		return cfg, nil
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding settings: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	return cfg, nil
}
