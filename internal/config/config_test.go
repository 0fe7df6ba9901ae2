package config

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/dshills/inkwell/internal/config/loader"
	"github.com/dshills/inkwell/internal/engine/buffer"
	"golang.org/x/text/language"
)

type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func (m memFS) Stat(path string) (fs.FileInfo, error) {
	return nil, fs.ErrNotExist
}

type staticEnv map[string]any

func (e staticEnv) Load() (map[string]any, error) { return e, nil }

var _ loader.Loader = staticEnv(nil)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("/missing.toml", Options{FS: memFS{}, SkipEnv: true})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Stream.ChunkSize != Default().Stream.ChunkSize || !cfg.Stream.TrimTrailingNewline {
		t.Errorf("expected defaults, got %+v", cfg.Stream)
	}
}

func TestLoadTOML(t *testing.T) {
	fsys := memFS{"/inkwell.toml": `
[stream]
trim_trailing_newline = false

[save]
newline = "crlf"

[sort]
language = "de"
ignore_case = true

[languages.go]
line_comment = "//"
extensions = [".go"]

[plugins]
scripts = ["upper.lua"]
`}

	cfg, err := Load("/inkwell.toml", Options{FS: fsys, SkipEnv: true})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Stream.TrimTrailingNewline {
		t.Error("trim_trailing_newline should be false")
	}
	if cfg.Stream.ChunkSize != 8*1024 {
		t.Errorf("unset chunk_size should keep its default, got %d", cfg.Stream.ChunkSize)
	}
	if got := cfg.Save.LineEnding(buffer.LineEndingLF); got != buffer.LineEndingCRLF {
		t.Errorf("LineEnding = %v, want crlf", got)
	}
	if cfg.Sort.Tag() != language.German || !cfg.Sort.IgnoreCase {
		t.Errorf("sort = %+v", cfg.Sort)
	}
	if cfg.Languages["go"].LineComment != "//" {
		t.Errorf("languages = %+v", cfg.Languages)
	}
	if len(cfg.Plugins.Scripts) != 1 {
		t.Errorf("plugins = %+v", cfg.Plugins)
	}
}

func TestLoadYAML(t *testing.T) {
	fsys := memFS{"/inkwell.yml": "comment:\n  default_marker: \"#\"\nlogging:\n  level: debug\n"}

	cfg, err := Load("/inkwell.yml", Options{FS: fsys, SkipEnv: true})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Comment.DefaultMarker != "#" {
		t.Errorf("DefaultMarker = %q", cfg.Comment.DefaultMarker)
	}
	if cfg.Logging.Verbosity() != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Logging.Verbosity())
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	fsys := memFS{"/inkwell.toml": "[save]\nnewline = \"crlf\"\n"}
	env := staticEnv{
		"save":   map[string]any{"newline": "cr"},
		"stream": map[string]any{"chunk_size": int64(64)},
	}

	cfg, err := Load("/inkwell.toml", Options{FS: fsys, Env: env})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Save.Newline != "cr" {
		t.Errorf("Newline = %q, want cr", cfg.Save.Newline)
	}
	if cfg.Stream.ChunkSize != 64 {
		t.Errorf("ChunkSize = %d, want 64", cfg.Stream.ChunkSize)
	}
}

func TestLoadParseError(t *testing.T) {
	fsys := memFS{"/inkwell.toml": "[save\n"}

	_, err := Load("/inkwell.toml", Options{FS: fsys, SkipEnv: true})
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Line != 1 {
		t.Errorf("Line = %d, want 1", perr.Line)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	fsys := memFS{"/inkwell.toml": "[stream]\nchunk = 3\n"}

	_, err := Load("/inkwell.toml", Options{FS: fsys, SkipEnv: true})
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"negative chunk", func(c *Config) { c.Stream.ChunkSize = -1 }, "stream.chunk_size"},
		{"bad newline", func(c *Config) { c.Save.Newline = "nel" }, "save.newline"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad sort language", func(c *Config) { c.Sort.Language = "not a tag" }, "sort.language"},
		{"empty extension", func(c *Config) {
			c.Languages["x"] = LanguageConfig{Extensions: []string{""}}
		}, "languages.x.extensions"},
		{"empty script", func(c *Config) { c.Plugins.Scripts = []string{" "} }, "plugins.scripts[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("expected ErrValidationFailed, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Path != tt.path {
				t.Errorf("expected path %q, got %v", tt.path, err)
			}
		})
	}
}

func TestLineEndingDetect(t *testing.T) {
	s := SaveConfig{Newline: "detect"}
	if got := s.LineEnding(buffer.LineEndingCR); got != buffer.LineEndingCR {
		t.Errorf("detect should return the detected newline, got %v", got)
	}
}

func TestPluginsDisabled(t *testing.T) {
	p := PluginsConfig{Disabled: []string{"sort-lines"}}
	if !p.IsDisabled("sort-lines") || p.IsDisabled("strip") {
		t.Error("IsDisabled mismatch")
	}
}

