package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dshills/inkwell/internal/engine/buffer"
	"golang.org/x/text/language"
)

// Config holds all inkwell settings.
type Config struct {
	Stream    StreamConfig              `yaml:"stream"`
	Save      SaveConfig                `yaml:"save"`
	Comment   CommentConfig             `yaml:"comment"`
	Sort      SortConfig                `yaml:"sort"`
	Case      CaseConfig                `yaml:"case"`
	Languages map[string]LanguageConfig `yaml:"languages"`
	Modeline  ModelineConfig            `yaml:"modeline"`
	Plugins   PluginsConfig             `yaml:"plugins"`
	Logging   LoggingConfig             `yaml:"logging"`
}

// StreamConfig controls decoding of input.
type StreamConfig struct {
	TrimTrailingNewline bool   `yaml:"trim_trailing_newline"`
	ChunkSize           int    `yaml:"chunk_size"`
	Encoding            string `yaml:"encoding"`
}

// SaveConfig controls encoding of output.
type SaveConfig struct {
	AddTrailingNewline      bool `yaml:"add_trailing_newline"`
	StripTrailingWhitespace bool `yaml:"strip_trailing_whitespace"`

	// Newline is lf, crlf, cr or detect. Detect keeps the newline found
	// when the document was loaded.
	Newline string `yaml:"newline"`

	// Encoding is the output charset; empty uses the load encoding.
	Encoding string `yaml:"encoding"`
}

// CommentConfig configures the comment toggle.
type CommentConfig struct {
	DefaultMarker string `yaml:"default_marker"`
}

// SortConfig holds default line sort flags.
type SortConfig struct {
	Language         string `yaml:"language"`
	IgnoreCase       bool   `yaml:"ignore_case"`
	Reverse          bool   `yaml:"reverse"`
	RemoveDuplicates bool   `yaml:"remove_duplicates"`
}

// CaseConfig configures case conversion.
type CaseConfig struct {
	Language string `yaml:"language"`
}

// LanguageConfig overrides or adds a language.
type LanguageConfig struct {
	Name        string   `yaml:"name"`
	LineComment string   `yaml:"line_comment"`
	Extensions  []string `yaml:"extensions"`
	Filenames   []string `yaml:"filenames"`
}

// ModelineConfig configures modeline scanning.
type ModelineConfig struct {
	Enabled bool `yaml:"enabled"`

	// Mappings is a TOML file of extra editor language names.
	Mappings string `yaml:"mappings"`
}

// PluginsConfig lists script plugins.
type PluginsConfig struct {
	Scripts  []string `yaml:"scripts"`
	Disabled []string `yaml:"disabled"`
}

// LoggingConfig configures commonlog.
type LoggingConfig struct {
	// Level is none, error, warning, notice, info or debug.
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Stream: StreamConfig{
			TrimTrailingNewline: true,
			ChunkSize:           8 * 1024,
			Encoding:            "utf-8",
		},
		Save: SaveConfig{
			AddTrailingNewline: true,
			Newline:            "detect",
		},
		Comment: CommentConfig{
			DefaultMarker: "//",
		},
		Languages: map[string]LanguageConfig{},
		Modeline: ModelineConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level: "warning",
		},
	}
}

// Validate reports the first invalid setting as a *ValidationError.
func (c *Config) Validate() error {
	if c.Stream.ChunkSize < 0 {
		return &ValidationError{Path: "stream.chunk_size", Message: "must not be negative", Value: c.Stream.ChunkSize}
	}
	if c.Save.Newline != "" && c.Save.Newline != "detect" {
		if _, ok := buffer.ParseLineEnding(c.Save.Newline); !ok {
			return &ValidationError{Path: "save.newline", Message: "must be lf, crlf, cr or detect", Value: c.Save.Newline}
		}
	}
	if _, ok := verbosity[strings.ToLower(c.Logging.Level)]; !ok && c.Logging.Level != "" {
		return &ValidationError{Path: "logging.level", Message: "unknown level", Value: c.Logging.Level}
	}
	if c.Sort.Language != "" {
		if _, err := language.Parse(c.Sort.Language); err != nil {
			return &ValidationError{Path: "sort.language", Message: err.Error(), Value: c.Sort.Language}
		}
	}
	if c.Case.Language != "" {
		if _, err := language.Parse(c.Case.Language); err != nil {
			return &ValidationError{Path: "case.language", Message: err.Error(), Value: c.Case.Language}
		}
	}
	for id, lang := range c.Languages {
		if id == "" {
			return &ValidationError{Path: "languages", Message: "empty language id", Value: lang}
		}
		for _, ext := range lang.Extensions {
			if ext == "" || ext == "." {
				return &ValidationError{Path: fmt.Sprintf("languages.%s.extensions", id), Message: "empty extension", Value: ext}
			}
		}
	}
	for i, s := range c.Plugins.Scripts {
		if strings.TrimSpace(s) == "" {
			return &ValidationError{Path: fmt.Sprintf("plugins.scripts[%d]", i), Message: "empty path", Value: s}
		}
	}
	return nil
}

// LineEnding resolves save.newline. Detect, or an empty value, returns
// detected.
func (s SaveConfig) LineEnding(detected buffer.LineEnding) buffer.LineEnding {
	if le, ok := buffer.ParseLineEnding(s.Newline); ok {
		return le
	}
	return detected
}

// Tag returns the collation language, or language.Und.
func (s SortConfig) Tag() language.Tag {
	return parseTag(s.Language)
}

// Tag returns the casing language, or language.Und.
func (c CaseConfig) Tag() language.Tag {
	return parseTag(c.Language)
}

func parseTag(s string) language.Tag {
	if s == "" {
		return language.Und
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und
	}
	return tag
}

var verbosity = map[string]int{
	"none":    -4,
	"error":   -2,
	"warning": -1,
	"notice":  0,
	"info":    1,
	"debug":   2,
}

// Verbosity maps the level to a commonlog verbosity. Unknown levels map
// to warning.
func (l LoggingConfig) Verbosity() int {
	if v, ok := verbosity[strings.ToLower(l.Level)]; ok {
		return v
	}
	return verbosity["warning"]
}

// IsDisabled reports whether the named plugin is switched off.
func (p PluginsConfig) IsDisabled(name string) bool {
	return slices.Contains(p.Disabled, name)
}
