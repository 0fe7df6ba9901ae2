// Package config loads inkwell settings.
//
// Settings come from three layers, higher overriding lower:
//
//	┌──────────────────────────────┐
//	│  3. Environment (INKWELL_*)  │  ← Highest priority
//	├──────────────────────────────┤
//	│  2. Config file (TOML/YAML)  │
//	├──────────────────────────────┤
//	│  1. Built-in defaults        │  ← Lowest priority
//	└──────────────────────────────┘
//
// A config file is TOML unless its extension is .yaml or .yml:
//
//	[stream]
//	trim_trailing_newline = true
//	chunk_size = 8192
//
//	[save]
//	newline = "detect"
//	strip_trailing_whitespace = true
//
//	[languages.go]
//	line_comment = "//"
//	extensions = [".go"]
//
// Environment variables name a section and key: INKWELL_SAVE_NEWLINE=crlf
// sets save.newline. INKWELL_LOG_LEVEL is shorthand for logging.level.
//
// The watcher sub-package reloads a config file when it changes.
package config
