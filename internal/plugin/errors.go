package plugin

import "errors"

// Plugin system errors.
var (
	// ErrPluginNotFound is returned when no plugin has the requested name.
	ErrPluginNotFound = errors.New("plugin not found")

	// ErrAlreadyRegistered is returned when a name is taken.
	ErrAlreadyRegistered = errors.New("plugin already registered")

	// ErrPluginDisabled is returned when applying a disabled plugin.
	ErrPluginDisabled = errors.New("plugin is disabled")

	// ErrNoBuffer is returned when a Context has no buffer.
	ErrNoBuffer = errors.New("no buffer")

	// ErrNoInput is returned when the stream decoder has nothing to read.
	ErrNoInput = errors.New("no input")

	// ErrInvalidPlugin is returned for plugins without a name.
	ErrInvalidPlugin = errors.New("invalid plugin")
)
