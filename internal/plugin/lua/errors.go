package lua

import "errors"

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrNoApply is returned when a script does not define apply.
	ErrNoApply = errors.New("script has no apply function")
)
