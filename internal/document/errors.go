package document

import (
	"errors"
	"fmt"
)

var (
	// ErrDocumentNotOpen indicates no open document has the id.
	ErrDocumentNotOpen = errors.New("document not open")

	// ErrAlreadyOpen indicates the path is open in another document.
	ErrAlreadyOpen = errors.New("document already open")

	// ErrNoPath indicates a document read from a stream has no file to save to.
	ErrNoPath = errors.New("document has no path")
)

// PathError represents an error associated with a file path.
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error {
	return e.Err
}
