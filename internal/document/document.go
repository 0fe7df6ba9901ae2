// Package document tracks open documents and their per-document state.
//
// A Manager opens files through the stream loader, detects the language,
// applies modelines and saves with the configured newline policy. Each
// document is addressed by a generated id until it is closed.
package document

import (
	"time"

	"github.com/dshills/inkwell/internal/engine/buffer"
	"github.com/dshills/inkwell/internal/modeline"
	"github.com/google/uuid"
)

// ID identifies an open document.
type ID string

func newID() ID {
	return ID(uuid.NewString())
}

// DefaultSettings are the editing settings documents start from.
var DefaultSettings = modeline.Settings{
	TabWidth:    8,
	IndentWidth: 8,
	RightMargin: 80,
}

// Document is an open document.
type Document struct {
	ID     ID
	Buffer *buffer.Buffer

	// Path is empty for documents read from a stream.
	Path string

	// Encoding is the charset the document was read with.
	Encoding string

	// Newline is the terminator detected on load.
	Newline buffer.LineEnding

	// TrimmedTrailingNewline is set when loading removed the final newline.
	TrimmedTrailingNewline bool

	// Settings are the editing settings after modelines.
	Settings modeline.Settings

	// Modeline holds the options found by the last scan.
	Modeline modeline.Options

	OpenedAt time.Time
	SavedAt  time.Time
}

// Modified reports whether the buffer changed since load or save.
func (d *Document) Modified() bool {
	return d.Buffer.Modified()
}
