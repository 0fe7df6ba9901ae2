package stream

import "github.com/dshills/inkwell/internal/engine/buffer"

// Target is the buffer surface an OutputStream writes into.
// *buffer.Buffer satisfies it.
type Target interface {
	Insert(offset buffer.ByteOffset, text string) (buffer.ByteOffset, error)
	Delete(start, end buffer.ByteOffset) error
	TextRange(start, end buffer.ByteOffset) string
	Len() buffer.ByteOffset

	LineCount() uint32
	LineStartOffset(line uint32) buffer.ByteOffset
	LineEndOffset(line uint32) buffer.ByteOffset
	NextLineOffset(line uint32) buffer.ByteOffset

	BeginUserAction()
	EndUserAction()
	SetModified(modified bool)
	PlaceCursor(offset buffer.ByteOffset) error
}

// Source is the read surface an InputStream encodes from.
// *buffer.Snapshot satisfies it.
type Source interface {
	Len() buffer.ByteOffset
	LineCount() uint32
	LineText(line uint32) string
}

var (
	_ Target = (*buffer.Buffer)(nil)
	_ Source = (*buffer.Snapshot)(nil)
)
