package textops

import (
	"github.com/dshills/inkwell/internal/engine/buffer"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("inkwell.textops")

// Buffer is the buffer surface the transforms need.
// *buffer.Buffer satisfies it.
type Buffer interface {
	Len() buffer.ByteOffset
	TextRange(start, end buffer.ByteOffset) string
	Insert(offset buffer.ByteOffset, text string) (buffer.ByteOffset, error)
	Delete(start, end buffer.ByteOffset) error

	LineCount() uint32
	LineAt(offset buffer.ByteOffset) uint32
	LineStartOffset(line uint32) buffer.ByteOffset
	LineEndOffset(line uint32) buffer.ByteOffset
	NextLineOffset(line uint32) buffer.ByteOffset

	Cursor() buffer.ByteOffset
	SelectionBounds() (start, end buffer.ByteOffset, ok bool)
	SelectRange(anchor, head buffer.ByteOffset) error

	CreateMark(name string, offset buffer.ByteOffset, leftGravity bool) error
	MarkOffset(name string) (buffer.ByteOffset, bool)
	DeleteMark(name string) error

	BeginNamedAction(name string)
	EndUserAction()
}

var _ Buffer = (*buffer.Buffer)(nil)

// lineRange returns the lines an operation covers: the selected lines, or
// the cursor line when nothing is selected. A selection ending at the start
// of a line does not include that line.
func lineRange(b Buffer) (first, last uint32) {
	start, end, ok := b.SelectionBounds()
	if !ok {
		line := b.LineAt(b.Cursor())
		return line, line
	}

	first = b.LineAt(start)
	last = b.LineAt(end)
	if last > first && b.LineStartOffset(last) == end {
		last--
	}
	return first, last
}
