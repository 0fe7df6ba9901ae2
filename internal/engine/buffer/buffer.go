package buffer

import (
	"errors"
	"slices"
	"sync"
	"unicode/utf8"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
	ErrMarkNotFound     = errors.New("mark not found")
	ErrMarkReserved     = errors.New("mark is reserved")
)

// Buffer is a mutable text store with line lookup, named marks, a
// selection, a modified flag and user-action brackets.
// All methods are safe for concurrent use, but edits from different
// goroutines interleave at method granularity only.
type Buffer struct {
	mu sync.RWMutex

	text  []byte
	lines lineIndex // nil when stale

	revisionID RevisionID
	language   string
	modified   bool

	marks map[string]*mark

	actionDepth int
	actionName  string
	pending     []Change

	listeners    []listenerEntry
	nextListener ListenerID
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		revisionID: NewRevisionID(),
		marks: map[string]*mark{
			MarkInsert:         {},
			MarkSelectionBound: {},
		},
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	return NewBuffer(append([]Option{WithText(s)}, opts...)...)
}

// index returns the line index, rebuilding it when stale.
// Callers must hold the write lock.
func (b *Buffer) index() lineIndex {
	idx := b.lines
	if idx == nil {
		idx = computeLineIndex(b.text)
		b.lines = idx
	}
	return idx
}

// Read Operations

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return string(b.text)
}

// TextRange returns text in the given byte range. The range is clamped
// to the buffer.
func (b *Buffer) TextRange(start, end ByteOffset) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	start, end = b.clampLocked(start), b.clampLocked(end)
	if start >= end {
		return ""
	}
	return string(b.text[start:end])
}

// Len returns the total byte length of the buffer.
func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(len(b.text))
}

// IsEmpty returns true if the buffer is empty.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.text) == 0
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.index().count()
}

// LineText returns the text of a specific line (without terminator).
func (b *Buffer) LineText(line uint32) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	idx := b.index()
	return string(b.text[idx.start(line):lineEnd(idx, b.text, line)])
}

// LineStartOffset returns the byte offset of the start of a line.
// Lines past the end clamp to the last line.
func (b *Buffer) LineStartOffset(line uint32) ByteOffset {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.index().start(line)
}

// LineEndOffset returns the byte offset of the end of a line (before
// its terminator).
func (b *Buffer) LineEndOffset(line uint32) ByteOffset {
	b.mu.Lock()
	defer b.mu.Unlock()
	return lineEnd(b.index(), b.text, line)
}

// NextLineOffset returns the offset where the line after line begins,
// or the buffer length when line is the last one.
func (b *Buffer) NextLineOffset(line uint32) ByteOffset {
	b.mu.Lock()
	defer b.mu.Unlock()
	return lineNext(b.index(), b.text, line)
}

// LineAt returns the line containing offset.
func (b *Buffer) LineAt(offset ByteOffset) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.index().lineAt(b.clampLocked(offset))
}

// OffsetToPoint converts a byte offset to line/column.
func (b *Buffer) OffsetToPoint(offset ByteOffset) Point {
	b.mu.Lock()
	defer b.mu.Unlock()

	offset = b.clampLocked(offset)
	idx := b.index()
	line := idx.lineAt(offset)
	return Point{Line: line, Column: uint32(offset - idx.start(line))}
}

// PointToOffset converts line/column to byte offset. Columns past the
// end of the line clamp to the line end.
func (b *Buffer) PointToOffset(p Point) ByteOffset {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.index()
	start := idx.start(p.Line)
	end := lineEnd(idx, b.text, p.Line)
	if off := start + ByteOffset(p.Column); off < end {
		return off
	}
	return end
}

// ByteAt returns the byte at the given offset.
func (b *Buffer) ByteAt(offset ByteOffset) (byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if offset < 0 || offset >= ByteOffset(len(b.text)) {
		return 0, false
	}
	return b.text[offset], true
}

// RuneAt returns the rune at the given byte offset.
// Returns utf8.RuneError and size 0 if offset is out of range.
func (b *Buffer) RuneAt(offset ByteOffset) (rune, int) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if offset < 0 || offset >= ByteOffset(len(b.text)) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(b.text[offset:])
}

// RuneBefore returns the rune ending at offset.
func (b *Buffer) RuneBefore(offset ByteOffset) (rune, int) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if offset <= 0 || offset > ByteOffset(len(b.text)) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeLastRune(b.text[:offset])
}

// ForwardChar returns the offset one rune after offset, treating "\r\n"
// as a single character.
func (b *Buffer) ForwardChar(offset ByteOffset) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := ByteOffset(len(b.text))
	if offset >= n {
		return n
	}
	if offset < 0 {
		return 0
	}
	if b.text[offset] == '\r' && offset+1 < n && b.text[offset+1] == '\n' {
		return offset + 2
	}
	_, size := utf8.DecodeRune(b.text[offset:])
	return offset + ByteOffset(size)
}

// BackwardChar returns the offset one rune before offset, treating
// "\r\n" as a single character.
func (b *Buffer) BackwardChar(offset ByteOffset) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if offset <= 0 {
		return 0
	}
	if offset > ByteOffset(len(b.text)) {
		offset = ByteOffset(len(b.text))
	}
	if offset >= 2 && b.text[offset-1] == '\n' && b.text[offset-2] == '\r' {
		return offset - 2
	}
	_, size := utf8.DecodeLastRune(b.text[:offset])
	return offset - ByteOffset(size)
}

// Write Operations

// Insert inserts text at the given offset.
// Returns the end position of the inserted text.
func (b *Buffer) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	b.mu.Lock()

	if offset < 0 || offset > ByteOffset(len(b.text)) {
		b.mu.Unlock()
		return 0, ErrOffsetOutOfRange
	}
	if text == "" {
		b.mu.Unlock()
		return offset, nil
	}

	n := ByteOffset(len(text))
	if offset == ByteOffset(len(b.text)) {
		b.text = append(b.text, text...)
	} else {
		b.text = slices.Insert(b.text, int(offset), []byte(text)...)
	}
	b.lines = nil
	b.shiftMarksInsert(offset, n)

	c := Change{
		Type:     ChangeInsert,
		Range:    Range{Start: offset, End: offset},
		NewRange: Range{Start: offset, End: offset + n},
		NewText:  text,
	}
	listeners := b.recordLocked(c)
	rev := b.revisionID
	b.mu.Unlock()

	if listeners != nil {
		notify(listeners, ChangeSet{Changes: []Change{c}, Revision: rev})
	}
	return offset + n, nil
}

// Delete removes text in the given range.
func (b *Buffer) Delete(start, end ByteOffset) error {
	b.mu.Lock()

	if start < 0 || start > end || end > ByteOffset(len(b.text)) {
		b.mu.Unlock()
		return ErrRangeInvalid
	}
	if start == end {
		b.mu.Unlock()
		return nil
	}

	old := string(b.text[start:end])
	b.text = append(b.text[:start], b.text[end:]...)
	b.lines = nil
	b.shiftMarksDelete(start, end)

	c := Change{
		Type:     ChangeDelete,
		Range:    Range{Start: start, End: end},
		NewRange: Range{Start: start, End: start},
		OldText:  old,
	}
	listeners := b.recordLocked(c)
	rev := b.revisionID
	b.mu.Unlock()

	if listeners != nil {
		notify(listeners, ChangeSet{Changes: []Change{c}, Revision: rev})
	}
	return nil
}

// Replace swaps [start, end) for text inside a single user action.
// Returns the end position of the replacement text.
func (b *Buffer) Replace(start, end ByteOffset, text string) (ByteOffset, error) {
	b.BeginUserAction()
	defer b.EndUserAction()

	if err := b.Delete(start, end); err != nil {
		return 0, err
	}
	return b.Insert(start, text)
}

// SetText replaces the whole content.
func (b *Buffer) SetText(text string) error {
	_, err := b.Replace(0, b.Len(), text)
	return err
}

// Buffer State

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// Modified reports whether the buffer changed since the flag was last cleared.
func (b *Buffer) Modified() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.modified
}

// SetModified sets the modified flag.
func (b *Buffer) SetModified(modified bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.modified = modified
}

// Language returns the language id associated with the buffer.
func (b *Buffer) Language() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.language
}

// SetLanguage sets the language id associated with the buffer.
func (b *Buffer) SetLanguage(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.language = id
}

// Snapshot returns a read-only copy of the current buffer state.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	return &Snapshot{
		text:       string(b.text),
		lines:      b.index(),
		revisionID: b.revisionID,
		language:   b.language,
	}
}

func (b *Buffer) clampLocked(offset ByteOffset) ByteOffset {
	if offset < 0 {
		return 0
	}
	if n := ByteOffset(len(b.text)); offset > n {
		return n
	}
	return offset
}
