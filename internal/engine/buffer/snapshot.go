package buffer

// Snapshot provides a read-only view of a buffer at a specific point in time.
// It is safe for concurrent access and will not change even if the original
// buffer is modified.
type Snapshot struct {
	text       string
	lines      lineIndex
	revisionID RevisionID
	language   string
}

// Text returns the full snapshot content as a string.
func (s *Snapshot) Text() string {
	return s.text
}

// Len returns the total byte length of the snapshot.
func (s *Snapshot) Len() ByteOffset {
	return ByteOffset(len(s.text))
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() uint32 {
	return s.lines.count()
}

// LineText returns the text of a specific line (without terminator).
func (s *Snapshot) LineText(line uint32) string {
	return s.text[s.lines.start(line):lineEnd(s.lines, s.text, line)]
}

// Line returns a line together with its terminator. The terminator is
// empty for the last line.
func (s *Snapshot) Line(line uint32) (content, terminator string) {
	start := s.lines.start(line)
	end := lineEnd(s.lines, s.text, line)
	next := lineNext(s.lines, s.text, line)
	return s.text[start:end], s.text[end:next]
}

// RevisionID returns the revision the snapshot was taken at.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}

// Language returns the language id the buffer had when the snapshot was taken.
func (s *Snapshot) Language() string {
	return s.language
}
