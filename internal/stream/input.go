package stream

import (
	"io"

	"github.com/dshills/inkwell/internal/engine/buffer"
)

// InputStream is an io.Reader over a Source that terminates every line
// except the last with a fixed newline sequence, whatever terminator the
// buffer holds.
type InputStream struct {
	src     Source
	newline string
	addEOL  bool

	line    uint32
	count   uint32
	pending []byte
	done    bool
}

// NewInputStream creates a reader over src. When addTrailingNewline is set
// and src is non-empty, one newline follows the last line.
func NewInputStream(src Source, newline buffer.LineEnding, addTrailingNewline bool) *InputStream {
	return &InputStream{
		src:     src,
		newline: newline.Sequence(),
		addEOL:  addTrailingNewline,
		count:   src.LineCount(),
	}
}

// Read implements io.Reader.
func (s *InputStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n := 0
	for n < len(p) {
		if len(s.pending) == 0 && !s.fill() {
			break
		}
		c := copy(p[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// fill loads the next line into pending. It returns false at the end.
func (s *InputStream) fill() bool {
	if s.done {
		return false
	}

	if s.line >= s.count {
		s.done = true
		if s.addEOL && s.src.Len() > 0 {
			s.pending = []byte(s.newline)
			return true
		}
		return false
	}

	text := s.src.LineText(s.line)
	s.line++
	if s.line < s.count {
		text += s.newline
	}
	s.pending = []byte(text)
	return true
}
