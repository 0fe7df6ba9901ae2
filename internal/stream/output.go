package stream

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/dshills/inkwell/internal/engine/buffer"
	"github.com/tliron/commonlog"
)

// MaxUnicharLen bounds the carry-over: a remainder this long or longer can
// never become valid and is rejected.
const MaxUnicharLen = 6

var log = commonlog.GetLogger("inkwell.stream")

// OutputStream decodes a UTF-8 byte stream into a Target.
//
// The first write opens a user action on the target; Close trims the
// trailing newline (when enabled), clears the modified flag and ends the
// action. An OutputStream is not safe for concurrent use.
type OutputStream struct {
	target Target

	carry []byte
	pos   buffer.ByteOffset
	read  int64

	trim    bool
	trimmed bool

	initialized bool
	closed      bool
}

// OutputOption configures an OutputStream.
type OutputOption func(*OutputStream)

// WithTrimTrailingNewline controls whether Close removes one trailing
// newline. Enabled by default.
func WithTrimTrailingNewline(trim bool) OutputOption {
	return func(s *OutputStream) {
		s.trim = trim
	}
}

// NewOutputStream creates a decoder writing into target, starting at
// offset 0.
func NewOutputStream(target Target, opts ...OutputOption) *OutputStream {
	s := &OutputStream{
		target: target,
		trim:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Write implements io.Writer.
func (s *OutputStream) Write(p []byte) (int, error) {
	return s.WriteContext(context.Background(), p)
}

// WriteContext decodes p and inserts every confirmed character. An
// incomplete trailing character, or a trailing "\r" that may be the first
// half of "\r\n", is held back until the next write. On success the full
// length of p is reported as written.
func (s *OutputStream) WriteContext(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	if s.closed {
		return 0, ErrStreamClosed
	}

	if !s.initialized {
		s.target.BeginUserAction()
		s.pos = 0
		s.initialized = true
	}

	input := p
	if len(s.carry) > 0 {
		input = make([]byte, 0, len(s.carry)+len(p))
		input = append(input, s.carry...)
		input = append(input, p...)
	}

	n := validPrefix(input)
	var hold []byte

	if n == len(input) {
		if n > 1 && input[n-1] == '\r' {
			n--
			hold = input[n:]
		}
	} else {
		rem := input[n:]
		if len(rem) >= MaxUnicharLen || utf8.FullRune(rem) {
			end := min(len(rem), MaxUnicharLen)
			return 0, &DecodeError{
				Offset: s.read - int64(len(s.carry)) + int64(n),
				Bytes:  append([]byte(nil), rem[:end]...),
				Err:    ErrInvalidUTF8,
			}
		}
		hold = rem
	}

	if n > 0 {
		end, err := s.target.Insert(s.pos, string(input[:n]))
		if err != nil {
			return 0, fmt.Errorf("insert decoded text: %w", err)
		}
		s.pos = end
	}

	s.carry = append(s.carry[:0:0], hold...)
	s.read += int64(len(p))
	return len(p), nil
}

// Flush pushes held-back bytes through the decoder. A held "\r" is
// inserted; an incomplete character stays held.
func (s *OutputStream) Flush(ctx context.Context) error {
	if s.closed || !s.initialized || len(s.carry) == 0 {
		return nil
	}
	_, err := s.WriteContext(ctx, nil)
	return err
}

// Close finishes the stream: it trims the trailing newline when enabled,
// clears the modified flag, puts the cursor at the start of the target
// and ends the user action. It returns a *DecodeError wrapping
// ErrIncompleteSequence when bytes are still held back.
//
// A stream that was never written to is left open, so a later Write
// still starts the load. Closing twice is a no-op.
func (s *OutputStream) Close() error {
	if !s.initialized || s.closed {
		return nil
	}
	s.closed = true

	var trimErr error
	if s.trim {
		trimErr = s.trimTrailingNewline()
	}
	s.target.SetModified(false)
	placeErr := s.target.PlaceCursor(0)
	s.target.EndUserAction()

	if trimErr != nil {
		return trimErr
	}
	if len(s.carry) > 0 {
		return &DecodeError{
			Offset: s.read - int64(len(s.carry)),
			Bytes:  append([]byte(nil), s.carry...),
			Err:    ErrIncompleteSequence,
		}
	}
	if placeErr != nil {
		return fmt.Errorf("place cursor: %w", placeErr)
	}
	return nil
}

// abort ends the user action without trimming. Used when a load fails.
func (s *OutputStream) abort() {
	if s.initialized && !s.closed {
		s.target.EndUserAction()
	}
	s.closed = true
}

// TrimmedTrailingNewline reports whether Close removed a trailing newline.
func (s *OutputStream) TrimmedTrailingNewline() bool {
	return s.trimmed
}

// DetectNewline reports the terminator of the target's first line, or the
// platform default when the target has a single line.
func (s *OutputStream) DetectNewline() buffer.LineEnding {
	if s.target.LineCount() < 2 {
		return buffer.DefaultLineEnding()
	}
	switch s.target.TextRange(s.target.LineEndOffset(0), s.target.NextLineOffset(0)) {
	case "\r\n":
		return buffer.LineEndingCRLF
	case "\r":
		return buffer.LineEndingCR
	default:
		return buffer.LineEndingLF
	}
}

func (s *OutputStream) trimTrailingNewline() error {
	count := s.target.LineCount()
	if count < 2 {
		return nil
	}
	last := count - 1
	if s.target.LineStartOffset(last) != s.target.Len() {
		return nil
	}

	start := s.target.LineEndOffset(last - 1)
	if err := s.target.Delete(start, s.target.Len()); err != nil {
		return fmt.Errorf("trim trailing newline: %w", err)
	}
	s.trimmed = true
	log.Debug("trimmed trailing newline", "offset", start)
	return nil
}

// validPrefix returns the length of the longest valid UTF-8 prefix of p.
func validPrefix(p []byte) int {
	i := 0
	for i < len(p) {
		if p[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		i += size
	}
	return i
}
