package buffer

import "runtime"

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithLanguage sets the language id associated with the buffer.
func WithLanguage(id string) Option {
	return func(b *Buffer) {
		b.language = id
	}
}

// WithText sets the initial content without producing a change
// notification or touching the modified flag.
func WithText(s string) Option {
	return func(b *Buffer) {
		b.text = []byte(s)
		b.lines = nil
	}
}

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "crlf"
	case LineEndingCR:
		return "cr"
	default:
		return "lf"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// ParseLineEnding converts "lf", "crlf" or "cr" to a LineEnding.
func ParseLineEnding(s string) (LineEnding, bool) {
	switch s {
	case "lf", "LF", "\n":
		return LineEndingLF, true
	case "crlf", "CRLF", "\r\n":
		return LineEndingCRLF, true
	case "cr", "CR", "\r":
		return LineEndingCR, true
	}
	return LineEndingLF, false
}

// DefaultLineEnding returns the platform line ending.
func DefaultLineEnding() LineEnding {
	if runtime.GOOS == "windows" {
		return LineEndingCRLF
	}
	return LineEndingLF
}

// DetectLineEnding returns a LineEnding based on the most common line ending in the text.
// Returns LineEndingLF if no line endings are found.
func DetectLineEnding(text string) LineEnding {
	var lfCount, crlfCount, crCount int

	i := 0
	for i < len(text) {
		if i+1 < len(text) && text[i] == '\r' && text[i+1] == '\n' {
			crlfCount++
			i += 2
		} else if text[i] == '\r' {
			crCount++
			i++
		} else if text[i] == '\n' {
			lfCount++
			i++
		} else {
			i++
		}
	}

	if crlfCount >= lfCount && crlfCount >= crCount && crlfCount > 0 {
		return LineEndingCRLF
	}
	if crCount >= lfCount && crCount >= crlfCount && crCount > 0 {
		return LineEndingCR
	}

	return LineEndingLF
}
