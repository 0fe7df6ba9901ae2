package textops

import (
	"fmt"

	"github.com/dshills/inkwell/internal/engine/buffer"
)

// StripTrailingWhitespace removes spaces and tabs before every line
// terminator and at the end of the buffer. Lines without trailing
// whitespace are not touched.
func StripTrailingWhitespace(b Buffer) error {
	b.BeginNamedAction("strip-trailing-whitespace")
	defer b.EndUserAction()

	removed := 0
	count := b.LineCount()
	for line := uint32(0); line < count; line++ {
		start := b.LineStartOffset(line)
		text := b.TextRange(start, b.NextLineOffset(line))

		runStart, runEnd := trailingRun(text)
		if runStart < 0 {
			continue
		}
		if err := b.Delete(start+buffer.ByteOffset(runStart), start+buffer.ByteOffset(runEnd)); err != nil {
			return fmt.Errorf("strip line %d: %w", line, err)
		}
		removed++
	}

	if removed > 0 {
		log.Debug("stripped trailing whitespace", "lines", removed)
	}
	return nil
}

// trailingRun scans one line, terminator included, and returns the byte
// range of the space/tab run that reaches the terminator, or -1.
func trailingRun(line string) (int, int) {
	run := -1
	i := 0
	for ; i < len(line); i++ {
		c := line[i]
		if c == '\r' || c == '\n' {
			break
		}
		if c == ' ' || c == '\t' {
			if run < 0 {
				run = i
			}
			continue
		}
		run = -1
	}
	if run < 0 {
		return -1, -1
	}
	return run, i
}
