// Package docinfo computes document statistics.
package docinfo

import (
	"unicode"
	"unicode/utf8"

	"github.com/dshills/inkwell/internal/engine/buffer"
	"github.com/rivo/uniseg"
)

// Stats are counts over a piece of text.
type Stats struct {
	Lines         int `json:"lines"`
	Words         int `json:"words"`
	Chars         int `json:"chars"`
	NonSpaceChars int `json:"non_space_chars"`
	Bytes         int `json:"bytes"`
}

// Source is the buffer surface docinfo reads.
type Source interface {
	Text() string
	TextRange(start, end buffer.ByteOffset) string
	SelectionBounds() (start, end buffer.ByteOffset, ok bool)
}

// Document returns statistics for the whole text of src.
func Document(src Source) Stats {
	return Count(src.Text())
}

// Selection returns statistics for the selected text of src. ok is false
// when nothing is selected.
func Selection(src Source) (Stats, bool) {
	start, end, ok := src.SelectionBounds()
	if !ok {
		return Stats{}, false
	}
	return Count(src.TextRange(start, end)), true
}

// Count computes statistics for text. Empty text has no lines.
func Count(text string) Stats {
	s := Stats{Bytes: len(text)}
	if text == "" {
		return s
	}

	s.Lines = 1
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			s.Lines++
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			s.Lines++
		}
	}

	for _, r := range text {
		s.Chars++
		if !unicode.IsSpace(r) {
			s.NonSpaceChars++
		}
	}

	state := -1
	for rest := text; rest != ""; {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if isWord(word) {
			s.Words++
		}
	}

	return s
}

// isWord reports whether a segment holds a letter or digit.
func isWord(seg string) bool {
	for len(seg) > 0 {
		r, size := utf8.DecodeRuneInString(seg)
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
		seg = seg[size:]
	}
	return false
}
