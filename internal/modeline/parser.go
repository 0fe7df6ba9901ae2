// Package modeline reads vim, emacs and kate modelines.
//
// Recognized forms:
//
//	vim:   [text]{white}{vi:|vim:|ex:}[white]{options}
//	       [text]{white}{vi:|vim:|ex:}[white]se[t] {options}:[text]
//	emacs: -*- key1: value1; key2: value2 -*-
//	kate:  kate: key1 value1; key2 value2;
//
// Vim modelines are honored on the first and last 3 lines, emacs modelines
// on the first 2 and kate modelines on the first and last 10. Lines
// between the first 10 and the last 10 are never read.
package modeline

import (
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("inkwell.modeline")

// scanLines is the number of lines read at each end of a document.
const scanLines = 10

// Source provides document lines.
type Source interface {
	LineCount() uint32
	LineText(line uint32) string
}

// Parser extracts Options from documents.
type Parser struct {
	mappings *Mappings
}

// NewParser creates a parser. A nil mappings uses DefaultMappings.
func NewParser(mappings *Mappings) *Parser {
	if mappings == nil {
		mappings = DefaultMappings()
	}
	return &Parser{mappings: mappings}
}

// Scan reads the modelines of src.
func (p *Parser) Scan(src Source) Options {
	var o Options

	count := int(src.LineCount())
	head := min(count, scanLines)
	for line := 0; line < head; line++ {
		p.parseLine(src.LineText(uint32(line)), line+1, count, &o)
	}

	tail := max(head, count-scanLines)
	for line := tail; line < count; line++ {
		p.parseLine(src.LineText(uint32(line)), line+1, count, &o)
	}

	if o.Set != 0 {
		log.Debug("modeline options", "language", o.Language, "set", int(o.Set))
	}
	return o
}

// parseLine applies one line, numbered from 1 in a document of count
// lines, to o.
func (p *Parser) parseLine(s string, line, count int, o *Options) {
	for i := 0; i < len(s); i++ {
		if i > 0 && !isSpace(s[i-1]) {
			continue
		}

		rest := s[i:]
		switch {
		case (line <= 3 || line > count-3) && hasAnyPrefix(rest, "ex:", "vi:", "vim:"):
			colon := strings.IndexByte(rest, ':')
			i += colon + 1 + p.parseVim(rest[colon+1:], o)
		case line <= 2 && strings.HasPrefix(rest, "-*-"):
			i += 3 + p.parseEmacs(rest[3:], o)
		case (line <= scanLines || line > count-scanLines) && strings.HasPrefix(rest, "kate:"):
			i += 5 + p.parseKate(rest[5:], o)
		}
	}
}

func (p *Parser) parseVim(s string, o *Options) int {
	inSet := false
	i := 0

	for i < len(s) && !(inSet && s[i] == ':') {
		for i < len(s) && (s[i] == ':' || isSpace(s[i])) {
			i++
		}
		if i >= len(s) {
			break
		}

		if hasAnyPrefix(s[i:], "set ", "se ") {
			i += strings.IndexByte(s[i:], ' ') + 1
			inSet = true
		}

		neg := false
		if strings.HasPrefix(s[i:], "no") {
			neg = true
			i += 2
		}

		start := i
		for i < len(s) && s[i] != ':' && s[i] != '=' && !isSpace(s[i]) {
			i++
		}
		key := s[start:i]

		var value string
		if i < len(s) && s[i] == '=' {
			i++
			start = i
			for i < len(s) && s[i] != ':' && !isSpace(s[i]) {
				i++
			}
			value = s[start:i]
		}

		switch key {
		case "ft", "filetype":
			o.Language = resolve(p.mappings.Vim, value)
			o.Set |= SetLanguage
		case "et", "expandtab":
			o.InsertSpaces = !neg
			o.Set |= SetInsertSpaces
		case "ts", "tabstop":
			if n := atoi(value); n > 0 {
				o.TabWidth = n
				o.Set |= SetTabWidth
			}
		case "sw", "shiftwidth":
			if n := atoi(value); n > 0 {
				o.IndentWidth = n
				o.Set |= SetIndentWidth
			}
		case "wrap":
			o.WrapMode = WrapWord
			if neg {
				o.WrapMode = WrapNone
			}
			o.Set |= SetWrapMode
		case "tw", "textwidth":
			if n := atoi(value); n > 0 {
				o.RightMargin = n
				o.ShowRightMargin = true
				o.Set |= SetRightMargin | SetShowRightMargin
			}
		}
	}

	return i
}

func (p *Parser) parseEmacs(s string, o *Options) int {
	i := 0

	for i < len(s) {
		for i < len(s) && (s[i] == ';' || isSpace(s[i])) {
			i++
		}
		if i >= len(s) || strings.HasPrefix(s[i:], "-*-") {
			break
		}

		start := i
		for i < len(s) && s[i] != ':' && s[i] != ';' && !isSpace(s[i]) {
			i++
		}
		key := s[start:i]

		if i = skipSpaces(s, i); i >= len(s) {
			break
		}
		if s[i] != ':' {
			continue
		}
		i++
		if i = skipSpaces(s, i); i >= len(s) {
			break
		}

		start = i
		for i < len(s) && s[i] != ';' && !isSpace(s[i]) {
			i++
		}
		value := s[start:i]

		switch {
		case strings.EqualFold(key, "mode"):
			o.Language = resolve(p.mappings.Emacs, value)
			o.Set |= SetLanguage
		case key == "tab-width":
			if n := atoi(value); n > 0 {
				o.TabWidth = n
				o.Set |= SetTabWidth
			}
		case key == "indent-offset":
			if n := atoi(value); n > 0 {
				o.IndentWidth = n
				o.Set |= SetIndentWidth
			}
		case key == "indent-tabs-mode":
			o.InsertSpaces = value == "nil"
			o.Set |= SetInsertSpaces
		case key == "autowrap":
			o.WrapMode = WrapNone
			if value != "nil" {
				o.WrapMode = WrapWord
			}
			o.Set |= SetWrapMode
		}
	}

	if i >= len(s) {
		return len(s)
	}
	// Stop inside the closing "-*-".
	return i + 2
}

func (p *Parser) parseKate(s string, o *Options) int {
	i := 0

	for i < len(s) {
		for i < len(s) && (s[i] == ';' || isSpace(s[i])) {
			i++
		}
		if i >= len(s) {
			break
		}

		start := i
		for i < len(s) && s[i] != ';' && !isSpace(s[i]) {
			i++
		}
		key := s[start:i]

		if i = skipSpaces(s, i); i >= len(s) {
			break
		}
		if s[i] == ';' {
			continue
		}

		start = i
		for i < len(s) && s[i] != ';' && !isSpace(s[i]) {
			i++
		}
		value := s[start:i]

		switch key {
		case "hl", "syntax":
			o.Language = resolve(p.mappings.Kate, value)
			o.Set |= SetLanguage
		case "tab-width":
			if n := atoi(value); n > 0 {
				o.TabWidth = n
				o.Set |= SetTabWidth
			}
		case "indent-width":
			if n := atoi(value); n > 0 {
				o.IndentWidth = n
				o.Set |= SetIndentWidth
			}
		case "space-indent":
			o.InsertSpaces = isTrue(value)
			o.Set |= SetInsertSpaces
		case "word-wrap":
			o.WrapMode = WrapNone
			if isTrue(value) {
				o.WrapMode = WrapWord
			}
			o.Set |= SetWrapMode
		case "word-wrap-column":
			if n := atoi(value); n > 0 {
				o.RightMargin = n
				o.ShowRightMargin = true
				o.Set |= SetRightMargin | SetShowRightMargin
			}
		}
	}

	return i
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func skipSpaces(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func isTrue(v string) bool {
	return v == "on" || v == "true" || v == "1"
}

// atoi parses the leading decimal digits of s, ignoring anything after
// them. It returns 0 when s does not start with a digit.
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n > 1<<20 {
			return 0
		}
	}
	return n
}
