package textops

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseMode selects a case transform.
type CaseMode uint8

const (
	CaseUpper CaseMode = iota
	CaseLower
	CaseInvert
	CaseTitle
)

// String returns the mode name.
func (m CaseMode) String() string {
	switch m {
	case CaseUpper:
		return "upper"
	case CaseLower:
		return "lower"
	case CaseInvert:
		return "invert"
	case CaseTitle:
		return "title"
	default:
		return "unknown"
	}
}

// ParseCaseMode converts a mode name to a CaseMode.
func ParseCaseMode(s string) (CaseMode, error) {
	switch strings.ToLower(s) {
	case "upper":
		return CaseUpper, nil
	case "lower":
		return CaseLower, nil
	case "invert", "toggle":
		return CaseInvert, nil
	case "title":
		return CaseTitle, nil
	}
	return 0, fmt.Errorf("unknown case mode %q", s)
}

// ChangeCase rewrites the selected text in the given case. An empty
// selection is a no-op. The selection is kept over the new text.
func ChangeCase(b Buffer, mode CaseMode, tag language.Tag) error {
	start, end, ok := b.SelectionBounds()
	if !ok {
		return nil
	}

	old := b.TextRange(start, end)
	text := ConvertCase(old, mode, tag)
	if text == old {
		return nil
	}

	backward := b.Cursor() < end

	b.BeginNamedAction("change-case")
	defer b.EndUserAction()

	if err := b.Delete(start, end); err != nil {
		return fmt.Errorf("change case: %w", err)
	}
	newEnd, err := b.Insert(start, text)
	if err != nil {
		return fmt.Errorf("change case: %w", err)
	}

	if backward {
		return b.SelectRange(newEnd, start)
	}
	return b.SelectRange(start, newEnd)
}

// ConvertCase applies mode to s.
func ConvertCase(s string, mode CaseMode, tag language.Tag) string {
	switch mode {
	case CaseUpper:
		return cases.Upper(tag).String(s)
	case CaseLower:
		return cases.Lower(tag).String(s)
	case CaseInvert:
		return invertCase(s)
	case CaseTitle:
		return titleCase(s, tag)
	}
	return s
}

func invertCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r), unicode.IsTitle(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}

// titleCase upper-cases the first letter of every whitespace-delimited
// word and lower-cases the rest of the word. Characters before the first
// letter are kept as is.
func titleCase(s string, tag language.Tag) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for len(s) > 0 {
		i := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
		if i < 0 {
			sb.WriteString(s)
			break
		}
		sb.WriteString(s[:i])
		s = s[i:]

		j := strings.IndexFunc(s, unicode.IsSpace)
		if j < 0 {
			j = len(s)
		}
		sb.WriteString(titleWord(s[:j], tag))
		s = s[j:]
	}
	return sb.String()
}

func titleWord(word string, tag language.Tag) string {
	rest := word
	state := -1
	var cluster string
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if strings.IndexFunc(cluster, unicode.IsLetter) >= 0 {
			head := word[:len(word)-len(rest)-len(cluster)]
			return head + cases.Title(tag).String(cluster) + cases.Lower(tag).String(rest)
		}
	}
	return word
}
