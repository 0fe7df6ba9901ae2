package textops

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOptions configures SortLines.
type SortOptions struct {
	IgnoreCase       bool
	Reverse          bool
	RemoveDuplicates bool

	// StartColumn is the rune index lines are compared from. Lines shorter
	// than it compare as empty.
	StartColumn int

	// Language selects the collation when Compare is nil.
	Language language.Tag

	// Compare overrides the collator. It receives the compared suffixes.
	Compare func(a, b string) int
}

func (o SortOptions) comparator() func(a, b string) int {
	if o.Compare != nil {
		if !o.IgnoreCase {
			return o.Compare
		}
		return func(a, b string) int {
			return o.Compare(strings.ToLower(a), strings.ToLower(b))
		}
	}

	var opts []collate.Option
	if o.IgnoreCase {
		opts = append(opts, collate.IgnoreCase)
	}
	c := collate.New(o.Language, opts...)
	return c.CompareString
}

// SortLines sorts the selected lines, or the whole buffer when nothing is
// selected. Terminators stay in place: the i-th line of the result gets
// the terminator the i-th line of the range had.
func SortLines(b Buffer, opts SortOptions) error {
	first, last := uint32(0), b.LineCount()-1
	if _, _, ok := b.SelectionBounds(); ok {
		first, last = lineRange(b)
	} else if last > 0 && b.LineStartOffset(last) == b.Len() {
		// The empty line after a final terminator is not part of the sort.
		last--
	}
	if first == last {
		return nil
	}

	var lines, terms []string
	for line := first; line <= last; line++ {
		start := b.LineStartOffset(line)
		end := b.LineEndOffset(line)
		lines = append(lines, b.TextRange(start, end))
		terms = append(terms, b.TextRange(end, b.NextLineOffset(line)))
	}

	cmp := opts.comparator()
	key := func(s string) string { return fromColumn(s, opts.StartColumn) }
	sorted := slices.Clone(lines)
	slices.SortStableFunc(sorted, func(a, b string) int {
		r := cmp(key(a), key(b))
		if opts.Reverse {
			return -r
		}
		return r
	})

	if opts.RemoveDuplicates {
		sorted = slices.CompactFunc(sorted, func(a, b string) bool {
			return cmp(key(a), key(b)) == 0
		})
	}

	// Dropped duplicates leave terminators over; the last one is kept so
	// the range still ends the way it did.
	if len(sorted) < len(terms) {
		terms = append(terms[:len(sorted)-1], terms[len(terms)-1])
	}

	var sb strings.Builder
	for i, l := range sorted {
		sb.WriteString(l)
		sb.WriteString(terms[i])
	}
	text := sb.String()

	start := b.LineStartOffset(first)
	end := b.NextLineOffset(last)
	if text == b.TextRange(start, end) {
		return nil
	}

	b.BeginNamedAction("sort-lines")
	defer b.EndUserAction()

	if err := b.Delete(start, end); err != nil {
		return fmt.Errorf("sort lines: %w", err)
	}
	if _, err := b.Insert(start, text); err != nil {
		return fmt.Errorf("sort lines: %w", err)
	}

	log.Debug("sorted lines", "first", first, "last", last, "kept", len(sorted))
	return nil
}

// fromColumn returns s starting at rune index col.
func fromColumn(s string, col int) string {
	if col <= 0 {
		return s
	}
	for i := range s {
		if col == 0 {
			return s[i:]
		}
		col--
	}
	return ""
}
