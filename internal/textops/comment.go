package textops

import (
	"fmt"
	"strings"

	"github.com/dshills/inkwell/internal/engine/buffer"
)

// DefaultCommentMarker is used when a language has no line comment.
const DefaultCommentMarker = "//"

const commentEndMark = "textops.comment-end"

// ToggleComment adds marker at column 0 of every line in the selection, or
// of the cursor line, unless the first line already starts with marker, in
// which case the marker is removed from every line that starts with it.
func ToggleComment(b Buffer, marker string) error {
	if marker == "" {
		return nil
	}

	first, last := lineRange(b)
	remove := strings.HasPrefix(lineContent(b, first), marker)

	b.BeginNamedAction("toggle-comment")
	defer b.EndUserAction()

	// The mark sits at the start of the last line and keeps that position
	// while earlier lines grow or shrink.
	if err := b.CreateMark(commentEndMark, b.LineStartOffset(last), true); err != nil {
		return fmt.Errorf("toggle comment: %w", err)
	}
	defer b.DeleteMark(commentEndMark)

	n := buffer.ByteOffset(len(marker))
	for line := first; ; line++ {
		start := b.LineStartOffset(line)
		switch {
		case !remove:
			if _, err := b.Insert(start, marker); err != nil {
				return fmt.Errorf("comment line %d: %w", line, err)
			}
		case strings.HasPrefix(lineContent(b, line), marker):
			if err := b.Delete(start, start+n); err != nil {
				return fmt.Errorf("uncomment line %d: %w", line, err)
			}
		}

		end, _ := b.MarkOffset(commentEndMark)
		if start >= end || line+1 >= b.LineCount() {
			break
		}
	}

	log.Debug("toggled comment", "marker", marker, "remove", remove, "first", first, "last", last)
	return nil
}

func lineContent(b Buffer, line uint32) string {
	return b.TextRange(b.LineStartOffset(line), b.LineEndOffset(line))
}
