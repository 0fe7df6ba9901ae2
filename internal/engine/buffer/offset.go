package buffer

import (
	"cmp"
	"fmt"
	"sync/atomic"
)

// ByteOffset indexes the buffer's UTF-8 bytes.
type ByteOffset = int64

// Point is a 0-based line and byte column.
type Point struct {
	Line   uint32
	Column uint32
}

func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare orders points by line, then column.
func (p Point) Compare(other Point) int {
	if c := cmp.Compare(p.Line, other.Line); c != 0 {
		return c
	}
	return cmp.Compare(p.Column, other.Column)
}

// Range is the half-open byte span [Start, End).
type Range struct {
	Start ByteOffset
	End   ByteOffset
}

// NewRange orders start and end.
func NewRange(start, end ByteOffset) Range {
	return Range{Start: min(start, end), End: max(start, end)}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len is the span in bytes.
func (r Range) Len() ByteOffset { return r.End - r.Start }

// IsEmpty reports whether the range covers no bytes.
func (r Range) IsEmpty() bool { return r.Start == r.End }

// Contains reports whether offset falls inside the range.
func (r Range) Contains(offset ByteOffset) bool {
	return r.Start <= offset && offset < r.End
}

// RevisionID identifies a buffer state. Every committed change gets a
// new one.
type RevisionID uint64

var lastRevision atomic.Uint64

// NewRevisionID returns a process-wide unique revision.
func NewRevisionID() RevisionID {
	return RevisionID(lastRevision.Add(1))
}
