package buffer

import "fmt"

// ChangeType categorizes the type of change made to the buffer.
type ChangeType uint8

const (
	ChangeInsert ChangeType = iota // Text was inserted
	ChangeDelete                   // Text was deleted
)

// String returns a string representation of the change type.
func (c ChangeType) String() string {
	switch c {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Change represents a single mutation of the buffer.
type Change struct {
	Type     ChangeType // Type of change
	Range    Range      // Original range that was affected
	NewRange Range      // Resulting range after the change
	OldText  string     // Text that was removed (for delete)
	NewText  string     // Text that was added (for insert)
}

// String returns a human-readable representation of the change.
func (c Change) String() string {
	if c.Type == ChangeInsert {
		return fmt.Sprintf("Insert(%d, %q)", c.Range.Start, c.NewText)
	}
	return fmt.Sprintf("Delete%s %q", c.Range.String(), c.OldText)
}

// Delta returns the change in buffer length caused by this change.
func (c Change) Delta() ByteOffset {
	return ByteOffset(len(c.NewText)) - c.Range.Len()
}

// ChangeSet groups the changes made inside one user action.
// Changes are listed in the order they were applied.
type ChangeSet struct {
	Action   string
	Changes  []Change
	Revision RevisionID
}

// Delta returns the total change in buffer length.
func (cs ChangeSet) Delta() ByteOffset {
	var total ByteOffset
	for _, c := range cs.Changes {
		total += c.Delta()
	}
	return total
}

// Listener receives change notifications. It is called after the
// buffer lock is released, so it may read the buffer freely.
type Listener func(ChangeSet)

// ListenerID identifies a registered listener.
type ListenerID uint64
