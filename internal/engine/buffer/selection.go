package buffer

// Cursor returns the offset of the insert mark.
func (b *Buffer) Cursor() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.marks[MarkInsert].offset
}

// PlaceCursor moves both the insert and selection_bound marks to offset,
// clearing any selection.
func (b *Buffer) PlaceCursor(offset ByteOffset) error {
	return b.SelectRange(offset, offset)
}

// SelectRange sets the selection_bound mark to anchor and the insert mark
// to head.
func (b *Buffer) SelectRange(anchor, head ByteOffset) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := ByteOffset(len(b.text))
	if anchor < 0 || anchor > n || head < 0 || head > n {
		return ErrOffsetOutOfRange
	}
	b.marks[MarkSelectionBound].offset = anchor
	b.marks[MarkInsert].offset = head
	return nil
}

// SelectionBounds returns the ordered selection range. ok is false when
// the selection is empty, in which case start and end equal the cursor.
func (b *Buffer) SelectionBounds() (start, end ByteOffset, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	r := NewRange(b.marks[MarkSelectionBound].offset, b.marks[MarkInsert].offset)
	return r.Start, r.End, !r.IsEmpty()
}
