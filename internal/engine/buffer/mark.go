package buffer

// Names of the marks every buffer carries.
const (
	MarkInsert         = "insert"
	MarkSelectionBound = "selection_bound"
)

// mark is a named position that follows edits made before it.
type mark struct {
	offset ByteOffset

	// leftGravity keeps the mark in place when text is inserted exactly
	// at its offset; otherwise the mark moves to the end of the insert.
	leftGravity bool
}

// transformInsert updates an offset after text of length n is inserted at at.
func transformInsert(offset, at, n ByteOffset, leftGravity bool) ByteOffset {
	if at < offset {
		return offset + n
	}
	if at == offset && !leftGravity {
		return offset + n
	}
	return offset
}

// transformDelete updates an offset after [start, end) is removed.
func transformDelete(offset, start, end ByteOffset) ByteOffset {
	if end <= offset {
		return offset - (end - start)
	}
	if start < offset {
		// Deleted region spans the offset: collapse onto the start.
		return start
	}
	return offset
}

// CreateMark places a named mark at offset, replacing an existing mark
// of the same name.
func (b *Buffer) CreateMark(name string, offset ByteOffset, leftGravity bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if offset < 0 || offset > ByteOffset(len(b.text)) {
		return ErrOffsetOutOfRange
	}
	b.marks[name] = &mark{offset: offset, leftGravity: leftGravity}
	return nil
}

// MoveMark moves an existing mark.
func (b *Buffer) MoveMark(name string, offset ByteOffset) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	m, ok := b.marks[name]
	if !ok {
		return ErrMarkNotFound
	}
	if offset < 0 || offset > ByteOffset(len(b.text)) {
		return ErrOffsetOutOfRange
	}
	m.offset = offset
	return nil
}

// MarkOffset returns the current offset of a named mark.
func (b *Buffer) MarkOffset(name string) (ByteOffset, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	m, ok := b.marks[name]
	if !ok {
		return 0, false
	}
	return m.offset, true
}

// DeleteMark removes a named mark. The insert and selection_bound marks
// cannot be deleted.
func (b *Buffer) DeleteMark(name string) error {
	if name == MarkInsert || name == MarkSelectionBound {
		return ErrMarkReserved
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.marks[name]; !ok {
		return ErrMarkNotFound
	}
	delete(b.marks, name)
	return nil
}

// shiftMarksInsert must be called with the write lock held.
func (b *Buffer) shiftMarksInsert(at, n ByteOffset) {
	for _, m := range b.marks {
		m.offset = transformInsert(m.offset, at, n, m.leftGravity)
	}
}

// shiftMarksDelete must be called with the write lock held.
func (b *Buffer) shiftMarksDelete(start, end ByteOffset) {
	for _, m := range b.marks {
		m.offset = transformDelete(m.offset, start, end)
	}
}
