package buffer

import "sort"

// lineIndex holds the start offset of every line. A line ends at "\n",
// "\r\n" or a lone "\r"; the final line has no terminator.
type lineIndex []ByteOffset

// computeLineIndex scans text for line terminators.
func computeLineIndex(text []byte) lineIndex {
	idx := make(lineIndex, 1, 1+len(text)/32)
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			idx = append(idx, ByteOffset(i+1))
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			idx = append(idx, ByteOffset(i+1))
		}
	}
	return idx
}

// count returns the number of lines (always at least 1).
func (idx lineIndex) count() uint32 {
	return uint32(len(idx))
}

// clamp limits line to the last valid line.
func (idx lineIndex) clamp(line uint32) uint32 {
	if line >= uint32(len(idx)) {
		return uint32(len(idx) - 1)
	}
	return line
}

// start returns the offset at which line begins.
func (idx lineIndex) start(line uint32) ByteOffset {
	return idx[idx.clamp(line)]
}

// lineEnd returns the offset just before the line's terminator.
func lineEnd[T ~string | ~[]byte](idx lineIndex, text T, line uint32) ByteOffset {
	line = idx.clamp(line)
	if int(line) == len(idx)-1 {
		return ByteOffset(len(text))
	}
	next := idx[line+1]
	if next >= 2 && text[next-2] == '\r' && text[next-1] == '\n' {
		return next - 2
	}
	return next - 1
}

// lineNext returns the offset where the following line starts, or the text
// length for the last line.
func lineNext[T ~string | ~[]byte](idx lineIndex, text T, line uint32) ByteOffset {
	line = idx.clamp(line)
	if int(line) == len(idx)-1 {
		return ByteOffset(len(text))
	}
	return idx[line+1]
}

// lineAt returns the line containing offset.
func (idx lineIndex) lineAt(offset ByteOffset) uint32 {
	// First line start greater than offset, minus one.
	i := sort.Search(len(idx), func(i int) bool { return idx[i] > offset })
	if i == 0 {
		return 0
	}
	return uint32(i - 1)
}
