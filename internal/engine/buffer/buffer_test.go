package buffer

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}

	if b.Len() != 0 {
		t.Errorf("expected length 0, got %d", b.Len())
	}

	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}

	if b.Modified() {
		t.Error("new buffer should not be modified")
	}
}

func TestNewBufferFromString(t *testing.T) {
	text := "Hello, World!"
	b := NewBufferFromString(text, WithLanguage("go"))

	if b.Text() != text {
		t.Errorf("expected %q, got %q", text, b.Text())
	}

	if b.Len() != int64(len(text)) {
		t.Errorf("expected length %d, got %d", len(text), b.Len())
	}

	if b.Language() != "go" {
		t.Errorf("expected language go, got %q", b.Language())
	}

	if b.Modified() {
		t.Error("initial text should not set the modified flag")
	}
}

func TestBufferLines(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines []string
	}{
		{"empty", "", []string{""}},
		{"single", "abc", []string{"abc"}},
		{"lf", "a\nb\nc", []string{"a", "b", "c"}},
		{"trailing lf", "a\nb\n", []string{"a", "b", ""}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b", ""}},
		{"lone cr", "a\rb", []string{"a", "b"}},
		{"mixed", "a\nb\r\nc\rd", []string{"a", "b", "c", "d"}},
		{"cr lf reversed", "a\n\rb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.text)
			if got := b.LineCount(); got != uint32(len(tt.lines)) {
				t.Fatalf("LineCount() = %d, want %d", got, len(tt.lines))
			}
			for i, want := range tt.lines {
				if got := b.LineText(uint32(i)); got != want {
					t.Errorf("LineText(%d) = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestBufferLineOffsets(t *testing.T) {
	b := NewBufferFromString("ab\r\ncd\nef")

	tests := []struct {
		line              uint32
		start, end, after ByteOffset
	}{
		{0, 0, 2, 4},
		{1, 4, 6, 7},
		{2, 7, 9, 9},
		{9, 7, 9, 9}, // clamps to last line
	}

	for _, tt := range tests {
		if got := b.LineStartOffset(tt.line); got != tt.start {
			t.Errorf("LineStartOffset(%d) = %d, want %d", tt.line, got, tt.start)
		}
		if got := b.LineEndOffset(tt.line); got != tt.end {
			t.Errorf("LineEndOffset(%d) = %d, want %d", tt.line, got, tt.end)
		}
		if got := b.NextLineOffset(tt.line); got != tt.after {
			t.Errorf("NextLineOffset(%d) = %d, want %d", tt.line, got, tt.after)
		}
	}
}

func TestBufferInsert(t *testing.T) {
	b := NewBufferFromString("Hello World")

	end, err := b.Insert(5, ",")
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if end != 6 {
		t.Errorf("expected end position 6, got %d", end)
	}

	if b.Text() != "Hello, World" {
		t.Errorf("expected 'Hello, World', got %q", b.Text())
	}

	if !b.Modified() {
		t.Error("insert should set the modified flag")
	}
}

func TestBufferInsertOutOfRange(t *testing.T) {
	b := NewBufferFromString("Hello")

	_, err := b.Insert(100, "X")
	if !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}

	_, err = b.Insert(-1, "X")
	if !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}
}

func TestBufferInsertKeepsLineEndings(t *testing.T) {
	b := NewBufferFromString("line1\r\nline2")

	b.Insert(b.Len(), "\nline3")
	expected := "line1\r\nline2\nline3"
	if b.Text() != expected {
		t.Errorf("expected %q, got %q", expected, b.Text())
	}
	if b.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", b.LineCount())
	}
}

func TestBufferAppendReusesStorage(t *testing.T) {
	b := NewBuffer()
	chunk := strings.Repeat("0123456789abcde\n", 4)

	reallocs := 0
	var base *byte
	for i := 0; i < 4096; i++ {
		if _, err := b.Insert(b.Len(), chunk); err != nil {
			t.Fatal(err)
		}
		if p := &b.text[0]; p != base {
			reallocs++
			base = p
		}
	}

	if b.Len() != ByteOffset(4096*len(chunk)) {
		t.Fatalf("expected %d bytes, got %d", 4096*len(chunk), b.Len())
	}
	// Amortized growth reallocates a logarithmic number of times.
	if reallocs > 64 {
		t.Errorf("appending 4096 chunks reallocated %d times", reallocs)
	}
	if b.LineCount() != 4096*4+1 {
		t.Errorf("expected %d lines, got %d", 4096*4+1, b.LineCount())
	}
}

func TestBufferInsertMiddleAfterGrowth(t *testing.T) {
	b := NewBuffer()
	b.Insert(0, "ad")
	snap := b.Snapshot()

	b.Insert(1, "bc")
	b.Insert(b.Len(), "ef")
	b.Insert(0, "_")

	if b.Text() != "_abcdef" {
		t.Errorf("got %q", b.Text())
	}
	if snap.Text() != "ad" {
		t.Errorf("snapshot changed to %q", snap.Text())
	}
}

func TestBufferDelete(t *testing.T) {
	b := NewBufferFromString("Hello, World!")

	err := b.Delete(5, 7)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if b.Text() != "HelloWorld!" {
		t.Errorf("expected 'HelloWorld!', got %q", b.Text())
	}
}

func TestBufferDeleteInvalidRange(t *testing.T) {
	b := NewBufferFromString("Hello")

	err := b.Delete(3, 2)
	if !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("expected ErrRangeInvalid, got %v", err)
	}

	err = b.Delete(0, 100)
	if !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("expected ErrRangeInvalid, got %v", err)
	}
}

func TestBufferReplace(t *testing.T) {
	b := NewBufferFromString("Hello World")

	var sets []ChangeSet
	b.Subscribe(func(cs ChangeSet) { sets = append(sets, cs) })

	end, err := b.Replace(6, 11, "Go")
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	if end != 8 {
		t.Errorf("expected end position 8, got %d", end)
	}

	if b.Text() != "Hello Go" {
		t.Errorf("expected 'Hello Go', got %q", b.Text())
	}

	if len(sets) != 1 || len(sets[0].Changes) != 2 {
		t.Fatalf("expected one change set with two changes, got %+v", sets)
	}
	if sets[0].Delta() != -3 {
		t.Errorf("expected delta -3, got %d", sets[0].Delta())
	}
}

func TestBufferSetText(t *testing.T) {
	b := NewBufferFromString("old")
	if err := b.SetText("new text"); err != nil {
		t.Fatalf("SetText failed: %v", err)
	}
	if b.Text() != "new text" {
		t.Errorf("expected 'new text', got %q", b.Text())
	}
}

func TestBufferTextRange(t *testing.T) {
	b := NewBufferFromString("Hello World")

	tests := []struct {
		start, end ByteOffset
		want       string
	}{
		{0, 5, "Hello"},
		{6, 11, "World"},
		{6, 100, "World"},
		{-3, 2, "He"},
		{5, 5, ""},
		{7, 3, ""},
	}

	for _, tt := range tests {
		if got := b.TextRange(tt.start, tt.end); got != tt.want {
			t.Errorf("TextRange(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestBufferOffsetToPoint(t *testing.T) {
	b := NewBufferFromString("ab\r\ncd\ref")

	tests := []struct {
		offset ByteOffset
		want   Point
	}{
		{0, Point{0, 0}},
		{2, Point{0, 2}},
		{3, Point{0, 3}},
		{4, Point{1, 0}},
		{7, Point{2, 0}},
		{9, Point{2, 2}},
		{50, Point{2, 2}},
	}

	for _, tt := range tests {
		if got := b.OffsetToPoint(tt.offset); got != tt.want {
			t.Errorf("OffsetToPoint(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestBufferPointToOffset(t *testing.T) {
	b := NewBufferFromString("ab\r\ncd\ref")

	tests := []struct {
		p    Point
		want ByteOffset
	}{
		{Point{0, 0}, 0},
		{Point{0, 9}, 2},
		{Point{1, 1}, 5},
		{Point{2, 1}, 8},
		{Point{7, 0}, 7},
	}

	for _, tt := range tests {
		if got := b.PointToOffset(tt.p); got != tt.want {
			t.Errorf("PointToOffset(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestBufferCharMotion(t *testing.T) {
	b := NewBufferFromString("é\r\nx")

	if got := b.ForwardChar(0); got != 2 {
		t.Errorf("ForwardChar(0) = %d, want 2", got)
	}
	if got := b.ForwardChar(2); got != 4 {
		t.Errorf("ForwardChar(2) = %d, want 4 (CRLF is one character)", got)
	}
	if got := b.ForwardChar(5); got != 5 {
		t.Errorf("ForwardChar(5) = %d, want 5", got)
	}
	if got := b.BackwardChar(4); got != 2 {
		t.Errorf("BackwardChar(4) = %d, want 2", got)
	}
	if got := b.BackwardChar(2); got != 0 {
		t.Errorf("BackwardChar(2) = %d, want 0", got)
	}

	if r, size := b.RuneAt(0); r != 'é' || size != 2 {
		t.Errorf("RuneAt(0) = %q/%d", r, size)
	}
	if r, size := b.RuneBefore(2); r != 'é' || size != 2 {
		t.Errorf("RuneBefore(2) = %q/%d", r, size)
	}
	if _, ok := b.ByteAt(5); ok {
		t.Error("ByteAt past end should fail")
	}
}

func TestBufferSnapshot(t *testing.T) {
	b := NewBufferFromString("one\r\ntwo")
	snap := b.Snapshot()

	b.Insert(0, "zero\n")

	if snap.Text() != "one\r\ntwo" {
		t.Errorf("snapshot changed: %q", snap.Text())
	}
	if snap.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", snap.LineCount())
	}

	content, term := snap.Line(0)
	if content != "one" || term != "\r\n" {
		t.Errorf("Line(0) = %q, %q", content, term)
	}
	content, term = snap.Line(1)
	if content != "two" || term != "" {
		t.Errorf("Line(1) = %q, %q", content, term)
	}
	if snap.RevisionID() == b.RevisionID() {
		t.Error("snapshot revision should differ after edit")
	}
}

func TestBufferRevisionID(t *testing.T) {
	b := NewBuffer()
	rev1 := b.RevisionID()

	b.Insert(0, "Hello")
	rev2 := b.RevisionID()

	if rev1 == rev2 {
		t.Error("revision ID should change after insert")
	}

	b.Delete(0, 5)
	rev3 := b.RevisionID()

	if rev2 == rev3 {
		t.Error("revision ID should change after delete")
	}
}

func TestBufferSelection(t *testing.T) {
	b := NewBufferFromString("Hello World")

	if _, _, ok := b.SelectionBounds(); ok {
		t.Error("new buffer should have no selection")
	}

	if err := b.SelectRange(8, 2); err != nil {
		t.Fatalf("SelectRange failed: %v", err)
	}
	start, end, ok := b.SelectionBounds()
	if !ok || start != 2 || end != 8 {
		t.Errorf("SelectionBounds() = %d, %d, %v", start, end, ok)
	}
	if b.Cursor() != 2 {
		t.Errorf("cursor should be at head 2, got %d", b.Cursor())
	}

	if err := b.PlaceCursor(4); err != nil {
		t.Fatalf("PlaceCursor failed: %v", err)
	}
	if _, _, ok := b.SelectionBounds(); ok {
		t.Error("PlaceCursor should clear the selection")
	}

	if err := b.SelectRange(0, 99); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}
}

func TestBufferConcurrentReadWrite(t *testing.T) {
	b := NewBufferFromString("Hello")

	var wg sync.WaitGroup

	// Writers
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				b.Insert(0, "X\n")
			}
		}()
	}

	// Readers
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_ = b.Text()
				_ = b.LineCount()
			}
		}()
	}

	wg.Wait()

	text := b.Text()
	if xCount := strings.Count(text, "X"); xCount != 100 {
		t.Errorf("expected 100 X's, got %d", xCount)
	}
	if b.LineCount() != 101 {
		t.Errorf("expected 101 lines, got %d", b.LineCount())
	}
}

func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		text     string
		expected LineEnding
	}{
		{"no newlines", LineEndingLF},
		{"unix\nstyle\n", LineEndingLF},
		{"windows\r\nstyle\r\n", LineEndingCRLF},
		{"old mac\rstyle\r", LineEndingCR},
		{"mixed\r\nmore\nlines", LineEndingCRLF}, // CRLF wins
	}

	for _, tt := range tests {
		got := DetectLineEnding(tt.text)
		if got != tt.expected {
			t.Errorf("DetectLineEnding(%q) = %v, want %v", tt.text, got, tt.expected)
		}
	}
}

func TestParseLineEnding(t *testing.T) {
	tests := []struct {
		in   string
		want LineEnding
		ok   bool
	}{
		{"lf", LineEndingLF, true},
		{"CRLF", LineEndingCRLF, true},
		{"cr", LineEndingCR, true},
		{"dos", LineEndingLF, false},
	}

	for _, tt := range tests {
		got, ok := ParseLineEnding(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLineEnding(%q) = %v, %v", tt.in, got, ok)
		}
		if ok && got.String() != strings.ToLower(tt.in) {
			t.Errorf("String() = %q, want %q", got.String(), strings.ToLower(tt.in))
		}
	}
}

func TestPointCompare(t *testing.T) {
	p1 := Point{Line: 1, Column: 5}
	p2 := Point{Line: 1, Column: 10}
	p3 := Point{Line: 2, Column: 0}

	if p1.Compare(p2) != -1 {
		t.Error("p1 should be before p2")
	}
	if p3.Compare(p2) != 1 {
		t.Error("p3 should be after p2")
	}
	if p1.Compare(p1) != 0 {
		t.Error("point should equal itself")
	}
}

func TestRangeOperations(t *testing.T) {
	r := NewRange(10, 0)
	if r.Start != 0 || r.End != 10 {
		t.Errorf("NewRange should order bounds, got %v", r)
	}
	if !r.Contains(5) {
		t.Error("r should contain 5")
	}
	if r.Contains(10) {
		t.Error("r should not contain 10 (exclusive end)")
	}
	if r.Len() != 10 {
		t.Errorf("expected length 10, got %d", r.Len())
	}
}
