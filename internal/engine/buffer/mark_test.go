package buffer

import (
	"errors"
	"testing"
)

func TestTransformInsert(t *testing.T) {
	tests := []struct {
		name        string
		offset, at  ByteOffset
		n           ByteOffset
		leftGravity bool
		want        ByteOffset
	}{
		{"before mark", 10, 5, 3, false, 13},
		{"after mark", 10, 12, 3, false, 10},
		{"at mark right gravity", 10, 10, 3, false, 13},
		{"at mark left gravity", 10, 10, 3, true, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transformInsert(tt.offset, tt.at, tt.n, tt.leftGravity); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTransformDelete(t *testing.T) {
	tests := []struct {
		name       string
		offset     ByteOffset
		start, end ByteOffset
		want       ByteOffset
	}{
		{"before mark", 10, 2, 5, 7},
		{"after mark", 10, 12, 15, 10},
		{"spanning mark", 10, 8, 12, 8},
		{"ending at mark", 10, 8, 10, 8},
		{"starting at mark", 10, 10, 12, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transformDelete(tt.offset, tt.start, tt.end); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMarksFollowEdits(t *testing.T) {
	b := NewBufferFromString("0123456789")

	if err := b.CreateMark("left", 5, true); err != nil {
		t.Fatal(err)
	}
	if err := b.CreateMark("right", 5, false); err != nil {
		t.Fatal(err)
	}

	b.Insert(5, "abc")

	if off, _ := b.MarkOffset("left"); off != 5 {
		t.Errorf("left gravity mark moved to %d", off)
	}
	if off, _ := b.MarkOffset("right"); off != 8 {
		t.Errorf("right gravity mark at %d, want 8", off)
	}

	b.Delete(0, 6)

	if off, _ := b.MarkOffset("left"); off != 0 {
		t.Errorf("left mark at %d, want 0", off)
	}
	if off, _ := b.MarkOffset("right"); off != 2 {
		t.Errorf("right mark at %d, want 2", off)
	}
}

func TestMarkErrors(t *testing.T) {
	b := NewBufferFromString("abc")

	if err := b.CreateMark("m", 10, false); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}
	if err := b.MoveMark("missing", 0); !errors.Is(err, ErrMarkNotFound) {
		t.Errorf("expected ErrMarkNotFound, got %v", err)
	}
	if err := b.DeleteMark("missing"); !errors.Is(err, ErrMarkNotFound) {
		t.Errorf("expected ErrMarkNotFound, got %v", err)
	}
	if err := b.DeleteMark(MarkInsert); !errors.Is(err, ErrMarkReserved) {
		t.Errorf("expected ErrMarkReserved, got %v", err)
	}

	b.CreateMark("m", 1, false)
	if err := b.MoveMark("m", 3); err != nil {
		t.Fatalf("MoveMark failed: %v", err)
	}
	if err := b.DeleteMark("m"); err != nil {
		t.Fatalf("DeleteMark failed: %v", err)
	}
	if _, ok := b.MarkOffset("m"); ok {
		t.Error("deleted mark should not be found")
	}
}
