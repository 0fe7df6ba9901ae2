package buffer

import (
	"errors"
	"testing"
)

func TestUserActionGroupsChanges(t *testing.T) {
	b := NewBufferFromString("abc")

	var sets []ChangeSet
	b.Subscribe(func(cs ChangeSet) { sets = append(sets, cs) })

	b.BeginNamedAction("outer")
	b.Insert(0, "x")
	b.BeginUserAction()
	b.Insert(0, "y")
	b.EndUserAction()
	if len(sets) != 0 {
		t.Fatalf("listeners notified before outermost end: %d", len(sets))
	}
	b.Delete(0, 1)
	b.EndUserAction()

	if len(sets) != 1 {
		t.Fatalf("expected 1 change set, got %d", len(sets))
	}
	if sets[0].Action != "outer" {
		t.Errorf("expected action name outer, got %q", sets[0].Action)
	}
	if len(sets[0].Changes) != 3 {
		t.Errorf("expected 3 changes, got %d", len(sets[0].Changes))
	}
	if sets[0].Revision != b.RevisionID() {
		t.Error("change set revision should match buffer revision")
	}
	if b.InUserAction() {
		t.Error("action should be closed")
	}
}

func TestUserActionEmptyAndUnbalanced(t *testing.T) {
	b := NewBuffer()

	calls := 0
	b.Subscribe(func(ChangeSet) { calls++ })

	b.EndUserAction() // ignored
	b.BeginUserAction()
	b.EndUserAction()

	if calls != 0 {
		t.Errorf("empty action should not notify, got %d calls", calls)
	}
}

func TestUserActionFunc(t *testing.T) {
	b := NewBufferFromString("abc")
	boom := errors.New("boom")

	err := b.UserAction("edit", func() error {
		b.Insert(3, "d")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
	if b.InUserAction() {
		t.Error("action should be closed after error")
	}
	if b.Text() != "abcd" {
		t.Errorf("expected abcd, got %q", b.Text())
	}
}

func TestUnsubscribe(t *testing.T) {
	b := NewBuffer()

	var order []int
	id1 := b.Subscribe(func(ChangeSet) { order = append(order, 1) })
	b.Subscribe(func(ChangeSet) { order = append(order, 2) })

	b.Insert(0, "a")
	b.Unsubscribe(id1)
	b.Insert(0, "b")

	want := []int{1, 2, 2}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}
