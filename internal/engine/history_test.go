package engine

import "testing"

func TestHistoryUndoRedoRoundTrip(t *testing.T) {
	l := mustLevel(t, "hist", false,
		"#####",
		"#P@x#",
		"#####",
	)
	s := NewState(l)
	h := NewHistory(0)

	out := Resolve(l, s, DirRight)
	if !out.Moved {
		t.Fatalf("push rejected: %v", out.Reason)
	}
	h.Record(s)
	cur := out.State

	prev := h.Undo(cur)
	if prev == nil {
		t.Fatal("Undo returned nil after one recorded move")
	}
	if !prev.Equal(s) {
		t.Error("undo did not restore the exact prior state")
	}
	if prev.Moves != 0 || prev.Solved {
		t.Errorf("undo state moves=%d solved=%v, want 0,false", prev.Moves, prev.Solved)
	}

	redone := h.Redo(prev)
	if redone == nil {
		t.Fatal("Redo returned nil after an undo")
	}
	if !redone.Equal(cur) {
		t.Error("redo did not restore the pre-undo state")
	}
	if !redone.Solved || redone.Moves != 1 {
		t.Errorf("redo state moves=%d solved=%v, want 1,true", redone.Moves, redone.Solved)
	}
}

func TestHistoryEmptyStacksAreNoOps(t *testing.T) {
	h := NewHistory(0)
	s := &State{boxes: map[Coord]bool{}}
	if h.Undo(s) != nil {
		t.Error("Undo on empty history should return nil")
	}
	if h.Redo(s) != nil {
		t.Error("Redo on empty history should return nil")
	}
	if h.CanUndo() || h.CanRedo() {
		t.Error("empty history reports availability")
	}
}

func TestHistoryRecordClearsFuture(t *testing.T) {
	l := mustLevel(t, "branch", false,
		"#####",
		"#-P-#",
		"#@-x#",
		"#####",
	)
	s := NewState(l)
	h := NewHistory(0)

	first := Resolve(l, s, DirRight)
	if !first.Moved {
		t.Fatalf("move rejected: %v", first.Reason)
	}
	h.Record(s)

	prev := h.Undo(first.State)
	if prev == nil || !h.CanRedo() {
		t.Fatal("undo did not populate the redo stack")
	}

	// A new move from the undone state invalidates the redo branch.
	second := Resolve(l, prev, DirLeft)
	if !second.Moved {
		t.Fatalf("branch move rejected: %v", second.Reason)
	}
	h.Record(prev)
	if h.CanRedo() {
		t.Error("redo branch survived a new recorded move")
	}
	if h.Redo(second.State) != nil {
		t.Error("Redo returned a state after the branch was invalidated")
	}
}

func TestHistoryCapacityDropsOldest(t *testing.T) {
	l := mustLevel(t, "cap", false,
		"#####",
		"#P@x#",
		"#####",
	)
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		s := NewState(l)
		s.Moves = i
		h.Record(s)
	}
	if h.Len() != 3 {
		t.Fatalf("history length %d, want cap 3", h.Len())
	}
	// The survivors are the three most recent records.
	cur := NewState(l)
	for want := 4; want >= 2; want-- {
		got := h.Undo(cur)
		if got == nil || got.Moves != want {
			t.Fatalf("undo returned moves=%v, want %d", got, want)
		}
		cur = got
	}
	if h.Undo(cur) != nil {
		t.Error("history retained more than its capacity")
	}
}

func TestHistoryReset(t *testing.T) {
	l := mustLevel(t, "reset", false,
		"#####",
		"#P@x#",
		"#####",
	)
	h := NewHistory(0)
	h.Record(NewState(l))
	h.Undo(NewState(l))
	h.Reset()
	if h.CanUndo() || h.CanRedo() {
		t.Error("Reset left entries behind")
	}
}
