package engine

import (
	"errors"
	"testing"
)

func testPack(t *testing.T) *Pack {
	t.Helper()
	return &Pack{
		ID:   "test",
		Name: "Test Pack",
		Levels: []*Level{
			mustLevel(t, "one", false,
				"#####",
				"#P@x#",
				"#####",
			),
			mustLevel(t, "two", false,
				"#####",
				"#x@P#",
				"#####",
			),
		},
	}
}

// The canonical solve scenario: a corridor level where one push to the right
// solves it, then undo restores the unsolved starting position.
func TestSessionSolveAndUndo(t *testing.T) {
	sess, err := NewSession(testPack(t), 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	out := sess.AttemptMove(DirRight)
	if !out.Moved {
		t.Fatalf("move rejected: %v", out.Reason)
	}
	if !sess.Solved() {
		t.Error("level not solved after the winning push")
	}
	if sess.Moves() != 1 {
		t.Errorf("moves = %d, want 1", sess.Moves())
	}

	if !sess.Undo() {
		t.Fatal("undo unavailable after an accepted move")
	}
	if sess.Solved() {
		t.Error("still solved after undo")
	}
	if sess.Moves() != 0 {
		t.Errorf("moves after undo = %d, want 0", sess.Moves())
	}
	if !sess.State().BoxAt(C(2, 1)) {
		t.Error("box not restored to its starting cell")
	}

	if !sess.Redo() {
		t.Fatal("redo unavailable after undo")
	}
	if !sess.Solved() || sess.Moves() != 1 {
		t.Error("redo did not restore the solved state")
	}
}

func TestSessionRejectedMoveLeavesHistoryAlone(t *testing.T) {
	sess, err := NewSession(testPack(t), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	out := sess.AttemptMove(DirUp)
	if out.Moved {
		t.Fatal("move into a wall accepted")
	}
	if sess.CanUndo() {
		t.Error("rejected move was recorded")
	}
	if sess.Moves() != 0 {
		t.Errorf("moves = %d after a rejected move", sess.Moves())
	}
}

func TestSessionRestartLevel(t *testing.T) {
	sess, err := NewSession(testPack(t), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	sess.AttemptMove(DirRight)
	sess.RestartLevel()

	if sess.Moves() != 0 || sess.Solved() {
		t.Error("restart did not reset the state")
	}
	if sess.CanUndo() || sess.CanRedo() {
		t.Error("restart did not clear history")
	}
	if !sess.State().Equal(NewState(sess.Level())) {
		t.Error("restart state differs from a fresh state")
	}
}

func TestSessionNextLevel(t *testing.T) {
	sess, err := NewSession(testPack(t), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	sess.AttemptMove(DirRight)
	if !sess.Solved() {
		t.Fatal("setup: level one should be solved")
	}

	if err := sess.NextLevel(); err != nil {
		t.Fatalf("NextLevel: %v", err)
	}
	if sess.LevelIndex() != 1 {
		t.Errorf("level index = %d, want 1", sess.LevelIndex())
	}
	if sess.Moves() != 0 || sess.CanUndo() {
		t.Error("state carried over across the level switch")
	}

	// Solve level two (push left) and exhaust the pack.
	out := sess.AttemptMove(DirLeft)
	if !out.Moved || !sess.Solved() {
		t.Fatalf("level two not solved: %+v", out)
	}
	if err := sess.NextLevel(); !errors.Is(err, ErrNoMoreLevels) {
		t.Errorf("NextLevel on last level = %v, want ErrNoMoreLevels", err)
	}
	// The failed advance leaves the session on the last level.
	if sess.LevelIndex() != 1 || !sess.Solved() {
		t.Error("failed NextLevel disturbed the session")
	}
}

func TestSessionStartValidation(t *testing.T) {
	if _, err := NewSession(&Pack{}, 0, 0); err == nil {
		t.Error("empty pack accepted")
	}
	if _, err := NewSession(testPack(t), 5, 0); err == nil {
		t.Error("out-of-range start level accepted")
	}
}
