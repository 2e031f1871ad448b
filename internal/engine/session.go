package engine

import "errors"

// ErrNoMoreLevels is returned by NextLevel when the current level is the last
// one in the pack.
var ErrNoMoreLevels = errors.New("engine: no more levels in pack")

// Session drives one play-through of a pack: it owns the live state and the
// undo history for the current level and exposes the operations a front end
// needs. Sessions are single-goroutine; callers serialize access.
type Session struct {
	pack       *Pack
	levelIdx   int
	state      *State
	history    *History
	historyCap int
}

// NewSession starts a session on the given pack at the given level index.
// historyCap bounds the undo stack; pass 0 for the default.
func NewSession(pack *Pack, startLevel, historyCap int) (*Session, error) {
	if pack == nil || len(pack.Levels) == 0 {
		return nil, errors.New("engine: pack has no levels")
	}
	if startLevel < 0 || startLevel >= len(pack.Levels) {
		return nil, errors.New("engine: start level out of range")
	}
	s := &Session{pack: pack, historyCap: historyCap}
	s.loadLevel(startLevel)
	return s, nil
}

func (s *Session) loadLevel(idx int) {
	s.levelIdx = idx
	s.state = NewState(s.pack.Levels[idx])
	s.history = NewHistory(s.historyCap)
}

// AttemptMove resolves a move in direction d. On success the previous state
// is recorded for undo and the live state advances. Rejected moves leave the
// session untouched; the outcome reports the reason either way.
func (s *Session) AttemptMove(d Dir) Outcome {
	out := Resolve(s.Level(), s.state, d)
	if out.Moved {
		s.history.Record(s.state)
		s.state = out.State
	}
	return out
}

// Undo restores the state before the most recent move, including the move
// counter and solved flag. Returns false when there is nothing to undo.
func (s *Session) Undo() bool {
	prev := s.history.Undo(s.state)
	if prev == nil {
		return false
	}
	s.state = prev
	return true
}

// Redo replays the most recently undone move. Returns false when there is
// nothing to redo.
func (s *Session) Redo() bool {
	next := s.history.Redo(s.state)
	if next == nil {
		return false
	}
	s.state = next
	return true
}

// RestartLevel resets the current level to its initial state and clears the
// history.
func (s *Session) RestartLevel() {
	s.loadLevel(s.levelIdx)
}

// NextLevel advances to the next level in the pack. Advancing past the last
// level yields ErrNoMoreLevels; callers treat that as pack completion.
func (s *Session) NextLevel() error {
	if s.levelIdx+1 >= len(s.pack.Levels) {
		return ErrNoMoreLevels
	}
	s.loadLevel(s.levelIdx + 1)
	return nil
}

// Pack returns the pack being played.
func (s *Session) Pack() *Pack { return s.pack }

// Level returns the current level.
func (s *Session) Level() *Level { return s.pack.Levels[s.levelIdx] }

// LevelIndex returns the zero-based index of the current level.
func (s *Session) LevelIndex() int { return s.levelIdx }

// State returns the live state. Callers must treat it as read-only.
func (s *Session) State() *State { return s.state }

// Solved reports whether the current level is solved.
func (s *Session) Solved() bool { return s.state.Solved }

// Moves returns the move counter for the current level.
func (s *Session) Moves() int { return s.state.Moves }

// CanUndo reports whether an undo is available.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether a redo is available.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// OnLastLevel reports whether the current level is the pack's last.
func (s *Session) OnLastLevel() bool { return s.levelIdx+1 >= len(s.pack.Levels) }
