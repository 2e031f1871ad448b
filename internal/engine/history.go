package engine

// DefaultHistoryCap bounds how many past states a history keeps. When the
// cap is reached the oldest entry is dropped, so very long sessions lose
// their earliest undos rather than growing without bound.
const DefaultHistoryCap = 10000

// History tracks past and future states for undo and redo. Recording a new
// state clears the redo stack: once the player diverges from an undone line,
// the old future is gone.
type History struct {
	past   []*State
	future []*State
	cap    int
}

// NewHistory creates a history with the given capacity for past states.
// A non-positive capacity falls back to DefaultHistoryCap.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCap
	}
	return &History{cap: capacity}
}

// Record pushes the pre-move state onto the undo stack and clears redo.
// The state is cloned so later mutations of the live state cannot corrupt it.
func (h *History) Record(s *State) {
	if len(h.past) >= h.cap {
		copy(h.past, h.past[1:])
		h.past = h.past[:len(h.past)-1]
	}
	h.past = append(h.past, s.Clone())
	h.future = h.future[:0]
}

// Undo pops the most recent past state. The current state is pushed onto the
// redo stack so the move can be replayed. Returns nil if there is nothing to
// undo.
func (h *History) Undo(current *State) *State {
	if len(h.past) == 0 {
		return nil
	}
	prev := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, current.Clone())
	return prev
}

// Redo pops the most recently undone state. The current state is pushed back
// onto the undo stack. Returns nil if there is nothing to redo.
func (h *History) Redo(current *State) *State {
	if len(h.future) == 0 {
		return nil
	}
	next := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, current.Clone())
	return next
}

// CanUndo reports whether at least one past state exists.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether at least one undone state exists.
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Len returns the number of recorded past states.
func (h *History) Len() int { return len(h.past) }

// Reset drops both stacks.
func (h *History) Reset() {
	h.past = h.past[:0]
	h.future = h.future[:0]
}
