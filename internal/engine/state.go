package engine

import (
	"hash/fnv"
	"sort"
)

// State is the complete dynamic snapshot of a level in play: the player
// position, the box positions, the move counter, and whether the level is
// solved. States are deep-copied on record so that history entries stay
// independent of the live state.
type State struct {
	Player Coord
	Moves  int
	Solved bool
	boxes  map[Coord]bool
}

// NewState creates the initial state for a level.
func NewState(l *Level) *State {
	s := &State{
		Player: l.PlayerStart,
		boxes:  make(map[Coord]bool, len(l.BoxStarts)),
	}
	for _, b := range l.BoxStarts {
		s.boxes[b] = true
	}
	s.Solved = allOnGoals(l, s.boxes)
	return s
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := &State{
		Player: s.Player,
		Moves:  s.Moves,
		Solved: s.Solved,
		boxes:  make(map[Coord]bool, len(s.boxes)),
	}
	for b := range s.boxes {
		c.boxes[b] = true
	}
	return c
}

// BoxAt reports whether a box occupies the coordinate.
func (s *State) BoxAt(c Coord) bool {
	return s.boxes[c]
}

// Boxes returns the box positions sorted row-major.
func (s *State) Boxes() []Coord {
	out := make([]Coord, 0, len(s.boxes))
	for b := range s.boxes {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// moveBox relocates a box from one cell to another.
func (s *State) moveBox(from, to Coord) {
	delete(s.boxes, from)
	s.boxes[to] = true
}

// Equal reports whether two states are identical, including the move counter.
func (s *State) Equal(o *State) bool {
	if s.Player != o.Player || s.Moves != o.Moves || s.Solved != o.Solved {
		return false
	}
	if len(s.boxes) != len(o.boxes) {
		return false
	}
	for b := range s.boxes {
		if !o.boxes[b] {
			return false
		}
	}
	return true
}

// Snapshot returns an FNV-1a hash of the state, useful for cycle detection
// and cheap equality checks in tests.
func (s *State) Snapshot() uint64 {
	h := fnv.New64a()
	writeInt := func(v int) {
		var buf [8]byte
		u := uint64(v)
		for i := 0; i < 8; i++ {
			buf[i] = byte(u >> (8 * i))
		}
		h.Write(buf[:])
	}
	writeInt(s.Player.X)
	writeInt(s.Player.Y)
	writeInt(s.Moves)
	if s.Solved {
		writeInt(1)
	} else {
		writeInt(0)
	}
	for _, b := range s.Boxes() {
		writeInt(b.X)
		writeInt(b.Y)
	}
	return h.Sum64()
}

// allOnGoals reports whether every box sits on a goal tile.
func allOnGoals(l *Level, boxes map[Coord]bool) bool {
	for b := range boxes {
		if !l.IsGoal(b) {
			return false
		}
	}
	return true
}
