package engine

// Reason classifies why a move was rejected. Rejections are normal outcomes,
// not errors: the caller decides whether to flash the screen or stay silent.
type Reason uint8

const (
	// ReasonBlocked: the target cell is a wall, off an unwrapped edge, or
	// holds a box that cannot move.
	ReasonBlocked Reason = iota
	// ReasonWrongWay: a one-way door refused entry against its direction.
	ReasonWrongWay
)

// String returns the name of the rejection reason.
func (r Reason) String() string {
	switch r {
	case ReasonBlocked:
		return "Blocked"
	case ReasonWrongWay:
		return "WrongWay"
	default:
		return "Unknown"
	}
}

// Delta describes what a successful move changed. The history manager stores
// states rather than deltas; Delta exists for callers that want to animate or
// log the transition.
type Delta struct {
	Dir        Dir
	PlayerFrom Coord
	PlayerTo   Coord
	Pushed     bool
	BoxFrom    Coord
	BoxTo      Coord
	Solved     bool
}

// Outcome is the result of resolving a move attempt. When Moved is true,
// State and Change are set; otherwise Reason is set and the input state is
// untouched.
type Outcome struct {
	Moved  bool
	State  *State
	Change Delta
	Reason Reason
}

// Resolve attempts to move the player one cell in direction d. It never
// mutates s: a successful move returns a fresh state with the move applied
// and the move counter incremented. Resolution is pure and deterministic.
//
// A cell holding a box is enterable only by pushing: the box must move to the
// next cell in the same direction, which must be free. At most one box moves
// per step; a box behind a box blocks.
//
// One-way doors gate entry by direction for the player and the box alike:
// a door is enterable only when the move direction equals the door's
// direction. A box may be pushed onto a door under the same rule.
func Resolve(l *Level, s *State, d Dir) Outcome {
	dest, ok := l.Step(s.Player, d)
	if !ok {
		return Outcome{Reason: ReasonBlocked}
	}

	destTile := l.TileAt(dest)
	if destTile == TileWall {
		return Outcome{Reason: ReasonBlocked}
	}
	if doorDir, isDoor := destTile.OneWayDir(); isDoor && doorDir != d {
		return Outcome{Reason: ReasonWrongWay}
	}

	change := Delta{Dir: d, PlayerFrom: s.Player, PlayerTo: dest}

	if s.BoxAt(dest) {
		boxDest, ok := l.Step(dest, d)
		if !ok {
			return Outcome{Reason: ReasonBlocked}
		}
		boxTile := l.TileAt(boxDest)
		if boxTile == TileWall || s.BoxAt(boxDest) {
			return Outcome{Reason: ReasonBlocked}
		}
		if doorDir, isDoor := boxTile.OneWayDir(); isDoor && doorDir != d {
			return Outcome{Reason: ReasonWrongWay}
		}
		change.Pushed = true
		change.BoxFrom = dest
		change.BoxTo = boxDest
	}

	next := s.Clone()
	next.Player = dest
	if change.Pushed {
		next.moveBox(change.BoxFrom, change.BoxTo)
	}
	next.Moves++
	next.Solved = allOnGoals(l, next.boxes)
	change.Solved = next.Solved

	return Outcome{Moved: true, State: next, Change: change}
}
