package engine

// Tile is the static terrain of a single cell. The set is closed: the
// resolver matches every variant exhaustively, so a new mechanic means a new
// constant here and a compiler-visible update at every switch.
type Tile uint8

const (
	TileFloor Tile = iota
	TileWall
	TileGoal
	TileOneWayUp
	TileOneWayRight
	TileOneWayDown
	TileOneWayLeft
)

// String returns a human-readable name for the tile.
func (t Tile) String() string {
	switch t {
	case TileFloor:
		return "Floor"
	case TileWall:
		return "Wall"
	case TileGoal:
		return "Goal"
	case TileOneWayUp:
		return "OneWayUp"
	case TileOneWayRight:
		return "OneWayRight"
	case TileOneWayDown:
		return "OneWayDown"
	case TileOneWayLeft:
		return "OneWayLeft"
	default:
		return "Unknown"
	}
}

// OneWay returns the tile for a one-way door opening in the given direction.
func OneWay(d Dir) Tile {
	switch d {
	case DirUp:
		return TileOneWayUp
	case DirRight:
		return TileOneWayRight
	case DirDown:
		return TileOneWayDown
	case DirLeft:
		return TileOneWayLeft
	default:
		return TileFloor
	}
}

// OneWayDir reports whether the tile is a one-way door and, if so, the single
// direction in which it may be entered.
func (t Tile) OneWayDir() (Dir, bool) {
	switch t {
	case TileOneWayUp:
		return DirUp, true
	case TileOneWayRight:
		return DirRight, true
	case TileOneWayDown:
		return DirDown, true
	case TileOneWayLeft:
		return DirLeft, true
	default:
		return 0, false
	}
}

// Walkable reports whether a player or box may ever occupy the tile.
// One-way doors are walkable; direction gating happens in the resolver.
func (t Tile) Walkable() bool {
	return t != TileWall
}
