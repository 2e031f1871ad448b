package engine

import (
	"fmt"
	"sort"
)

// Level is the immutable static description of a single puzzle: terrain,
// initial entity positions, goals, and the wraparound flag. Once constructed
// it is never mutated and may be shared read-only across states.
type Level struct {
	Name  string
	W     int
	H     int
	Wrap  bool // Toroidal topology: moving past an edge re-enters opposite
	tiles []Tile

	PlayerStart Coord
	BoxStarts   []Coord
	Goals       []Coord
}

// NewLevel builds a level from row-major tiles plus entity positions and
// validates the structural invariants. tiles must have length w*h.
func NewLevel(name string, w, h int, wrap bool, tiles []Tile, player Coord, boxes, goals []Coord) (*Level, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("level %q: dimensions %dx%d must be positive", name, w, h)
	}
	if len(tiles) != w*h {
		return nil, fmt.Errorf("level %q: got %d tiles, want %d", name, len(tiles), w*h)
	}

	l := &Level{
		Name:        name,
		W:           w,
		H:           h,
		Wrap:        wrap,
		tiles:       tiles,
		PlayerStart: player,
		BoxStarts:   sortedCoords(boxes),
		Goals:       sortedCoords(goals),
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// index converts a coordinate to a flat array index.
func (l *Level) index(c Coord) int {
	return c.Y*l.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (l *Level) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < l.W && c.Y >= 0 && c.Y < l.H
}

// TileAt returns the tile at the given coordinate.
// Out-of-bounds coordinates read as Wall so that callers never walk off an
// unwrapped grid.
func (l *Level) TileAt(c Coord) Tile {
	if !l.InBounds(c) {
		return TileWall
	}
	return l.tiles[l.index(c)]
}

// Step advances c one cell in direction d. On a wraparound level the result
// is reduced modulo the grid size (torus); otherwise ok is false when the
// step leaves the grid.
func (l *Level) Step(c Coord, d Dir) (next Coord, ok bool) {
	next = c.Step(d)
	if l.Wrap {
		next.X = ((next.X % l.W) + l.W) % l.W
		next.Y = ((next.Y % l.H) + l.H) % l.H
		return next, true
	}
	return next, l.InBounds(next)
}

// IsGoal returns true if the coordinate is one of the level's goals.
func (l *Level) IsGoal(c Coord) bool {
	return l.TileAt(c) == TileGoal
}

// BoxCount returns the number of boxes the level starts with.
func (l *Level) BoxCount() int {
	return len(l.BoxStarts)
}

// Validate checks the invariants a playable level must satisfy. The pack
// loader calls this for every parsed level so that malformed levels never
// reach simulation.
func (l *Level) Validate() error {
	if len(l.BoxStarts) != len(l.Goals) {
		return fmt.Errorf("level %q: %d boxes but %d goals", l.Name, len(l.BoxStarts), len(l.Goals))
	}

	if !l.InBounds(l.PlayerStart) {
		return fmt.Errorf("level %q: player start %v out of bounds", l.Name, l.PlayerStart)
	}
	if l.TileAt(l.PlayerStart) == TileWall {
		return fmt.Errorf("level %q: player start %v is a wall", l.Name, l.PlayerStart)
	}

	seen := make(map[Coord]bool, len(l.BoxStarts))
	for _, b := range l.BoxStarts {
		if !l.InBounds(b) {
			return fmt.Errorf("level %q: box %v out of bounds", l.Name, b)
		}
		if l.TileAt(b) == TileWall {
			return fmt.Errorf("level %q: box %v on a wall", l.Name, b)
		}
		if b == l.PlayerStart {
			return fmt.Errorf("level %q: box %v overlaps player start", l.Name, b)
		}
		if seen[b] {
			return fmt.Errorf("level %q: duplicate box at %v", l.Name, b)
		}
		seen[b] = true
	}

	for _, g := range l.Goals {
		if !l.InBounds(g) {
			return fmt.Errorf("level %q: goal %v out of bounds", l.Name, g)
		}
		if l.TileAt(g) != TileGoal {
			return fmt.Errorf("level %q: goal list entry %v is not a goal tile", l.Name, g)
		}
	}

	return nil
}

// sortedCoords returns a copy sorted row-major for deterministic iteration.
func sortedCoords(coords []Coord) []Coord {
	out := make([]Coord, len(coords))
	copy(out, coords)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Pack is an ordered collection of levels played in sequence. Immutable once
// loaded; the session controller owns it for the duration of a play session.
type Pack struct {
	ID     string
	Name   string
	Levels []*Level
}

// LevelCount returns the number of levels in the pack.
func (p *Pack) LevelCount() int {
	return len(p.Levels)
}
