// Package formats provides pluggable level-pack file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/tui-sokoban/internal/engine"
)

// Renderable maximum for a level grid. Larger levels are rejected at load
// time so the front end never has to scroll.
const (
	MaxLevelWidth  = 74
	MaxLevelHeight = 22
)

// MaxPackNameLen bounds the pack name shown in list and score views.
const MaxPackNameLen = 25

// ErrorCode classifies a load failure.
type ErrorCode string

const (
	CodeUnknownTile          ErrorCode = "unknown_tile"
	CodeUnbalancedGoals      ErrorCode = "unbalanced_goals"
	CodeInvalidPlayerCount   ErrorCode = "invalid_player_count"
	CodeInvalidDoorDirection ErrorCode = "invalid_door_direction"
	CodeMalformedGrid        ErrorCode = "malformed_grid"
)

// LoadError is a structural problem in a pack file. Level is the zero-based
// level index, or -1 for pack-level problems; Line is the one-based line in
// the source, or 0 when not applicable.
type LoadError struct {
	Code    ErrorCode
	Level   int
	Line    int
	Message string
}

func (e *LoadError) Error() string {
	switch {
	case e.Level >= 0 && e.Line > 0:
		return fmt.Sprintf("level %d, line %d: %s: %s", e.Level, e.Line, e.Code, e.Message)
	case e.Level >= 0:
		return fmt.Sprintf("level %d: %s: %s", e.Level, e.Code, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Code, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

func loadErrorf(code ErrorCode, level, line int, format string, args ...any) *LoadError {
	return &LoadError{Code: code, Level: level, Line: line, Message: fmt.Sprintf(format, args...)}
}

// FormatExtensions returns the supported file extensions.
func FormatExtensions() []string {
	return []string{".lvl", ".yaml", ".yml"}
}

// gridBuilder accumulates one level's cells as grid rows are parsed.
type gridBuilder struct {
	level   int
	w       int
	tiles   []engine.Tile
	player  engine.Coord
	players int
	boxes   []engine.Coord
	goals   []engine.Coord
}

// addRow parses one row of symbols. line is the source line for diagnostics.
func (g *gridBuilder) addRow(row string, y, line int) *LoadError {
	if len(row) != g.w {
		return loadErrorf(CodeMalformedGrid, g.level, line,
			"row %d has width %d, want %d", y, len(row), g.w)
	}
	for x, r := range row {
		c := engine.C(x, y)
		switch r {
		case '#':
			g.tiles = append(g.tiles, engine.TileWall)
		case '-', ' ':
			g.tiles = append(g.tiles, engine.TileFloor)
		case 'x', 'X':
			g.tiles = append(g.tiles, engine.TileGoal)
			g.goals = append(g.goals, c)
		case '@':
			g.tiles = append(g.tiles, engine.TileFloor)
			g.boxes = append(g.boxes, c)
		case '+':
			g.tiles = append(g.tiles, engine.TileGoal)
			g.goals = append(g.goals, c)
			g.boxes = append(g.boxes, c)
		case 'P', 'p':
			g.tiles = append(g.tiles, engine.TileFloor)
			g.player = c
			g.players++
		case '!':
			g.tiles = append(g.tiles, engine.TileGoal)
			g.goals = append(g.goals, c)
			g.player = c
			g.players++
		case '<':
			g.tiles = append(g.tiles, engine.TileOneWayLeft)
		case '^':
			g.tiles = append(g.tiles, engine.TileOneWayUp)
		case '>':
			g.tiles = append(g.tiles, engine.TileOneWayRight)
		case 'v':
			g.tiles = append(g.tiles, engine.TileOneWayDown)
		default:
			return loadErrorf(CodeUnknownTile, g.level, line,
				"unknown symbol %q at column %d", string(r), x)
		}
	}
	return nil
}

// build validates the collected cells and produces the level.
func (g *gridBuilder) build(name string, w, h int, wrap bool) (*engine.Level, *LoadError) {
	if w <= 0 || h <= 0 {
		return nil, loadErrorf(CodeMalformedGrid, g.level, 0, "empty grid %dx%d", w, h)
	}
	if w > MaxLevelWidth || h > MaxLevelHeight {
		return nil, loadErrorf(CodeMalformedGrid, g.level, 0,
			"grid %dx%d exceeds maximum %dx%d", w, h, MaxLevelWidth, MaxLevelHeight)
	}
	if g.players != 1 {
		return nil, loadErrorf(CodeInvalidPlayerCount, g.level, 0,
			"found %d player starts, want exactly 1", g.players)
	}
	if len(g.boxes) != len(g.goals) {
		return nil, loadErrorf(CodeUnbalancedGoals, g.level, 0,
			"%d boxes but %d goals", len(g.boxes), len(g.goals))
	}
	l, err := engine.NewLevel(name, w, h, wrap, g.tiles, g.player, g.boxes, g.goals)
	if err != nil {
		return nil, loadErrorf(CodeMalformedGrid, g.level, 0, "%v", err)
	}
	return l, nil
}
