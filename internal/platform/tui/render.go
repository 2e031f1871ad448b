package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/engine"
)

// Cell glyphs. Two characters per cell keeps the board roughly square in a
// terminal font.
const (
	glyphWall   = "██"
	glyphFloor  = "  "
	glyphGoal   = "··"
	glyphBox    = "[]"
	glyphPlayer = "@ "
)

// doorGlyph returns the two-character marker for a one-way door.
func doorGlyph(d engine.Dir) string {
	switch d {
	case engine.DirUp:
		return "^^"
	case engine.DirRight:
		return "» "
	case engine.DirDown:
		return "vv"
	case engine.DirLeft:
		return "« "
	default:
		return "??"
	}
}

// RenderBoard renders the level and state as a styled string.
func RenderBoard(l *engine.Level, s *engine.State, theme Theme) string {
	var sb strings.Builder
	sb.Grow(l.W * l.H * 4)

	for y := 0; y < l.H; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < l.W; x++ {
			style, glyph := cellAppearance(l, s, engine.C(x, y), theme)
			sb.WriteString(style.Render(glyph))
		}
	}
	return sb.String()
}

// cellAppearance picks the style and glyph for one cell. Entities draw over
// terrain; a box on a goal gets its own style so progress is visible.
func cellAppearance(l *engine.Level, s *engine.State, c engine.Coord, theme Theme) (lipgloss.Style, string) {
	if s != nil {
		if s.Player == c {
			return theme.Player, glyphPlayer
		}
		if s.BoxAt(c) {
			if l.IsGoal(c) {
				return theme.BoxOnGoal, glyphBox
			}
			return theme.Box, glyphBox
		}
	}

	t := l.TileAt(c)
	if d, ok := t.OneWayDir(); ok {
		return theme.Door, doorGlyph(d)
	}
	switch t {
	case engine.TileWall:
		return theme.Wall, glyphWall
	case engine.TileGoal:
		return theme.Goal, glyphGoal
	default:
		return theme.Floor, glyphFloor
	}
}

// centerText centers a (possibly multi-line) block within the given width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}
