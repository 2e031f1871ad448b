package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/engine"
	"gopkg.in/yaml.v3"
)

// YAMLPack represents the YAML structure for a pack file.
type YAMLPack struct {
	Name   string      `yaml:"name"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel represents a single level. Rows use the same symbol table as the
// text format; doors may alternatively be placed over floor cells by the
// doors list, which names directions instead of using arrow symbols.
type YAMLLevel struct {
	Name  string     `yaml:"name,omitempty"`
	Wrap  bool       `yaml:"wrap,omitempty"`
	Rows  []string   `yaml:"rows"`
	Doors []YAMLDoor `yaml:"doors,omitempty"`
}

// YAMLDoor places a one-way door at a cell.
type YAMLDoor struct {
	X   int    `yaml:"x"`
	Y   int    `yaml:"y"`
	Dir string `yaml:"dir"`
}

// ParseYAML parses a YAML pack file. The returned pack has no ID.
func ParseYAML(data []byte) (*engine.Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if len(yp.Name) > MaxPackNameLen {
		return nil, loadErrorf(CodeMalformedGrid, -1, 0,
			"pack name %q exceeds %d characters", yp.Name, MaxPackNameLen)
	}
	if len(yp.Levels) == 0 {
		return nil, loadErrorf(CodeMalformedGrid, -1, 0, "pack contains no levels")
	}

	pack := &engine.Pack{Name: yp.Name}
	for i, yl := range yp.Levels {
		lvl, err := parseYAMLLevel(yl, i)
		if err != nil {
			return nil, err
		}
		pack.Levels = append(pack.Levels, lvl)
	}
	return pack, nil
}

func parseYAMLLevel(yl YAMLLevel, idx int) (*engine.Level, error) {
	if len(yl.Rows) == 0 {
		return nil, loadErrorf(CodeMalformedGrid, idx, 0, "level has no rows")
	}
	w := len(yl.Rows[0])

	gb := &gridBuilder{level: idx, w: w}
	for y, row := range yl.Rows {
		if err := gb.addRow(row, y, 0); err != nil {
			return nil, err
		}
	}

	for _, d := range yl.Doors {
		dir, ok := parseDoorDir(d.Dir)
		if !ok {
			return nil, loadErrorf(CodeInvalidDoorDirection, idx, 0,
				"door at (%d,%d) has direction %q, want up/right/down/left", d.X, d.Y, d.Dir)
		}
		if d.X < 0 || d.X >= w || d.Y < 0 || d.Y >= len(yl.Rows) {
			return nil, loadErrorf(CodeMalformedGrid, idx, 0,
				"door at (%d,%d) out of bounds", d.X, d.Y)
		}
		i := d.Y*w + d.X
		if gb.tiles[i] != engine.TileFloor {
			return nil, loadErrorf(CodeMalformedGrid, idx, 0,
				"door at (%d,%d) placed on %v, want floor", d.X, d.Y, gb.tiles[i])
		}
		gb.tiles[i] = engine.OneWay(dir)
	}

	name := yl.Name
	if name == "" {
		name = fmt.Sprintf("Level %d", idx+1)
	}
	lvl, lerr := gb.build(name, w, len(yl.Rows), yl.Wrap)
	if lerr != nil {
		return nil, lerr
	}
	return lvl, nil
}

func parseDoorDir(s string) (engine.Dir, bool) {
	switch strings.ToLower(s) {
	case "up", "north":
		return engine.DirUp, true
	case "right", "east":
		return engine.DirRight, true
	case "down", "south":
		return engine.DirDown, true
	case "left", "west":
		return engine.DirLeft, true
	default:
		return 0, false
	}
}
