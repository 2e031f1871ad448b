package formats

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/engine"
)

const minimalText = `Name: Mini
Levels: 1

w: 5, h: 3
#####
#P@x#
#####
`

func TestParseTextMinimal(t *testing.T) {
	pack, err := ParseText([]byte(minimalText))
	if err != nil {
		t.Fatal(err)
	}
	if pack.Name != "Mini" {
		t.Errorf("pack name %q, want Mini", pack.Name)
	}
	if len(pack.Levels) != 1 {
		t.Fatalf("got %d levels, want 1", len(pack.Levels))
	}

	l := pack.Levels[0]
	if l.W != 5 || l.H != 3 || l.Wrap {
		t.Errorf("level dims %dx%d wrap=%v", l.W, l.H, l.Wrap)
	}
	if l.PlayerStart != engine.C(1, 1) {
		t.Errorf("player start %v, want (1,1)", l.PlayerStart)
	}
	if len(l.BoxStarts) != 1 || l.BoxStarts[0] != engine.C(2, 1) {
		t.Errorf("boxes %v, want [(2,1)]", l.BoxStarts)
	}
	if len(l.Goals) != 1 || l.Goals[0] != engine.C(3, 1) {
		t.Errorf("goals %v, want [(3,1)]", l.Goals)
	}
}

func TestParseTextWrapAndDoors(t *testing.T) {
	src := `Levels: 1

w: 5, h: 4, wrap
--^--
-P@x-
--v--
-----
`
	pack, err := ParseText([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	l := pack.Levels[0]
	if !l.Wrap {
		t.Error("wrap attribute not applied")
	}
	if l.TileAt(engine.C(2, 0)) != engine.TileOneWayUp {
		t.Errorf("tile (2,0) = %v, want OneWayUp", l.TileAt(engine.C(2, 0)))
	}
	if l.TileAt(engine.C(2, 2)) != engine.TileOneWayDown {
		t.Errorf("tile (2,2) = %v, want OneWayDown", l.TileAt(engine.C(2, 2)))
	}
}

func TestParseTextSymbolOverlays(t *testing.T) {
	// + is box on goal, ! is player on goal.
	src := `Levels: 1

w: 6, h: 3
######
#!+@x#
#--@-#
`
	pack, err := ParseText([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	l := pack.Levels[0]
	if l.PlayerStart != engine.C(1, 1) || l.TileAt(engine.C(1, 1)) != engine.TileGoal {
		t.Error("! did not place player on a goal tile")
	}
	if len(l.BoxStarts) != 3 || len(l.Goals) != 3 {
		t.Fatalf("boxes=%d goals=%d, want 3 and 3", len(l.BoxStarts), len(l.Goals))
	}
	if l.TileAt(engine.C(2, 1)) != engine.TileGoal || l.BoxStarts[0] != engine.C(2, 1) {
		t.Error("+ did not place a box on a goal tile")
	}
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code ErrorCode
	}{
		{
			"unknown tile",
			"Levels: 1\n\nw: 3, h: 1\nP?x\n",
			CodeUnknownTile,
		},
		{
			"unbalanced goals",
			"Levels: 1\n\nw: 4, h: 1\nP@@x\n",
			CodeUnbalancedGoals,
		},
		{
			"no player",
			"Levels: 1\n\nw: 3, h: 1\n-@x\n",
			CodeInvalidPlayerCount,
		},
		{
			"two players",
			"Levels: 1\n\nw: 5, h: 1\nP@xP-\n",
			CodeInvalidPlayerCount,
		},
		{
			"ragged row",
			"Levels: 1\n\nw: 3, h: 2\nP@x\n----\n",
			CodeMalformedGrid,
		},
		{
			"truncated grid",
			"Levels: 1\n\nw: 3, h: 4\nP@x\n",
			CodeMalformedGrid,
		},
		{
			"bad header",
			"Levels: 1\n\nw: 3, h: nope\nP@x\n",
			CodeMalformedGrid,
		},
		{
			"count mismatch",
			"Levels: 2\n\nw: 3, h: 1\nP@x\n",
			CodeMalformedGrid,
		},
		{
			"empty pack",
			"Name: Empty\nLevels: 1\n",
			CodeMalformedGrid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseText([]byte(tt.src))
			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("got %v, want LoadError", err)
			}
			if le.Code != tt.code {
				t.Errorf("code = %s, want %s", le.Code, tt.code)
			}
		})
	}
}

func TestParseTextErrorCarriesLocation(t *testing.T) {
	src := "Levels: 1\n\nw: 3, h: 2\nP@x\n-?-\n"
	_, err := ParseText([]byte(src))
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("got %v, want LoadError", err)
	}
	if le.Level != 0 {
		t.Errorf("level = %d, want 0", le.Level)
	}
	if le.Line != 5 {
		t.Errorf("line = %d, want 5", le.Line)
	}
}

func TestParseTextOversizedGrid(t *testing.T) {
	src := "Levels: 1\n\nw: 80, h: 1\n"
	row := make([]byte, 80)
	for i := range row {
		row[i] = '-'
	}
	row[0] = 'P'
	src += string(row) + "\n"

	_, err := ParseText([]byte(src))
	var le *LoadError
	if !errors.As(err, &le) || le.Code != CodeMalformedGrid {
		t.Errorf("oversized grid: got %v, want MalformedGrid", err)
	}
}

func TestParseYAML(t *testing.T) {
	src := `name: Yaml Pack
levels:
  - name: First
    wrap: true
    rows:
      - "#####"
      - "#P@x#"
      - "#####"
  - rows:
      - "#####"
      - "#x@P#"
      - "#####"
    doors:
      - {x: 1, y: 1, dir: left}
`
	pack, err := ParseYAML([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if pack.Name != "Yaml Pack" || len(pack.Levels) != 2 {
		t.Fatalf("pack %q with %d levels", pack.Name, len(pack.Levels))
	}
	if !pack.Levels[0].Wrap || pack.Levels[0].Name != "First" {
		t.Error("first level attributes not applied")
	}
	if pack.Levels[1].TileAt(engine.C(1, 1)) != engine.TileOneWayLeft {
		t.Error("doors entry not applied")
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code ErrorCode
	}{
		{
			"bad door direction",
			"levels:\n  - rows: [\"#####\", \"#P@x#\", \"#####\"]\n    doors:\n      - {x: 1, y: 1, dir: sideways}\n",
			CodeInvalidDoorDirection,
		},
		{
			"door on wall",
			"levels:\n  - rows: [\"#####\", \"#P@x#\", \"#####\"]\n    doors:\n      - {x: 0, y: 0, dir: up}\n",
			CodeMalformedGrid,
		},
		{
			"unknown symbol",
			"levels:\n  - rows: [\"#####\", \"#P?x#\", \"#####\"]\n",
			CodeUnknownTile,
		},
		{
			"no levels",
			"name: Empty\n",
			CodeMalformedGrid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.src))
			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("got %v, want LoadError", err)
			}
			if le.Code != tt.code {
				t.Errorf("code = %s, want %s", le.Code, tt.code)
			}
		})
	}
}
