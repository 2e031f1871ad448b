package packs

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/engine"
)

//go:embed builtin/*.lvl
var builtinFS embed.FS

// Builtin returns the embedded packs sorted by ID. The embedded files are
// covered by tests, so a parse failure here is a build defect; it panics
// rather than returning an error every caller would have to ignore.
func Builtin() []*engine.Pack {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		panic(fmt.Sprintf("packs: reading embedded dir: %v", err))
	}

	var out []*engine.Pack
	for _, e := range entries {
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("packs: reading embedded %s: %v", e.Name(), err))
		}
		pack, err := Parse(data, strings.ToLower(filepath.Ext(e.Name())))
		if err != nil {
			panic(fmt.Sprintf("packs: embedded %s: %v", e.Name(), err))
		}
		pack.ID = strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if pack.Name == "" {
			pack.Name = pack.ID
		}
		out = append(out, pack)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
