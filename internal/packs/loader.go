// Package packs loads Sokoban level packs from files and embedded defaults.
// This package depends on engine but engine does not depend on packs.
package packs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/engine"
	"github.com/vovakirdan/tui-sokoban/internal/packs/formats"
)

// Loader loads packs from a directory, with the embedded built-in packs
// always available underneath. Directory packs shadow built-ins on ID
// collision.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at dir. An empty dir serves only the
// built-in packs.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll returns all packs sorted by ID for deterministic ordering.
// Unparseable files in the directory are skipped; use LoadFile to get the
// diagnostic for a specific file.
func (l *Loader) LoadAll() ([]*engine.Pack, error) {
	byID := make(map[string]*engine.Pack)
	for _, p := range Builtin() {
		byID[p.ID] = p
	}

	if l.Root != "" {
		err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
				return nil
			}
			pack, err := LoadFile(path)
			if err != nil {
				// Skip invalid files
				return nil
			}
			byID[pack.ID] = pack
			return nil
		})
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
		}
	}

	out := make([]*engine.Pack, 0, len(byID))
	for _, p := range byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// LoadByID returns the pack with the given ID.
func (l *Loader) LoadByID(id string) (*engine.Pack, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("pack not found: %s", id)
}

// ListIDs returns all pack IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(all))
	for i, p := range all {
		ids[i] = p.ID
	}
	return ids, nil
}

// LoadFile loads and validates a single pack file. The pack ID is the file
// name without its extension; the pack name falls back to the ID when the
// file declares none.
func LoadFile(path string) (*engine.Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	base := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(base))
	pack, err := Parse(data, ext)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}

	pack.ID = strings.TrimSuffix(base, filepath.Ext(base))
	if pack.Name == "" {
		pack.Name = pack.ID
	}
	return pack, nil
}

// Parse routes raw pack data to the parser for the given extension.
func Parse(data []byte, ext string) (*engine.Pack, error) {
	switch ext {
	case ".lvl":
		return formats.ParseText(data)
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
