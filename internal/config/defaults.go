package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Packs: PacksConfig{
			Dir: "~/.sokoban/packs",
		},
		Database: StorageConfig{
			Path: "~/.sokoban/progress.db",
		},
		History: HistoryConfig{
			Capacity: 10000,
		},
		Theme: ThemeConfig{
			Wall:   "240",
			Floor:  "236",
			Goal:   "220",
			Box:    "208",
			BoxOK:  "40",
			Player: "45",
			Door:   "99",
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
