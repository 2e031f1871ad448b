// Package config provides YAML-based configuration loading for the
// Sokoban platform.
package config

// Config contains all user-tunable settings.
type Config struct {
	Packs    PacksConfig   `yaml:"packs"`
	Database StorageConfig `yaml:"database"`
	History  HistoryConfig `yaml:"history"`
	Theme    ThemeConfig   `yaml:"theme"`
}

// PacksConfig locates level packs on disk.
type PacksConfig struct {
	// Dir is scanned for .lvl and .yaml pack files. Packs found here
	// shadow the embedded built-ins on ID collision.
	Dir string `yaml:"dir"`
}

// StorageConfig locates the progress database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// HistoryConfig tunes the undo system.
type HistoryConfig struct {
	// Capacity bounds the undo stack per level; oldest entries are dropped
	// beyond it. Zero or negative uses the engine default.
	Capacity int `yaml:"capacity"`
}

// ThemeConfig holds lipgloss color values for the board renderer.
type ThemeConfig struct {
	Wall   string `yaml:"wall"`
	Floor  string `yaml:"floor"`
	Goal   string `yaml:"goal"`
	Box    string `yaml:"box"`
	BoxOK  string `yaml:"box_on_goal"`
	Player string `yaml:"player"`
	Door   string `yaml:"door"`
}
