package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/config"
)

// Theme contains all configurable visual styles for the board and HUD.
type Theme struct {
	// Board cell styles
	Wall      lipgloss.Style
	Floor     lipgloss.Style
	Goal      lipgloss.Style
	Box       lipgloss.Style
	BoxOnGoal lipgloss.Style
	Player    lipgloss.Style
	Door      lipgloss.Style

	// HUD styles
	HUDTitle    lipgloss.Style
	HUDValue    lipgloss.Style
	HUDControls lipgloss.Style
	Flash       lipgloss.Style

	// Overlay styles
	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayText   lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return ThemeFromConfig(config.Default().Theme)
}

// ThemeFromConfig builds a theme from configured cell colors.
func ThemeFromConfig(tc config.ThemeConfig) Theme {
	return Theme{
		Wall:      lipgloss.NewStyle().Foreground(lipgloss.Color(tc.Wall)),
		Floor:     lipgloss.NewStyle().Foreground(lipgloss.Color(tc.Floor)),
		Goal:      lipgloss.NewStyle().Foreground(lipgloss.Color(tc.Goal)).Bold(true),
		Box:       lipgloss.NewStyle().Foreground(lipgloss.Color(tc.Box)),
		BoxOnGoal: lipgloss.NewStyle().Foreground(lipgloss.Color(tc.BoxOK)).Bold(true),
		Player:    lipgloss.NewStyle().Foreground(lipgloss.Color(tc.Player)).Bold(true),
		Door:      lipgloss.NewStyle().Foreground(lipgloss.Color(tc.Door)),

		HUDTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDControls: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Flash:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		OverlayBorder: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		OverlayTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayText:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	}
}
