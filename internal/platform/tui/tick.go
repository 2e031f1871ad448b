// Package tui provides the Bubble Tea integration for the Sokoban platform.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per second to refresh the level timer.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next timer tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
