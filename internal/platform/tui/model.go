package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/engine"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// Model is the Bubble Tea model for playing one pack.
type Model struct {
	session *engine.Session
	store   *storage.Store
	theme   Theme
	keys    GameKeyMap
	help    help.Model

	width  int
	height int

	levelStart time.Time
	elapsed    time.Duration
	flash      string
	levelDone  bool
	packDone   bool
	quitting   bool
}

// NewModel creates a play model for the given session.
// store may be nil; results are then simply not persisted.
func NewModel(session *engine.Session, store *storage.Store, theme Theme) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		session:    session,
		store:      store,
		theme:      theme,
		keys:       DefaultGameKeyMap(),
		help:       h,
		levelStart: time.Now(),
	}
}

// Init starts the level timer.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.levelDone && !m.packDone {
			m.elapsed = time.Since(m.levelStart)
		}
		return m, tickCmd()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		m.session.RestartLevel()
		m.resetLevelView()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if m.levelDone {
			return m.advance()
		}
		return m, nil
	}

	if m.packDone {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Undo):
		if m.session.Undo() {
			m.flash = ""
			m.levelDone = m.session.Solved()
		}
		return m, nil

	case key.Matches(msg, m.keys.Redo):
		if m.session.Redo() {
			m.flash = ""
			m.checkSolved()
		}
		return m, nil
	}

	if m.levelDone {
		return m, nil
	}

	if d, ok := m.moveDir(msg); ok {
		out := m.session.AttemptMove(d)
		if out.Moved {
			m.flash = ""
			m.checkSolved()
		} else {
			switch out.Reason {
			case engine.ReasonWrongWay:
				m.flash = "wrong way!"
			default:
				m.flash = "blocked"
			}
		}
	}

	return m, nil
}

// moveDir maps a key message to a movement direction.
func (m Model) moveDir(msg tea.KeyMsg) (engine.Dir, bool) {
	switch {
	case key.Matches(msg, m.keys.Up):
		return engine.DirUp, true
	case key.Matches(msg, m.keys.Down):
		return engine.DirDown, true
	case key.Matches(msg, m.keys.Left):
		return engine.DirLeft, true
	case key.Matches(msg, m.keys.Right):
		return engine.DirRight, true
	default:
		return 0, false
	}
}

// checkSolved records the result whenever the level becomes solved. The
// store only ever improves a record, so re-solving after an undo is safe.
func (m *Model) checkSolved() {
	if !m.session.Solved() {
		m.levelDone = false
		return
	}
	m.levelDone = true
	m.elapsed = time.Since(m.levelStart)

	if m.store != nil {
		packID := m.session.Pack().ID
		//nolint:errcheck // Best-effort save, play continues regardless
		m.store.RecordResult(packID, m.session.LevelIndex(), m.session.Moves(), m.elapsed)
		//nolint:errcheck // Best-effort save
		m.store.SetProgress(packID, m.session.LevelIndex()+1)
	}
}

// advance moves on to the next level, or marks the pack finished.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if err := m.session.NextLevel(); err != nil {
		m.packDone = true
		return m, nil
	}
	m.resetLevelView()
	return m, nil
}

// resetLevelView clears per-level UI state after a restart or level switch.
func (m *Model) resetLevelView() {
	m.levelStart = time.Now()
	m.elapsed = 0
	m.flash = ""
	m.levelDone = m.session.Solved()
	m.packDone = false
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	pack := m.session.Pack()
	level := m.session.Level()
	title := fmt.Sprintf("%s  ·  %s (%d/%d)",
		pack.Name, level.Name, m.session.LevelIndex()+1, pack.LevelCount())
	b.WriteString(m.theme.HUDTitle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(RenderBoard(level, m.session.State(), m.theme))
	b.WriteString("\n\n")

	hud := fmt.Sprintf("moves %d   time %s", m.session.Moves(), formatDuration(m.elapsed))
	b.WriteString(m.theme.HUDValue.Render(hud))
	if m.flash != "" {
		b.WriteString("   ")
		b.WriteString(m.theme.Flash.Render(m.flash))
	}
	b.WriteString("\n")

	if m.packDone {
		b.WriteString("\n")
		b.WriteString(m.overlay("PACK COMPLETE", "You finished every level. Press q to quit."))
		b.WriteString("\n")
	} else if m.levelDone {
		b.WriteString("\n")
		text := fmt.Sprintf("Solved in %d moves. Press enter for the next level.", m.session.Moves())
		if m.session.OnLastLevel() {
			text = fmt.Sprintf("Solved in %d moves. This was the last level.", m.session.Moves())
		}
		b.WriteString(m.overlay("LEVEL COMPLETE", text))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.HUDControls.Render(m.help.View(m.keys)))

	if m.width > 0 {
		return centerText(b.String(), m.width)
	}
	return b.String()
}

// overlay renders a bordered completion banner.
func (m Model) overlay(title, text string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.OverlayBorder.GetForeground()).
		Padding(0, 2)
	content := m.theme.OverlayTitle.Render(title) + "\n" + m.theme.OverlayText.Render(text)
	return border.Render(content)
}

// formatDuration renders an elapsed time as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Run starts the Bubble Tea program for a play session.
func Run(session *engine.Session, store *storage.Store, theme Theme) error {
	model := NewModel(session, store, theme)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
