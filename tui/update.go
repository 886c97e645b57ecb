package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/pomo/internal/settings"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.refresh()
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, defaultKeymap.togglePlay):
		m.togglePlay()

	case key.Matches(msg, defaultKeymap.stop):
		m.timer.Stop()

	case key.Matches(msg, defaultKeymap.reset):
		m.timer.Reset()

	case key.Matches(msg, defaultKeymap.longBreak):
		m.settings.ToggleLongBreak()

	case key.Matches(msg, defaultKeymap.increase):
		m.adjustSession(1)

	case key.Matches(msg, defaultKeymap.decrease):
		m.adjustSession(-1)
	}

	m.refresh()

	return m, nil
}

// togglePlay starts an idle timer, pauses an active one and resumes a paused
// one.
func (m *Model) togglePlay() {
	snap := m.timer.Snapshot()

	switch {
	case !snap.Running:
		m.timer.Start()
	case snap.Paused:
		m.timer.Resume()
	default:
		m.timer.Pause()
	}
}

// adjustSession changes the session length by whole minutes. A running
// session keeps its end time.
func (m *Model) adjustSession(delta int64) {
	minutes := int64(m.timer.SessionLength() / time.Minute)

	m.timer.SetSessionLength(settings.ClampMinutes(minutes+delta), 0)
}
