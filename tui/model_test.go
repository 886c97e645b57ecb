package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/settings"
	"github.com/ayoisaiah/pomo/timer"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func newTestModel(t *testing.T) (*Model, *timer.Timer, *settings.Provider) {
	t.Helper()

	prefs := settings.New(settings.Defaults())
	tm := timer.New(prefs, timer.WithClock(clockwork.NewFakeClock()))

	t.Cleanup(tm.Shutdown)

	return New(tm, prefs, Options{}), tm, prefs
}

func press(m *Model, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}

	return cmd
}

func TestTogglePlay(t *testing.T) {
	m, tm, _ := newTestModel(t)

	press(m, spaceKey)
	assert.True(t, tm.IsRunning())
	assert.False(t, tm.IsPaused())
	assert.True(t, m.snap.Running, "snapshot refreshed after a key press")

	press(m, spaceKey)
	assert.True(t, tm.IsPaused())

	press(m, spaceKey)
	assert.True(t, tm.IsRunning())
	assert.False(t, tm.IsPaused())
}

func TestStopAndReset(t *testing.T) {
	m, tm, prefs := newTestModel(t)

	press(m, spaceKey, runeKey('s'))
	assert.False(t, tm.IsRunning())

	prefs.SetSessionLength(40, 0)
	press(m, spaceKey, runeKey('r'))

	assert.False(t, tm.IsRunning())
	assert.Equal(t, 25*time.Minute, prefs.SessionLength())
	assert.Equal(t, 25*time.Minute, m.snap.Remaining)
}

func TestToggleLongBreak(t *testing.T) {
	m, _, prefs := newTestModel(t)

	press(m, runeKey('l'))
	assert.True(t, prefs.LongBreakEnabled())

	press(m, runeKey('l'))
	assert.False(t, prefs.LongBreakEnabled())
}

func TestAdjustSession(t *testing.T) {
	m, _, prefs := newTestModel(t)

	press(m, runeKey('+'), runeKey('+'))
	assert.Equal(t, 27*time.Minute, prefs.SessionLength())

	press(m, runeKey('-'))
	assert.Equal(t, 26*time.Minute, prefs.SessionLength())

	prefs.SetSessionLength(60, 0)
	press(m, runeKey('+'))
	assert.Equal(t, 60*time.Minute, prefs.SessionLength(), "clamped to an hour")

	prefs.SetSessionLength(1, 0)
	press(m, runeKey('-'))
	assert.Equal(t, time.Minute, prefs.SessionLength(), "clamped to a minute")
}

func TestAdjustSessionKeepsRunningEndTime(t *testing.T) {
	m, tm, _ := newTestModel(t)

	press(m, spaceKey)
	end := tm.Snapshot().EndTime

	press(m, runeKey('+'))

	assert.Equal(t, end, tm.Snapshot().EndTime)
	assert.Equal(t, 26*time.Minute, tm.SessionLength())
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		m, _, _ := newTestModel(t)

		cmd := press(m, msg)
		require.NotNil(t, cmd)

		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok)
		assert.Empty(t, m.View())
	}
}

func TestTickRefreshesSnapshot(t *testing.T) {
	m, tm, _ := newTestModel(t)

	tm.Start()
	assert.False(t, m.snap.Running, "state is only read on refresh")

	_, cmd := m.Update(tickMsg(time.Now()))

	assert.True(t, m.snap.Running)
	assert.NotNil(t, cmd, "ticking continues")
}

func TestView(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := m.View()

	assert.Contains(t, view, "[Session]")
	assert.Contains(t, view, "[Stopped]")
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "long breaks off")

	press(m, spaceKey, spaceKey)

	assert.Contains(t, m.View(), "[Paused]")
}

func TestWindowSize(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	assert.Equal(t, 42, m.progress.Width)

	m.Update(tea.WindowSizeMsg{Width: 300, Height: 20})
	assert.Equal(t, maxWidth, m.progress.Width)
}

func TestFormatLength(t *testing.T) {
	assert.Equal(t, "25m", formatLength(25*time.Minute))
	assert.Equal(t, "1m30s", formatLength(90*time.Second))
	assert.Equal(t, "45s", formatLength(45*time.Second))
}
