// Package tui is the interactive terminal front end of the timer. It polls the
// timer for a snapshot on every refresh and never changes timer state except
// in response to a key press.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/pomo/internal/ui"
	"github.com/ayoisaiah/pomo/timer"
)

const (
	padding  = 2
	maxWidth = 80

	defaultRefresh = 50 * time.Millisecond
)

// Timer is the subset of *timer.Timer driven by the interface.
type Timer interface {
	Start()
	Pause()
	Resume()
	Stop()
	Reset()
	Snapshot() timer.Snapshot
	SessionLength() time.Duration
	BreakLength() time.Duration
	SetSessionLength(minutes, seconds int64)
}

// Settings exposes the preferences that can be changed from the interface.
type Settings interface {
	LongBreakEnabled() bool
	ToggleLongBreak() bool
}

// Options configures the model.
type Options struct {
	RefreshInterval time.Duration
	TwentyFourHour  bool
	LightMode       bool
}

type tickMsg time.Time

// Model is the bubbletea model of the timer screen.
type Model struct {
	timer    Timer
	settings Settings
	styles   ui.Styles
	help     help.Model
	progress progress.Model
	snap     timer.Snapshot
	opts     Options
	quitting bool
}

// New returns a model that controls t.
func New(t Timer, s Settings, opts Options) *Model {
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = defaultRefresh
	}

	m := &Model{
		timer:    t,
		settings: s,
		opts:     opts,
		styles:   ui.NewStyles(opts.LightMode),
		help:     help.New(),
		progress: progress.New(
			progress.WithSolidFill(ui.Accent(opts.LightMode, false, false)),
			progress.WithoutPercentage(),
		),
	}

	m.refresh()

	return m
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.opts.RefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh reads a new snapshot.
func (m *Model) refresh() {
	m.snap = m.timer.Snapshot()
	m.progress.FullColor = ui.Accent(
		m.opts.LightMode,
		m.snap.Mode == timer.Break,
		m.snap.Long,
	)
}
