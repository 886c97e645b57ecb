package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/pomo/internal/status"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/timer"
)

func (m *Model) labelStyle() lipgloss.Style {
	switch {
	case m.snap.Mode == timer.Break && m.snap.Long:
		return m.styles.LongBreak
	case m.snap.Mode == timer.Break:
		return m.styles.Break
	}

	return m.styles.Session
}

func (m *Model) stateView() string {
	switch {
	case !m.snap.Running:
		return m.styles.Hint.Render("[Stopped]")
	case m.snap.Paused:
		return m.styles.Secondary.Render("[Paused]")
	}

	timeFormat := "03:04:05 PM"
	if m.opts.TwentyFourHour {
		timeFormat = "15:04:05"
	}

	return m.styles.Hint.Render("until " + m.snap.EndTime.Format(timeFormat))
}

func (m *Model) settingsView() string {
	long := "off"
	if m.settings.LongBreakEnabled() {
		long = "on"
	}

	return m.styles.Hint.Render(fmt.Sprintf(
		"session %s · break %s · long breaks %s",
		formatLength(m.timer.SessionLength()),
		formatLength(m.timer.BreakLength()),
		long,
	))
}

func (m *Model) timerView() string {
	var s strings.Builder

	label := status.Status{
		Mode:       m.snap.Mode,
		BreakCount: m.snap.BreakCount,
		Long:       m.snap.Long,
	}.Label()

	s.WriteString(m.labelStyle().Render(label))
	s.WriteString(m.stateView())
	s.WriteString("\n\n")
	s.WriteString(m.styles.Main.Render(timeutil.FormatRemaining(m.snap.Remaining)))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.snap.Elapsed()))
	s.WriteString("\n\n")
	s.WriteString(m.settingsView())
	s.WriteString("\n\n")
	s.WriteString(m.help.ShortHelpView(defaultKeymap.ShortHelp()))

	return s.String()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	return m.styles.Base.Render(m.timerView())
}

// formatLength renders an interval length compactly, e.g. "25m" or "1m30s".
func formatLength(d time.Duration) string {
	d = d.Round(time.Second)

	if d%time.Minute == 0 {
		return fmt.Sprintf("%dm", int64(d/time.Minute))
	}

	return d.String()
}
