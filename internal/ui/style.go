package ui

import "github.com/charmbracelet/lipgloss"

const padding = 2

type palette struct {
	session   string
	brk       string
	longBreak string
	text      string
	muted     string
}

var (
	darkPalette = palette{
		session:   "#B0DB43",
		brk:       "#12EAEA",
		longBreak: "#C492B1",
		text:      "#FFFFFF",
		muted:     "#7A7A7A",
	}

	lightPalette = palette{
		session:   "#4F7A0A",
		brk:       "#0A7E8C",
		longBreak: "#7B3F6E",
		text:      "#1A1A1A",
		muted:     "#6B6B6B",
	}
)

// Styles holds the lipgloss styles of the interactive timer.
type Styles struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Session   lipgloss.Style
	Break     lipgloss.Style
	LongBreak lipgloss.Style
}

// NewStyles returns the styles for a light or dark terminal.
func NewStyles(light bool) Styles {
	p := darkPalette
	if light {
		p = lightPalette
	}

	label := lipgloss.NewStyle().Bold(true).MarginRight(1)

	return Styles{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.text)),
		Secondary: lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		Session:   label.Foreground(lipgloss.Color(p.session)),
		Break:     label.Foreground(lipgloss.Color(p.brk)),
		LongBreak: label.Foreground(lipgloss.Color(p.longBreak)),
	}
}

// Accent returns the colour associated with an interval, for the progress
// bar.
func Accent(light, isBreak, long bool) string {
	p := darkPalette
	if light {
		p = lightPalette
	}

	switch {
	case isBreak && long:
		return p.longBreak
	case isBreak:
		return p.brk
	}

	return p.session
}
