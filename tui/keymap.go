package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	stop       key.Binding
	reset      key.Binding
	longBreak  key.Binding
	increase   key.Binding
	decrease   key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "start/pause"),
	),
	stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	longBreak: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "long breaks"),
	),
	increase: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+/-", "session length"),
	),
	decrease: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "shorter session"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.togglePlay,
		k.stop,
		k.reset,
		k.longBreak,
		k.increase,
		k.quit,
	}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.togglePlay, k.stop, k.reset},
		{k.longBreak, k.increase, k.decrease, k.quit},
	}
}
