package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Start      key.Binding
	Stop       key.Binding
	PrevMode   key.Binding
	NextMode   key.Binding
	Theme      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.NextMode, k.Theme, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Stop},
		{k.PrevMode, k.NextMode, k.Theme},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings. Targets are clicked with the mouse.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("s", "enter", " "),
			key.WithHelp("s/enter", "start"),
		),
		Stop: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc/x", "stop round"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("up/k", "prev mode"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("down", "j", "m", "tab"),
			key.WithHelp("m/down", "next mode"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
