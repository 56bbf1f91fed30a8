package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the timer key bindings with built-in help text.
type KeyMap struct {
	Start  key.Binding
	Stop   key.Binding
	Pause  key.Binding
	Reset  key.Binding
	Lap    key.Binding
	Switch key.Binding
	Help   key.Binding
	Quit   key.Binding

	// Duration form
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Stop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause/resume"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Lap: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "lap"),
		),
		Switch: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "switch mode"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start countdown"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Start, keys.Stop, keys.Pause, keys.Reset, keys.Help, keys.Quit}
}

// FullHelp implements help.KeyMap.
func (keys KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.Start, keys.Stop, keys.Pause},
		{keys.Reset, keys.Lap, keys.Switch},
		{keys.Help, keys.Quit},
	}
}

// formKeys is the help shown while the duration form is open.
type formKeys KeyMap

func (keys formKeys) ShortHelp() []key.Binding {
	return []key.Binding{keys.NextField, keys.Submit, keys.Cancel}
}

func (keys formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{keys.ShortHelp()}
}
