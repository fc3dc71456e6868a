package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Panels    [4]key.Binding
	NextPanel key.Binding
	PrevPanel key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Panels: [4]key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "prescription")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "diagnosis")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "interactions")),
			key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "telemedicine")),
		},
		NextPanel: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next panel"),
		),
		PrevPanel: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous panel"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}
