package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Fetch   key.Binding
	Details key.Binding
	Up      key.Binding
	Down    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Fetch: key.NewBinding(
			key.WithKeys("f", "r"),
			key.WithHelp("f", "fetch movies"),
		),
		Details: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "opening crawl"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fetch, k.Details, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fetch, k.Details},
		{k.Up, k.Down},
		{k.Help, k.Quit},
	}
}
