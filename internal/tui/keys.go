package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Theme  key.Binding
	Menu   key.Binding
	Strong key.Binding
	Up     key.Binding
	Down   key.Binding
	More   key.Binding
	Less   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle theme"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "menu rows"),
	),
	Strong: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "title strength"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous row"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next row"),
	),
	More: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "more progress"),
	),
	Less: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "less progress"),
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

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Theme, k.Menu, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Theme, k.Menu, k.Strong},
		{k.Up, k.Down},
		{k.More, k.Less},
		{k.Help, k.Quit},
	}
}
