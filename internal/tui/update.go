package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Theme):
		m.toggleTheme()
	case key.Matches(msg, keys.Menu):
		m.toggleMenu()
	case key.Matches(msg, keys.Strong):
		m.cycleStrong()
	case key.Matches(msg, keys.Up):
		m.moveActive(-1)
	case key.Matches(msg, keys.Down):
		m.moveActive(1)
	case key.Matches(msg, keys.More):
		m.addProgress(progressStep)
	case key.Matches(msg, keys.Less):
		m.addProgress(-progressStep)
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}
