// Package tui implements the interactive component gallery.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/components"
	"github.com/alexisbeaulieu97/themekit/internal/preview"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

const (
	progressStep = 0.1
	menuRows     = 3
)

// Model contains the Bubbletea state for the gallery.
type Model struct {
	renderer *preview.Renderer
	ctx      components.RenderContext
	opts     preview.SampleOptions
	help     help.Model

	width  int
	height int
}

// NewModel constructs a gallery drawing with renderer under ctx.
func NewModel(renderer *preview.Renderer, ctx components.RenderContext) Model {
	return Model{
		renderer: renderer,
		ctx:      ctx,
		opts:     preview.DefaultSampleOptions(),
		help:     help.New(),
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Theme returns the theme the gallery currently renders with.
func (m Model) Theme() theme.Theme {
	return m.ctx.Theme
}

// Options returns the current sample options.
func (m Model) Options() preview.SampleOptions {
	return m.opts
}

func (m *Model) toggleTheme() {
	if m.ctx.Theme == theme.IOS {
		m.ctx = m.ctx.WithTheme(theme.Material)
		return
	}
	m.ctx = m.ctx.WithTheme(theme.IOS)
}

func (m *Model) toggleMenu() {
	m.opts.Menu = !m.opts.Menu
	if m.opts.Menu && m.opts.ActiveIndex < 0 {
		m.opts.ActiveIndex = 0
	}
}

func (m *Model) cycleStrong() {
	switch m.opts.Strong {
	case components.StrongTitleAuto:
		m.opts.Strong = components.StrongTitleOn
	case components.StrongTitleOn:
		m.opts.Strong = components.StrongTitleOff
	default:
		m.opts.Strong = components.StrongTitleAuto
	}
}

func (m *Model) moveActive(delta int) {
	if !m.opts.Menu {
		return
	}
	m.opts.ActiveIndex = (m.opts.ActiveIndex + delta + menuRows) % menuRows
}

func (m *Model) addProgress(delta float64) {
	p := m.opts.Progress + delta
	switch {
	case p < 0:
		p = 0
	case p > 1:
		p = 1
	}
	m.opts.Progress = p
}
