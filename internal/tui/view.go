package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/components"
	"github.com/alexisbeaulieu97/themekit/internal/preview"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	title := titleStyle.Render(fmt.Sprintf("themekit • %s", m.themeLabel()))
	sections = append(sections, title, m.status())

	list, err := m.renderer.List(m.items(), m.ctx)
	if err != nil {
		sections = append(sections, failureStyle.Render(err.Error()))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}
	sections = append(sections, sectionStyle.Render("List"), list)

	bar, err := m.renderer.Progressbar(m.progressbar(), m.ctx)
	if err != nil {
		sections = append(sections, failureStyle.Render(err.Error()))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}
	sections = append(sections,
		sectionStyle.Render(fmt.Sprintf("Progress %d%%", int(m.opts.Progress*100+0.5))),
		bar,
	)

	sections = append(sections, helpStyle.Render(m.help.View(keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) themeLabel() string {
	if m.ctx.Theme == "" {
		return "no theme"
	}
	return m.ctx.Theme.String()
}

func (m Model) status() string {
	var parts []string
	if m.opts.Menu {
		parts = append(parts, fmt.Sprintf("menu row %d active", m.opts.ActiveIndex+1))
	} else {
		parts = append(parts, "settings rows")
	}
	parts = append(parts, "strong title: "+strengthLabel(m.opts.Strong))
	return strings.Join(parts, " · ")
}

func (m Model) items() []*components.ListItem {
	return preview.SampleItems(m.opts)
}

func (m Model) progressbar() *components.Progressbar {
	return preview.SampleProgressbar(m.opts)
}

func strengthLabel(s components.TitleStrength) string {
	switch s {
	case components.StrongTitleOn:
		return "on"
	case components.StrongTitleOff:
		return "off"
	default:
		return "auto"
	}
}
