package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/cwarden/agenda/internal/config"
)

func (m *Model) viewCalendar() string {
	lines := strings.Split(m.screen.Frame(), "\n")

	// Keep the status line on the last row.
	for len(lines) < m.height-1 {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n") + "\n" + m.renderStatusBar()
}

func (m *Model) viewHelp() string {
	key := func(action string) string {
		return strings.Join(m.config.KeysFor(action), "/")
	}

	help := []string{
		m.styles.Header.Render("Agenda Help"),
		"",
		m.styles.Normal.Render("Mouse:"),
		m.styles.Help.Render("  hover a day      - Show its events"),
		m.styles.Help.Render("  leave the grid   - Show this week"),
		"",
		m.styles.Normal.Render("Keys:"),
		m.styles.Help.Render(fmt.Sprintf("  %-16s - Back to the current year", key(config.ActionToday))),
		m.styles.Help.Render(fmt.Sprintf("  %-16s - Next year", key(config.ActionNextYear))),
		m.styles.Help.Render(fmt.Sprintf("  %-16s - Previous year", key(config.ActionPrevYear))),
		m.styles.Help.Render(fmt.Sprintf("  %-16s - Reload files", key(config.ActionReload))),
		m.styles.Help.Render(fmt.Sprintf("  %-16s - Toggle help", key(config.ActionHelp))),
		m.styles.Help.Render(fmt.Sprintf("  %-16s - Quit", key(config.ActionQuit))),
		"",
		m.styles.Help.Render("Press any key to return..."),
	}

	return lipgloss.JoinVertical(lipgloss.Left, help...)
}

func (m *Model) renderStatusBar() string {
	left := fmt.Sprintf(" %d", m.agenda.Year)
	if day, ok := m.Selected(); ok {
		left += fmt.Sprintf(" | %s | Events: %d", day.Format("Mon Jan 2, 2006"), len(m.agenda.Events(day)))
		if label, ok := m.agenda.Holiday(day); ok && label != "" {
			left += " | " + label
		}
	}

	right := "? for help | q to quit"
	if m.message != "" {
		right = m.styles.Message.Render(m.message)
	}

	width := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if width < 0 {
		width = 0
	}

	middle := strings.Repeat(" ", width)

	return m.styles.Status.Render(left + middle + right)
}
