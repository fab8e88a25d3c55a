package ui

import "github.com/charmbracelet/lipgloss"

// Styles used by the list renderer and the TUI. Kept in one place so both
// surfaces stay visually consistent.
var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	priorityStyles = map[string]lipgloss.Style{
		"high":   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		"medium": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"low":    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	}
)

func priorityStyle(p string) lipgloss.Style {
	if s, ok := priorityStyles[p]; ok {
		return s
	}
	return mutedStyle
}
