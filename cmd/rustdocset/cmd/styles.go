package cmd

import "github.com/charmbracelet/lipgloss"

var (
	// successStyle for completed-run messages
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// errorStyle for error indicators
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)
