// internal/tui/layout.go
//
// lipgloss styles for the game screen.

package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title       lipgloss.Style
	input       lipgloss.Style
	cursor      lipgloss.Style
	placeholder lipgloss.Style
	count       lipgloss.Style
	alert       lipgloss.Style
	alertTitle  lipgloss.Style
	button      lipgloss.Style
	help        lipgloss.Style
}

func newStyles() styles {
	accentColor := lipgloss.Color("#FF87D7")
	borderColor := lipgloss.Color("#5F5FAF")
	alertColor := lipgloss.Color("#FF5F5F")
	dimColor := lipgloss.Color("#6C6C6C")

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			Padding(0, 1),

		input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1),

		cursor: lipgloss.NewStyle().
			Reverse(true),

		placeholder: lipgloss.NewStyle().
			Foreground(dimColor),

		count: lipgloss.NewStyle().
			Foreground(accentColor),

		alert: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(alertColor).
			Padding(0, 1),

		alertTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(alertColor),

		button: lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor),

		help: lipgloss.NewStyle().
			Foreground(dimColor),
	}
}
