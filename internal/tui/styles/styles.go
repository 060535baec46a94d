// Package styles defines shared lipgloss styles for the viewer.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#1F77B4") // Matches the first bar color
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text

	// TitleStyle for the header line
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// SubtleStyle for hints and the date range
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// StatusBarStyle for bottom status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)
)
