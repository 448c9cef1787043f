package ui

import "github.com/charmbracelet/lipgloss"

// Gallery chrome. Banner colors never come from here: they are resolved
// per severity and variant by the banner package.
var (
	// Color palette
	colorPrimary = lipgloss.Color("#0288D1") // Info blue
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorNotice  = lipgloss.Color("#2E7D32") // Success green

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Section header styles
	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				MarginTop(1)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 0, 1, 0) // Padding bottom 1

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorNotice).
			Bold(true)
)
