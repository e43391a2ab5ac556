// Package ui provides consistent styling for splendctl's terminal output
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - consistent across the application
var (
	ColorPrimary = lipgloss.Color("39")  // Bright blue
	ColorSuccess = lipgloss.Color("82")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorInfo    = lipgloss.Color("86")  // Cyan
	ColorText    = lipgloss.Color("252") // Light gray
	ColorSubtle  = lipgloss.Color("241") // Medium gray
	ColorMuted   = lipgloss.Color("238") // Dark gray
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubheaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSubtle).
			Padding(0, 2)
)

// FormatHeader renders a title line with an optional subtitle.
func FormatHeader(title, subtitle string) string {
	out := HeaderStyle.Render(title)
	if subtitle != "" {
		out += " " + SubtleStyle.Render(subtitle)
	}
	return out
}

// Separator returns a horizontal rule of the given width.
func Separator(width int) string {
	return SubtleStyle.Render(strings.Repeat("─", width))
}
