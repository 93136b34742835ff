// Package styles provides shared lipgloss styles for CLI output and prompts.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette
var (
	// Primary is the main accent color (cyan/teal)
	Primary color.Color = lipgloss.Color("62")

	// Accent is the highlight color for selected/active items (pink)
	Accent color.Color = lipgloss.Color("212")

	// Success is used for checkmarks and positive outcomes (green)
	Success color.Color = lipgloss.Color("82")

	// Error is used for error messages (red)
	Error color.Color = lipgloss.Color("196")

	// Warning is used for skipped items (orange)
	Warning color.Color = lipgloss.Color("214")

	// Muted is used for secondary text (gray)
	Muted color.Color = lipgloss.Color("240")
)

// Styles used by commands and prompts. Reassigned by SetColor.
var (
	TitleStyle     lipgloss.Style
	AccentStyle    lipgloss.Style
	SuccessStyle   lipgloss.Style
	ErrorStyle     lipgloss.Style
	WarningStyle   lipgloss.Style
	MutedStyle     lipgloss.Style
	HighlightStyle lipgloss.Style
)

var colorEnabled = true

func init() {
	SetColor(true)
}

// SetColor enables or disables colored styles.
func SetColor(enabled bool) {
	colorEnabled = enabled
	if !enabled {
		plain := lipgloss.NewStyle()
		TitleStyle = plain
		AccentStyle = plain
		SuccessStyle = plain
		ErrorStyle = plain
		WarningStyle = plain
		MutedStyle = plain
		HighlightStyle = plain
		return
	}

	TitleStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	AccentStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(Error).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
	HighlightStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true).Underline(true)
}

// ColorEnabled reports whether colored styles are active.
func ColorEnabled() bool {
	return colorEnabled
}

// Symbols
const (
	SymbolCheck = "✓"
	SymbolCross = "✗"
	SymbolSkip  = "-"
)
