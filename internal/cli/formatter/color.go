package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/planboard/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// AlertStyle returns the style for a day's alert level.
func AlertStyle(level domain.AlertLevel) lipgloss.Style {
	switch level {
	case domain.AlertCritical:
		return StyleRed
	case domain.AlertWarning:
		return StyleYellow
	default:
		return StyleDim
	}
}

// StatusStyle returns the style for an element status.
func StatusStyle(status domain.ElementStatus) lipgloss.Style {
	switch status {
	case domain.ElementValidated, domain.ElementFinished:
		return StyleGreen
	case domain.ElementInProgress:
		return StyleBlue
	default:
		return StyleFg
	}
}
