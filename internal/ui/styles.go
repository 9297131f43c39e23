package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
}

// DefaultTheme returns the launcher-branded theme
func DefaultTheme() Theme {
	return Theme{
		Primary:    lipgloss.Color("#1F6FEB"), // Blue
		Secondary:  lipgloss.Color("#FFA500"), // Orange
		Success:    lipgloss.Color("#0FD976"), // Green
		Warning:    lipgloss.Color("#FF6B6B"), // Red
		Foreground: lipgloss.Color("#FFFFFF"), // White
		Muted:      lipgloss.Color("#666666"), // Gray
		Border:     lipgloss.Color("#333333"), // Dark gray
		Highlight:  lipgloss.Color("#FFD700"), // Gold
	}
}

// Styles provides common style builders
type Styles struct {
	Theme Theme
}

// NewStyles creates style builders with the default theme
func NewStyles() *Styles {
	return &Styles{Theme: DefaultTheme()}
}

// Title creates a title style
func (s *Styles) Title() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(s.Theme.Primary).
		Padding(0, 1)
}

// Heading creates a section heading style
func (s *Styles) Heading() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(s.Theme.Secondary).
		Padding(0, 1)
}

// Selected creates the style for the highlighted row
func (s *Styles) Selected() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(s.Theme.Highlight)
}

// Muted creates a muted text style
func (s *Styles) Muted() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.Theme.Muted)
}

// Success creates a success message style
func (s *Styles) Success() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.Theme.Success).
		Bold(true)
}

// Warning creates a warning message style
func (s *Styles) Warning() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.Theme.Warning).
		Bold(true)
}
