// Package ui provides the visual styling and shared widgets for the
// back-office dashboard.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Light mode colors
	LightBackground = lipgloss.Color("#f4f5f6")
	LightForeground = lipgloss.Color("#1b2a41")
	LightPrimary    = lipgloss.Color("#1b2a41")
	LightAccent     = lipgloss.Color("#556cd6")
	LightMuted      = lipgloss.Color("#d6dae0")
	LightBorder     = lipgloss.Color("#dce0e5")

	// Dark mode colors
	DarkBackground = lipgloss.Color("#141d2b")
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#7a94ff")
	DarkAccent     = lipgloss.Color("#556cd6")
	DarkMuted      = lipgloss.Color("#2a3850")
	DarkBorder     = lipgloss.Color("#2a3850")

	// Semantic colors, identical in both modes
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#43a047")
	Warning     = lipgloss.Color("#FFC107")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		IsDark:     false,
	}
}

func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// Styles groups every lipgloss style the dashboard renders with.
type Styles struct {
	Theme Theme

	Title      lipgloss.Style
	Tab        lipgloss.Style
	ActiveTab  lipgloss.Style
	Body       lipgloss.Style
	Bold       lipgloss.Style
	Muted      lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
	Success    lipgloss.Style
	Prompt     lipgloss.Style
	Selected   lipgloss.Style
	PendingRow lipgloss.Style
	Modal      lipgloss.Style
	Help       lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title:      lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Tab:        lipgloss.NewStyle().Foreground(theme.Foreground).Padding(0, 1),
		ActiveTab:  lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Underline(true).Padding(0, 1),
		Body:       lipgloss.NewStyle().Foreground(theme.Foreground),
		Bold:       lipgloss.NewStyle().Bold(true).Foreground(theme.Foreground),
		Muted:      lipgloss.NewStyle().Foreground(theme.Muted),
		Error:      lipgloss.NewStyle().Foreground(Destructive),
		Warning:    lipgloss.NewStyle().Foreground(Warning),
		Success:    lipgloss.NewStyle().Foreground(Success),
		Prompt:     lipgloss.NewStyle().Foreground(theme.Accent),
		Selected:   lipgloss.NewStyle().Bold(true).Foreground(theme.Background).Background(theme.Accent),
		PendingRow: lipgloss.NewStyle().Faint(true).Italic(true).Foreground(theme.Muted),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(1, 2),
		Help: lipgloss.NewStyle().Faint(true).Foreground(theme.Muted),
	}
}

// DefaultStyles returns the dark style set.
func DefaultStyles() Styles {
	return NewStyles(DarkTheme())
}
