package tui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the styles used by the dashboard so the whole interface
// can be swapped between a dark and a light palette at runtime.
type Theme struct {
	Name string

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style

	Income  lipgloss.Style
	Expense lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	Box       lipgloss.Style
	ActiveBox lipgloss.Style
	Help      lipgloss.Style
}

// DarkTheme is the default palette.
func DarkTheme() Theme {
	border := lipgloss.Color("#4ECDC4")
	return Theme{
		Name: "dark",

		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#A8A8B2")),
		Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#E2E2E7")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C76")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1A1A22")).Background(lipgloss.Color("#4ECDC4")),

		Income:  lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		Expense: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD93D")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6BCAFF")),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3A3A44")).
			Padding(0, 1),
		ActiveBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C76")),
	}
}

// LightTheme is the alternate palette for light terminals.
func LightTheme() Theme {
	border := lipgloss.Color("#0E8A82")
	return Theme{
		Name: "light",

		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0E8A82")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#5A5A64")),
		Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#26262E")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A94")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#0E8A82")),

		Income:  lipgloss.NewStyle().Foreground(lipgloss.Color("#0A7D56")),
		Expense: lipgloss.NewStyle().Foreground(lipgloss.Color("#C23B3B")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#0A7D56")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#A87900")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C23B3B")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#2268B0")),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#C8C8D0")).
			Padding(0, 1),
		ActiveBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A94")),
	}
}

// ThemeByName resolves a persisted theme name, falling back to dark for
// anything unrecognized.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}