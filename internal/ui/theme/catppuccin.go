package theme

import "github.com/charmbracelet/lipgloss"

// CatppuccinMochaTheme returns the Catppuccin Mocha theme
// Based on: https://github.com/catppuccin/catppuccin
func CatppuccinMochaTheme() Theme {
	return Theme{
		Name: "catppuccin-mocha",

		// Background colors
		Background: lipgloss.Color("#1e1e2e"), // Base
		Foreground: lipgloss.Color("#cdd6f4"), // Text
		Muted:      lipgloss.Color("#6c7086"), // Overlay0

		// UI elements
		Border:        lipgloss.Color("#45475a"), // Surface1
		BorderFocused: lipgloss.Color("#89b4fa"), // Blue
		Selection:     lipgloss.Color("#313244"), // Surface0
		Cursor:        lipgloss.Color("#f5e0dc"), // Rosewater

		// Status colors
		Success: lipgloss.Color("#a6e3a1"), // Green
		Warning: lipgloss.Color("#f9e2af"), // Yellow
		Error:   lipgloss.Color("#f38ba8"), // Red
		Info:    lipgloss.Color("#89dceb"), // Sky

		// Filter sheet
		TabActive:   lipgloss.Color("#cba6f7"), // Mauve
		TabInactive: lipgloss.Color("#585b70"), // Surface2
		Checked:     lipgloss.Color("#a6e3a1"), // Green
		Badge:       lipgloss.Color("#f5c2e7"), // Pink

		// Record cards
		CardTitle: lipgloss.Color("#b4befe"), // Lavender
		Amount:    lipgloss.Color("#fab387"), // Peach
	}
}
