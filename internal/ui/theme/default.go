package theme

import "github.com/charmbracelet/lipgloss"

// DefaultTheme returns the default dark theme
func DefaultTheme() Theme {
	return Theme{
		Name: "default",

		// Background colors
		Background: lipgloss.Color("235"),
		Foreground: lipgloss.Color("252"),
		Muted:      lipgloss.Color("244"),

		// UI elements
		Border:        lipgloss.Color("240"),
		BorderFocused: lipgloss.Color("62"),
		Selection:     lipgloss.Color("237"),
		Cursor:        lipgloss.Color("248"),

		// Status colors
		Success: lipgloss.Color("42"),
		Warning: lipgloss.Color("220"),
		Error:   lipgloss.Color("196"),
		Info:    lipgloss.Color("75"),

		// Filter sheet
		TabActive:   lipgloss.Color("62"),
		TabInactive: lipgloss.Color("240"),
		Checked:     lipgloss.Color("42"),
		Badge:       lipgloss.Color("205"),

		// Record cards
		CardTitle: lipgloss.Color("117"),
		Amount:    lipgloss.Color("150"),
	}
}
