package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme and styling
type Theme struct {
	Name string

	// Background colors
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color

	// UI elements
	Border        lipgloss.Color
	BorderFocused lipgloss.Color
	Selection     lipgloss.Color
	Cursor        lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Filter sheet
	TabActive   lipgloss.Color
	TabInactive lipgloss.Color
	Checked     lipgloss.Color
	Badge       lipgloss.Color

	// Record cards
	CardTitle lipgloss.Color
	Amount    lipgloss.Color
}

// Names lists the selectable themes
var Names = []string{"default", "catppuccin-mocha"}

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha", "catppuccin":
		return CatppuccinMochaTheme()
	default:
		return DefaultTheme()
	}
}

// StatusColor maps a record status label to a color
func (t Theme) StatusColor(label string) lipgloss.Color {
	switch label {
	case "Active", "Booked", "Vacant":
		return t.Success
	case "Dues", "Partially Filled", "Notice":
		return t.Warning
	case "Cancelled", "Left", "Under Maintenance":
		return t.Error
	case "Expired", "Full":
		return t.Muted
	default:
		return t.Info
	}
}
