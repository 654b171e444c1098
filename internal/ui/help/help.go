package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rebelice/lazystay/internal/ui/theme"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key         string
	Description string
}

// Section is a titled group of key bindings
type Section struct {
	Title string
	Keys  []KeyBinding
}

// GetGlobalKeys returns global key bindings
func GetGlobalKeys() []KeyBinding {
	return []KeyBinding{
		{"?", "Toggle help"},
		{"q, Ctrl+C", "Quit application"},
		{"Esc/Enter", "Dismiss error"},
		{"1-4", "Rooms, Tenants, Advance Bookings, Expenses"},
		{"Tab/Shift+Tab", "Next/previous list"},
		{"r, F5", "Reload records"},
		{"Ctrl+R", "Reset saved filters of every list"},
	}
}

// GetListKeys returns list screen key bindings
func GetListKeys() []KeyBinding {
	return []KeyBinding{
		{"↑/k ↓/j", "Move selection"},
		{"/", "Search"},
		{"f", "Open filter sheet"},
		{"x", "Clear filters"},
		{"p", "Filter presets"},
		{"s", "Save filters as preset"},
		{"e", "Export visible to CSV"},
		{"E", "Export visible to JSON"},
		{"X", "Export visible to XLSX"},
		{"y", "Copy visible to clipboard"},
	}
}

// GetFilterSheetKeys returns filter sheet key bindings
func GetFilterSheetKeys() []KeyBinding {
	return []KeyBinding{
		{"Tab/l, Shift+Tab/h", "Next/previous section"},
		{"↑/k ↓/j", "Move cursor"},
		{"Space", "Toggle option"},
		{"[ ]", "From date back/forward a day"},
		{"{ }", "To date back/forward a day"},
		{"t", "Set date to today"},
		{"Backspace", "Clear date"},
		{"c", "Clear all"},
		{"Enter", "Apply"},
		{"Esc", "Close without applying"},
	}
}

// GetPresetKeys returns preset dialog key bindings
func GetPresetKeys() []KeyBinding {
	return []KeyBinding{
		{"Enter", "Apply preset"},
		{"d", "Delete preset"},
		{"R", "Rename preset"},
		{"Esc", "Close"},
	}
}

// Sections returns every help section in display order
func Sections() []Section {
	return []Section{
		{"Global", GetGlobalKeys()},
		{"Lists", GetListKeys()},
		{"Filter Sheet", GetFilterSheetKeys()},
		{"Presets", GetPresetKeys()},
	}
}

// Render creates the help view
func Render(width, height int, th theme.Theme) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(th.BorderFocused).
		Padding(1, 0)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(th.Info).
		Padding(0, 0, 0, 2)

	keyStyle := lipgloss.NewStyle().
		Foreground(th.Warning).
		Width(22)

	descStyle := lipgloss.NewStyle().
		Foreground(th.Foreground)

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("lazystay - Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for _, sec := range Sections() {
		b.WriteString(sectionStyle.Render(sec.Title))
		b.WriteString("\n")
		for _, kb := range sec.Keys {
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(kb.Key))
			b.WriteString(descStyle.Render(kb.Description))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Faint(true).Render("Press '?' or Esc to close help"))

	// Wrap in a box
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.BorderFocused).
		Padding(1, 2).
		Width(max(width-4, 20)).
		Height(max(height-4, 10))

	return boxStyle.Render(b.String())
}
