package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rebelice/lazystay/internal/ui/theme"
)

// ErrorOverlay shows a dismissable error box
type ErrorOverlay struct {
	Title   string
	Message string
	Width   int
	Theme   theme.Theme
}

// NewErrorOverlay creates an empty error overlay
func NewErrorOverlay(th theme.Theme) *ErrorOverlay {
	return &ErrorOverlay{Width: 60, Theme: th}
}

// SetError sets the title and message to display
func (e *ErrorOverlay) SetError(title, message string) {
	e.Title = title
	e.Message = message
}

// View renders the overlay
func (e *ErrorOverlay) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(e.Theme.Error)

	messageStyle := lipgloss.NewStyle().
		Foreground(e.Theme.Foreground).
		Width(e.Width - 6)

	hintStyle := lipgloss.NewStyle().
		Foreground(e.Theme.Muted).
		Italic(true)

	content := titleStyle.Render("✗ "+e.Title) + "\n\n" +
		messageStyle.Render(e.Message) + "\n\n" +
		hintStyle.Render("Press Enter or Esc to dismiss")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(e.Theme.Error).
		Padding(1, 2).
		Width(e.Width).
		Render(content)
}
