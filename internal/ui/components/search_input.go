package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rebelice/lazystay/internal/ui/theme"
)

// SearchInputMsg is sent whenever the search text changes
type SearchInputMsg struct {
	Query string
}

// CloseSearchMsg is sent when search input loses focus.
// Keep is false when the search was cancelled and should be cleared.
type CloseSearchMsg struct {
	Keep bool
}

// SearchInput provides a search input box
type SearchInput struct {
	Input   textinput.Model
	Theme   theme.Theme
	Width   int
	Visible bool
}

// NewSearchInput creates a new search input
func NewSearchInput(th theme.Theme) *SearchInput {
	ti := textinput.New()
	ti.Placeholder = "Search by name..."
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 40

	return &SearchInput{
		Input: ti,
		Theme: th,
	}
}

// Value returns the current search text
func (s *SearchInput) Value() string {
	return s.Input.Value()
}

// SetValue replaces the search text
func (s *SearchInput) SetValue(v string) {
	s.Input.SetValue(v)
}

// Reset clears the search input
func (s *SearchInput) Reset() {
	s.Input.SetValue("")
}

// Update handles messages
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			return s, func() tea.Msg {
				return CloseSearchMsg{Keep: true}
			}
		case "esc":
			s.Reset()
			return s, tea.Batch(
				func() tea.Msg { return SearchInputMsg{Query: ""} },
				func() tea.Msg { return CloseSearchMsg{Keep: false} },
			)
		}
	}

	before := s.Input.Value()
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)

	if after := s.Input.Value(); after != before {
		changed := func() tea.Msg { return SearchInputMsg{Query: after} }
		return s, tea.Batch(cmd, changed)
	}
	return s, cmd
}

// View renders the search input
func (s *SearchInput) View() string {
	// Calculate input width
	inputWidth := s.Width - 12 // Reserve space for icon and padding
	if inputWidth < 20 {
		inputWidth = 20
	}
	s.Input.Width = inputWidth

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Theme.BorderFocused).
		Padding(0, 1).
		Width(s.Width)

	helpStyle := lipgloss.NewStyle().
		Foreground(s.Theme.Muted).
		Italic(true)

	content := "🔍 " + s.Input.View()
	helpText := helpStyle.Render("Enter: keep │ Esc: clear")

	return boxStyle.Render(content + "\n" + helpText)
}
