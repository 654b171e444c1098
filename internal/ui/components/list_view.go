package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rebelice/lazystay/internal/ui/theme"
)

// cardLines is the number of content lines every card renders
const cardLines = 4

// Card is one record rendered in the list grid
type Card struct {
	Title  string
	Status string
	Lines  []string
	Amount string
}

// ListView lays record cards out in a scrolling grid
type ListView struct {
	Width     int
	Height    int
	CardWidth int
	Theme     theme.Theme

	cards    []Card
	selected int
	topRow   int
	empty    string
}

// NewListView creates an empty list view
func NewListView(th theme.Theme, cardWidth int) *ListView {
	return &ListView{
		CardWidth: cardWidth,
		Theme:     th,
		empty:     "Nothing to show",
	}
}

// SetCards replaces the cards and keeps the selection in range
func (lv *ListView) SetCards(cards []Card) {
	lv.cards = cards
	if lv.selected >= len(cards) {
		lv.selected = max(len(cards)-1, 0)
	}
	lv.ensureVisible()
}

// SetEmptyMessage sets the text shown when there are no cards
func (lv *ListView) SetEmptyMessage(msg string) {
	lv.empty = msg
}

// Len returns the number of cards
func (lv *ListView) Len() int {
	return len(lv.cards)
}

// Selected returns the index of the selected card
func (lv *ListView) Selected() int {
	return lv.selected
}

// columns returns how many cards fit side by side
func (lv *ListView) columns() int {
	// Border takes two columns per card
	cols := lv.Width / (lv.CardWidth + 2)
	return max(cols, 1)
}

// visibleRows returns how many card rows fit vertically
func (lv *ListView) visibleRows() int {
	// Border takes two lines per card
	rows := lv.Height / (cardLines + 2)
	return max(rows, 1)
}

// MoveSelection moves the selection by delta cards
func (lv *ListView) MoveSelection(delta int) {
	if len(lv.cards) == 0 {
		return
	}
	lv.selected = min(max(lv.selected+delta, 0), len(lv.cards)-1)
	lv.ensureVisible()
}

// MoveRow moves the selection by delta rows of cards
func (lv *ListView) MoveRow(delta int) {
	lv.MoveSelection(delta * lv.columns())
}

func (lv *ListView) ensureVisible() {
	row := lv.selected / lv.columns()
	if row < lv.topRow {
		lv.topRow = row
	}
	if row >= lv.topRow+lv.visibleRows() {
		lv.topRow = row - lv.visibleRows() + 1
	}
}

// View renders the visible part of the grid
func (lv *ListView) View() string {
	if len(lv.cards) == 0 {
		return lipgloss.NewStyle().
			Foreground(lv.Theme.Muted).
			Italic(true).
			Padding(1, 2).
			Render(lv.empty)
	}

	cols := lv.columns()
	start := lv.topRow * cols
	end := min(start+lv.visibleRows()*cols, len(lv.cards))

	var rows []string
	for rowStart := start; rowStart < end; rowStart += cols {
		var row []string
		for i := rowStart; i < min(rowStart+cols, end); i++ {
			row = append(row, lv.renderCard(lv.cards[i], i == lv.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (lv *ListView) renderCard(c Card, selected bool) string {
	inner := lv.CardWidth - 2 // horizontal padding

	status := ""
	if c.Status != "" {
		status = lipgloss.NewStyle().Foreground(lv.Theme.StatusColor(c.Status)).Render(c.Status)
	}
	titleWidth := inner - runewidth.StringWidth(c.Status) - 1
	title := lipgloss.NewStyle().Bold(true).Foreground(lv.Theme.CardTitle).
		Render(truncate(c.Title, titleWidth))
	gap := inner - runewidth.StringWidth(truncate(c.Title, titleWidth)) - runewidth.StringWidth(c.Status)
	header := title + strings.Repeat(" ", max(gap, 1)) + status

	lines := []string{header}
	for _, l := range c.Lines {
		if len(lines) == cardLines-1 {
			break
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(lv.Theme.Foreground).Render(truncate(l, inner)))
	}
	for len(lines) < cardLines-1 {
		lines = append(lines, "")
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(lv.Theme.Amount).Render(truncate(c.Amount, inner)))

	border := lv.Theme.Border
	if selected {
		border = lv.Theme.BorderFocused
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(lv.CardWidth).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// truncate shortens s to width display cells
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
