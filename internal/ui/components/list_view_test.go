package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rebelice/lazystay/internal/ui/theme"
)

func cards(n int) []Card {
	out := make([]Card, n)
	for i := range out {
		out[i] = Card{
			Title:  fmt.Sprintf("Room %d", 100+i),
			Status: "Vacant",
			Lines:  []string{"Floor 1 · 2 sharing"},
			Amount: "₹8500.00 / bed",
		}
	}
	return out
}

func TestListView_EmptyMessage(t *testing.T) {
	lv := NewListView(theme.DefaultTheme(), 30)
	lv.Width, lv.Height = 100, 30
	lv.SetEmptyMessage("No rooms match")

	if !strings.Contains(lv.View(), "No rooms match") {
		t.Errorf("view = %q, want empty message", lv.View())
	}
}

func TestListView_GridNavigation(t *testing.T) {
	lv := NewListView(theme.DefaultTheme(), 30)
	// 100 / 32 = 3 columns
	lv.Width, lv.Height = 100, 12
	lv.SetCards(cards(7))

	lv.MoveRow(1)
	if lv.Selected() != 3 {
		t.Errorf("after MoveRow(1) selected = %d, want 3", lv.Selected())
	}
	lv.MoveSelection(1)
	if lv.Selected() != 4 {
		t.Errorf("after MoveSelection(1) selected = %d, want 4", lv.Selected())
	}
	lv.MoveRow(5)
	if lv.Selected() != 6 {
		t.Errorf("selection should stop at the last card, got %d", lv.Selected())
	}
	lv.MoveSelection(-100)
	if lv.Selected() != 0 {
		t.Errorf("selection should stop at the first card, got %d", lv.Selected())
	}
}

func TestListView_SetCardsClampsSelection(t *testing.T) {
	lv := NewListView(theme.DefaultTheme(), 30)
	lv.Width, lv.Height = 100, 30
	lv.SetCards(cards(5))
	lv.MoveSelection(4)

	lv.SetCards(cards(2))
	if lv.Selected() != 1 {
		t.Errorf("selected = %d, want 1", lv.Selected())
	}
	lv.SetCards(nil)
	if lv.Selected() != 0 || lv.Len() != 0 {
		t.Errorf("selected = %d, len = %d, want 0, 0", lv.Selected(), lv.Len())
	}
	lv.MoveSelection(1)
	if lv.Selected() != 0 {
		t.Error("moving in an empty list should be a no-op")
	}
}

func TestListView_ScrollsToSelection(t *testing.T) {
	lv := NewListView(theme.DefaultTheme(), 30)
	// One column, one row of cards visible
	lv.Width, lv.Height = 32, 6
	lv.SetCards(cards(4))

	if !strings.Contains(lv.View(), "Room 100") {
		t.Fatal("first card should be visible")
	}
	lv.MoveRow(3)
	view := lv.View()
	if !strings.Contains(view, "Room 103") || strings.Contains(view, "Room 100") {
		t.Errorf("view should scroll to the last card:\n%s", view)
	}
}

func TestListView_TruncatesLongTitles(t *testing.T) {
	lv := NewListView(theme.DefaultTheme(), 20)
	lv.Width, lv.Height = 40, 12
	lv.SetCards([]Card{{Title: "Srinivasa Ramanujan Iyengar", Status: "Active", Amount: "₹1.00"}})

	view := lv.View()
	if strings.Contains(view, "Iyengar") {
		t.Errorf("long title should be truncated:\n%s", view)
	}
	if !strings.Contains(view, "…") {
		t.Errorf("truncated title should end with an ellipsis:\n%s", view)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Arun", 10, "Arun"},
		{"Arun", 0, ""},
		{"Priyadarshini", 6, "Priya…"},
		{"வணக்கம்", 20, "வணக்கம்"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
