package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rebelice/lazystay/internal/filter"
	"github.com/rebelice/lazystay/internal/models"
	"github.com/rebelice/lazystay/internal/ui/theme"
)

// Zone ID prefix for filter sheet tabs
const ZoneFilterTabPrefix = "filter-tab-"

// ApplyFilterMsg is sent after the sheet committed its draft
type ApplyFilterMsg struct {
	Domain models.Domain
}

// CloseFilterSheetMsg is sent when the sheet closed without applying
type CloseFilterSheetMsg struct {
	Domain models.Domain
}

// FilterSheet is the interactive overlay for one list's filter.Sheet
type FilterSheet[F filter.Cloner[F]] struct {
	Width  int
	Height int
	Theme  theme.Theme
	Domain models.Domain

	sheet  *filter.Sheet[F]
	cursor int
}

// NewFilterSheet wraps sheet for domain
func NewFilterSheet[F filter.Cloner[F]](domain models.Domain, sheet *filter.Sheet[F], th theme.Theme) *FilterSheet[F] {
	return &FilterSheet[F]{
		Width:  60,
		Height: 20,
		Theme:  th,
		Domain: domain,
		sheet:  sheet,
	}
}

// Open shows the sheet with a draft copied from value
func (fs *FilterSheet[F]) Open(value F) {
	fs.sheet.Open(value)
	fs.cursor = 0
}

// Visible reports whether the sheet is open
func (fs *FilterSheet[F]) Visible() bool {
	return fs.sheet.Visible()
}

// Sheet returns the underlying engine
func (fs *FilterSheet[F]) Sheet() *filter.Sheet[F] {
	return fs.sheet
}

// Cursor returns the option (or date bound) under the cursor
func (fs *FilterSheet[F]) Cursor() int {
	return fs.cursor
}

// Update handles keyboard input
func (fs *FilterSheet[F]) Update(msg tea.KeyMsg) (*FilterSheet[F], tea.Cmd) {
	if !fs.Visible() {
		return fs, nil
	}
	domain := fs.Domain

	switch msg.String() {
	case "enter":
		fs.sheet.Apply()
		return fs, func() tea.Msg {
			return ApplyFilterMsg{Domain: domain}
		}
	case "esc":
		fs.sheet.Dismiss()
		return fs, func() tea.Msg {
			return CloseFilterSheetMsg{Domain: domain}
		}
	case "tab", "l", "right":
		fs.sheet.NextTab()
		fs.cursor = 0
		return fs, nil
	case "shift+tab", "h", "left":
		fs.sheet.PrevTab()
		fs.cursor = 0
		return fs, nil
	case "c":
		fs.sheet.ClearAll()
		return fs, nil
	}

	switch sec := fs.sheet.Active().(type) {
	case filter.Checkbox[F]:
		fs.handleCheckbox(sec, msg.String())
	case *filter.DateRangeSection[F]:
		fs.handleDateRange(sec, msg.String())
	case *filter.CustomSection[F]:
		if sec.HandleKey != nil {
			sec.HandleKey(fs.sheet.Draft(), msg.String(), fs.sheet.SetDraft)
		}
	}
	return fs, nil
}

func (fs *FilterSheet[F]) handleCheckbox(sec filter.Checkbox[F], key string) {
	n := len(sec.OptionLabels())
	switch key {
	case "up", "k":
		if fs.cursor > 0 {
			fs.cursor--
		}
	case "down", "j":
		if fs.cursor < n-1 {
			fs.cursor++
		}
	case " ", "space", "x":
		fs.sheet.ToggleCheckbox(sec.Key(), fs.cursor)
	}
}

func (fs *FilterSheet[F]) handleDateRange(sec *filter.DateRangeSection[F], key string) {
	draft := fs.sheet.Draft()
	r := sec.Range(&draft)

	shift := func(which filter.Bound, current *time.Time, days int) {
		base := fs.sheet.Now()
		if current != nil {
			base = *current
		}
		next := base.AddDate(0, 0, days)
		fs.sheet.SetDateBound(sec.Key(), which, &next)
	}

	bound := filter.BoundFrom
	current := r.From
	if fs.cursor == 1 {
		bound = filter.BoundTo
		current = r.To
	}

	switch key {
	case "up", "k":
		fs.cursor = 0
	case "down", "j":
		fs.cursor = 1
	case "[":
		shift(filter.BoundFrom, r.From, -1)
	case "]":
		shift(filter.BoundFrom, r.From, 1)
	case "{":
		shift(filter.BoundTo, r.To, -1)
	case "}":
		shift(filter.BoundTo, r.To, 1)
	case "-":
		shift(bound, current, -1)
	case "+", "=":
		shift(bound, current, 1)
	case "t":
		today := fs.sheet.Now()
		fs.sheet.SetDateBound(sec.Key(), bound, &today)
	case "backspace", "delete":
		fs.sheet.SetDateBound(sec.Key(), bound, nil)
	}
}

// HandleMouseClick selects a tab when one is clicked
func (fs *FilterSheet[F]) HandleMouseClick(msg tea.MouseMsg) bool {
	if !fs.Visible() || msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return false
	}

	for i := range fs.sheet.Sections() {
		if zone.Get(fmt.Sprintf("%s%d", ZoneFilterTabPrefix, i)).InBounds(msg) {
			fs.sheet.SelectTabIndex(i)
			fs.cursor = 0
			return true
		}
	}
	return false
}

// View renders the sheet
func (fs *FilterSheet[F]) View() string {
	if !fs.Visible() {
		return ""
	}

	var sections []string

	// Title
	titleStyle := lipgloss.NewStyle().
		Foreground(fs.Theme.Foreground).
		Background(fs.Theme.Info).
		Padding(0, 1).
		Bold(true)
	title := "Filter " + fs.Domain.Title()
	if fs.sheet.Dirty() {
		title += " *"
	}
	sections = append(sections, titleStyle.Render(title))
	sections = append(sections, "", fs.renderTabs(), "")

	draft := fs.sheet.Draft()
	switch sec := fs.sheet.Active().(type) {
	case filter.Checkbox[F]:
		sections = append(sections, fs.renderCheckbox(sec, &draft))
	case *filter.DateRangeSection[F]:
		sections = append(sections, fs.renderDateRange(sec, &draft))
	case *filter.CustomSection[F]:
		if sec.Render != nil {
			sections = append(sections, sec.Render(draft, fs.sheet.SetDraft))
		}
	}

	// Instructions
	instrStyle := lipgloss.NewStyle().
		Foreground(fs.Theme.Muted).
		Padding(1, 0, 0, 0)
	sections = append(sections, instrStyle.Render(fs.instructions()))

	content := strings.Join(sections, "\n")

	// Container
	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fs.Theme.BorderFocused).
		Foreground(fs.Theme.Foreground).
		Width(fs.Width).
		Padding(1, 2)

	return containerStyle.Render(content)
}

func (fs *FilterSheet[F]) instructions() string {
	base := "Tab: section  c: clear all  Enter: apply  Esc: close"
	switch fs.sheet.Active().(type) {
	case *filter.DateRangeSection[F]:
		return "j/k: from/to  [ ]: from ±1d  { }: to ±1d  t: today  ⌫: clear\n" + base
	case *filter.CustomSection[F]:
		return "j/k: change\n" + base
	default:
		return "j/k: move  Space: toggle\n" + base
	}
}

func (fs *FilterSheet[F]) renderTabs() string {
	draft := fs.sheet.Draft()
	var parts []string

	for i, sec := range fs.sheet.Sections() {
		label := sec.Label() + badge(sec, &draft)

		var tabContent string
		if i == fs.sheet.ActiveIndex() {
			indicator := lipgloss.NewStyle().Foreground(fs.Theme.TabActive).Bold(true).Render("▌")
			tabContent = indicator + lipgloss.NewStyle().
				Bold(true).
				Foreground(fs.Theme.Foreground).
				Background(fs.Theme.Selection).
				Padding(0, 1).
				Render(label)
		} else {
			tabContent = lipgloss.NewStyle().
				Foreground(fs.Theme.TabInactive).
				Padding(0, 1).
				Render(label)
		}

		// Wrap with zone mark for mouse click
		parts = append(parts, zone.Mark(fmt.Sprintf("%s%d", ZoneFilterTabPrefix, i), tabContent))
		if i < len(fs.sheet.Sections())-1 {
			parts = append(parts, lipgloss.NewStyle().Foreground(fs.Theme.Border).Render(" │ "))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// badge marks tabs whose facet constrains the draft
func badge[F any](sec filter.Section[F], draft *F) string {
	switch s := sec.(type) {
	case filter.Checkbox[F]:
		if n := s.SelectedCount(draft); n > 0 {
			return fmt.Sprintf(" (%d)", n)
		}
	case *filter.DateRangeSection[F]:
		if !s.Range(draft).IsZero() {
			return " •"
		}
	case *filter.CustomSection[F]:
		if s.IsSet != nil && s.IsSet(*draft) {
			return " •"
		}
	}
	return ""
}

func (fs *FilterSheet[F]) renderCheckbox(sec filter.Checkbox[F], draft *F) string {
	checked := lipgloss.NewStyle().Foreground(fs.Theme.Checked).Bold(true)
	var lines []string

	for i, label := range sec.OptionLabels() {
		box := "[ ]"
		if sec.Selected(draft, i) {
			box = checked.Render("[✓]")
		}
		line := fmt.Sprintf("%s %s", box, label)

		style := lipgloss.NewStyle().Padding(0, 1)
		if i == fs.cursor {
			style = style.Background(fs.Theme.Selection).Foreground(fs.Theme.Foreground)
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}

func (fs *FilterSheet[F]) renderDateRange(sec *filter.DateRangeSection[F], draft *F) string {
	r := sec.Range(draft)
	rows := []struct {
		label string
		value *time.Time
	}{
		{"From", r.From},
		{"To", r.To},
	}

	var lines []string
	for i, row := range rows {
		value := lipgloss.NewStyle().Foreground(fs.Theme.Muted).Render("any")
		if row.value != nil {
			value = row.value.Format("02 Jan 2006")
		}
		style := lipgloss.NewStyle().Padding(0, 1)
		if i == fs.cursor {
			style = style.Background(fs.Theme.Selection).Foreground(fs.Theme.Foreground)
		}
		lines = append(lines, style.Render(fmt.Sprintf("%-5s %s", row.label+":", value)))
	}

	if !sec.AllowFuture {
		lines = append(lines, lipgloss.NewStyle().Foreground(fs.Theme.Muted).Italic(true).Render("  Dates after today are clamped to today"))
	}
	return strings.Join(lines, "\n")
}
