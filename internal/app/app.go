package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rebelice/lazystay/internal/config"
	"github.com/rebelice/lazystay/internal/export"
	"github.com/rebelice/lazystay/internal/models"
	"github.com/rebelice/lazystay/internal/presets"
	"github.com/rebelice/lazystay/internal/source"
	"github.com/rebelice/lazystay/internal/store"
	"github.com/rebelice/lazystay/internal/ui/components"
	"github.com/rebelice/lazystay/internal/ui/help"
	"github.com/rebelice/lazystay/internal/ui/theme"
)

const loadTimeout = 15 * time.Second

// App is the main application model
type App struct {
	state  models.AppState
	config *config.Config
	theme  theme.Theme

	source  source.Source
	store   *store.Store
	presets *presets.Manager

	screens map[models.Domain]screen
	panel   components.Panel

	searchInput   *components.SearchInput
	presetsDialog *components.PresetsDialog

	// Error overlay
	showError    bool
	errorOverlay *components.ErrorOverlay

	loading bool
	status  string

	// exportDir receives exported files
	exportDir string
	now       func() time.Time
}

// RecordsLoadedMsg is sent when a (re)load of every list finishes
type RecordsLoadedMsg struct {
	Records source.Records
	Err     error
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Title   string
	Message string
}

// StatusMsg replaces the status bar message
type StatusMsg struct {
	Text string
}

// FiltersResetMsg is sent after every persisted filter was removed
type FiltersResetMsg struct {
	Err error
}

// New creates a new App. st and pm may be nil to run without persisted
// filters or presets.
func New(cfg *config.Config, src source.Source, st *store.Store, pm *presets.Manager) *App {
	if cfg == nil {
		cfg = config.GetDefaults()
	}
	th := theme.GetTheme(cfg.UI.Theme)

	state := models.NewAppState()
	if d, ok := cfg.Screen(); ok {
		state.Screen = d
	}

	if !cfg.General.PersistFilters {
		st = nil
	}

	a := &App{
		state:         state,
		config:        cfg,
		theme:         th,
		source:        src,
		store:         st,
		presets:       pm,
		screens:       newScreens(th, cfg.UI.CardWidth, st),
		searchInput:   components.NewSearchInput(th),
		presetsDialog: components.NewPresetsDialog(th),
		errorOverlay:  components.NewErrorOverlay(th),
		exportDir:     ".",
		now:           time.Now,
		panel: components.Panel{
			Style:      lipgloss.NewStyle().BorderForeground(th.BorderFocused),
			BadgeStyle: lipgloss.NewStyle().Foreground(th.Badge).Bold(true),
		},
	}

	if st != nil {
		for _, d := range models.AllDomains {
			if err := a.screens[d].Restore(); err != nil {
				log.Printf("Warning: failed to restore %s filters: %v", d, err)
			}
		}
	}

	a.updatePanelDimensions()
	return a
}

// SetExportDir changes where exported files are written
func (a *App) SetExportDir(dir string) {
	a.exportDir = dir
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.loadRecords()
}

func (a *App) current() screen {
	return a.screens[a.state.Screen]
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ErrorMsg:
		a.ShowError(msg.Title, msg.Message)
		return a, nil

	case StatusMsg:
		a.status = msg.Text
		return a, nil

	case RecordsLoadedMsg:
		a.loading = false
		for _, s := range a.screens {
			s.Load(msg.Records)
		}
		if msg.Err != nil {
			a.ShowError("Load Failed", msg.Err.Error())
			return a, nil
		}
		a.status = fmt.Sprintf("Loaded %d rooms, %d tenants, %d bookings, %d expenses",
			len(msg.Records.Rooms), len(msg.Records.Tenants),
			len(msg.Records.AdvanceBookings), len(msg.Records.Expenses))
		return a, nil

	case FilterPersistedMsg:
		if msg.Err != nil {
			log.Printf("Warning: failed to save %s filters: %v", msg.Domain, msg.Err)
			a.ShowError("Filters Not Saved", msg.Err.Error())
		}
		return a, nil

	case FiltersResetMsg:
		if msg.Err != nil {
			a.ShowError("Reset Failed", msg.Err.Error())
			return a, nil
		}
		a.status = "Filters reset on every list"
		return a, nil

	case components.ApplyFilterMsg:
		a.state.ViewMode = models.NormalMode
		a.status = fmt.Sprintf("%s: %s", msg.Domain.Title(), a.screens[msg.Domain].Summary())
		return a, nil

	case components.CloseFilterSheetMsg:
		a.state.ViewMode = models.NormalMode
		return a, nil

	case components.SearchInputMsg:
		a.current().SetSearch(msg.Query)
		return a, nil

	case components.CloseSearchMsg:
		a.state.ViewMode = models.NormalMode
		return a, nil

	case components.ClosePresetsDialogMsg:
		a.state.ViewMode = models.NormalMode
		return a, nil

	case components.ApplyPresetMsg:
		return a, a.applyPreset(msg.Preset)

	case components.SavePresetMsg:
		return a, a.savePreset(msg.Domain, msg.Name)

	case components.RenamePresetMsg:
		if err := a.presets.Rename(msg.ID, msg.Name); err != nil {
			a.ShowError("Rename Failed", err.Error())
			return a, nil
		}
		a.presetsDialog.SetPresets(a.presets.ForDomain(a.state.Screen))
		return a, nil

	case components.DeletePresetMsg:
		if err := a.presets.Delete(msg.ID); err != nil {
			a.ShowError("Delete Failed", err.Error())
			return a, nil
		}
		a.presetsDialog.SetPresets(a.presets.ForDomain(a.state.Screen))
		return a, nil

	case tea.MouseMsg:
		if a.state.ViewMode == models.FilterMode {
			a.current().SheetMouse(msg)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.state.Width = msg.Width
		a.state.Height = msg.Height
		a.updatePanelDimensions()
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle error overlay dismissal first if visible
	if a.showError {
		switch msg.String() {
		case "esc", "enter":
			a.DismissError()
		case "ctrl+c":
			return a, tea.Quit
		}
		return a, nil
	}

	switch a.state.ViewMode {
	case models.FilterMode:
		cmd := a.current().UpdateSheet(msg)
		if !a.current().SheetVisible() {
			a.state.ViewMode = models.NormalMode
		}
		return a, cmd
	case models.SearchMode:
		var cmd tea.Cmd
		a.searchInput, cmd = a.searchInput.Update(msg)
		return a, cmd
	case models.PresetsMode:
		var cmd tea.Cmd
		a.presetsDialog, cmd = a.presetsDialog.Update(msg)
		return a, cmd
	case models.HelpMode:
		switch msg.String() {
		case "?", "esc", "q":
			a.state.ViewMode = models.NormalMode
		case "ctrl+c":
			return a, tea.Quit
		}
		return a, nil
	}

	cur := a.current()
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "?":
		a.state.ViewMode = models.HelpMode
	case "1", "2", "3", "4":
		a.switchScreen(models.AllDomains[int(msg.String()[0]-'1')])
	case "tab":
		a.switchScreen(a.offsetScreen(1))
	case "shift+tab":
		a.switchScreen(a.offsetScreen(-1))
	case "up", "k":
		cur.List().MoveRow(-1)
	case "down", "j":
		cur.List().MoveRow(1)
	case "left", "h":
		cur.List().MoveSelection(-1)
	case "right", "l":
		cur.List().MoveSelection(1)
	case "/":
		a.searchInput.SetValue(cur.Search())
		a.state.ViewMode = models.SearchMode
	case "f":
		cur.OpenSheet()
		a.state.ViewMode = models.FilterMode
	case "x":
		a.status = cur.Domain().Title() + ": filters cleared"
		return a, cur.Clear(true)
	case "ctrl+r":
		return a, a.resetAll()
	case "p":
		if a.presets == nil {
			a.status = "Presets are unavailable"
			return a, nil
		}
		a.presetsDialog.ShowList(cur.Domain(), a.presets.ForDomain(cur.Domain()))
		a.state.ViewMode = models.PresetsMode
	case "s":
		if a.presets == nil {
			a.status = "Presets are unavailable"
			return a, nil
		}
		a.presetsDialog.ShowSave(cur.Domain(), cur.Summary())
		a.state.ViewMode = models.PresetsMode
	case "e":
		return a, a.exportTable("csv", export.ExportToCSV)
	case "X":
		return a, a.exportTable("xlsx", export.ExportToXLSX)
	case "E":
		return a, a.exportJSON()
	case "y":
		return a, a.copyVisible()
	case "r", "f5":
		return a, a.loadRecords()
	}
	return a, nil
}

func (a *App) offsetScreen(delta int) models.Domain {
	n := len(models.AllDomains)
	for i, d := range models.AllDomains {
		if d == a.state.Screen {
			return models.AllDomains[(i+delta+n)%n]
		}
	}
	return models.AllDomains[0]
}

func (a *App) switchScreen(d models.Domain) {
	if d == a.state.Screen {
		return
	}
	a.state.Screen = d
	a.status = ""
	a.updatePanelDimensions()
}

// loadRecords fetches every list in the background
func (a *App) loadRecords() tea.Cmd {
	if a.source == nil {
		return nil
	}
	a.loading = true
	a.status = "Loading..."
	src := a.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		recs, err := source.LoadAll(ctx, src)
		return RecordsLoadedMsg{Records: recs, Err: err}
	}
}

// resetAll clears the live filter of every list and empties the store
func (a *App) resetAll() tea.Cmd {
	for _, s := range a.screens {
		s.Clear(false)
	}
	if a.store == nil {
		a.status = "Filters reset on every list"
		return nil
	}
	st := a.store
	return func() tea.Msg {
		return FiltersResetMsg{Err: st.ResetAll()}
	}
}

func (a *App) applyPreset(p models.Preset) tea.Cmd {
	a.state.ViewMode = models.NormalMode
	s, ok := a.screens[p.Domain]
	if !ok {
		a.ShowError("Preset Failed", fmt.Sprintf("unknown list %q", p.Domain))
		return nil
	}
	cmd, err := s.ApplyPreset(p)
	if err != nil {
		a.ShowError("Preset Failed", err.Error())
		return nil
	}
	if err := a.presets.RecordUsage(p.ID); err != nil {
		log.Printf("Warning: failed to record preset usage: %v", err)
	}
	a.status = fmt.Sprintf("Applied preset %q", p.Name)
	return cmd
}

func (a *App) savePreset(domain models.Domain, name string) tea.Cmd {
	s, ok := a.screens[domain]
	if !ok {
		return nil
	}
	p, err := s.SavePreset(a.presets, name)
	if err != nil {
		if errors.Is(err, presets.ErrDuplicateName) {
			a.ShowError("Preset Exists", fmt.Sprintf("A preset named %q already exists", name))
		} else {
			a.ShowError("Save Failed", err.Error())
		}
		return nil
	}
	a.state.ViewMode = models.NormalMode
	a.status = fmt.Sprintf("Saved preset %q", p.Name)
	return nil
}

func (a *App) exportPath(ext string) string {
	return filepath.Join(a.exportDir, export.FileName(a.state.Screen, ext, a.now()))
}

func (a *App) exportTable(ext string, write func(export.Table, string) error) tea.Cmd {
	table := a.current().Table()
	path := a.exportPath(ext)
	return func() tea.Msg {
		if err := write(table, path); err != nil {
			return ErrorMsg{Title: "Export Failed", Message: err.Error()}
		}
		return StatusMsg{Text: fmt.Sprintf("Exported %d rows to %s", len(table.Rows), path)}
	}
}

func (a *App) exportJSON() tea.Cmd {
	cur := a.current()
	n := cur.VisibleCount()
	path := a.exportPath("json")
	write := cur.JSONWriter(path)
	return func() tea.Msg {
		if err := write(); err != nil {
			return ErrorMsg{Title: "Export Failed", Message: err.Error()}
		}
		return StatusMsg{Text: fmt.Sprintf("Exported %d records to %s", n, path)}
	}
}

func (a *App) copyVisible() tea.Cmd {
	table := a.current().Table()
	return func() tea.Msg {
		if err := clipboard.WriteAll(export.PlainText(table)); err != nil {
			return ErrorMsg{Title: "Copy Failed", Message: err.Error()}
		}
		return StatusMsg{Text: fmt.Sprintf("Copied %d rows", len(table.Rows))}
	}
}

// View implements tea.Model
func (a *App) View() string {
	return zone.Scan(a.render())
}

func (a *App) render() string {
	// If error overlay is showing, render it centered on top of everything
	if a.showError {
		return a.place(a.errorOverlay.View())
	}

	switch a.state.ViewMode {
	case models.HelpMode:
		return help.Render(a.state.Width, a.state.Height, a.theme)
	case models.FilterMode:
		return a.place(a.current().SheetView(min(a.state.Width-4, 72)))
	case models.PresetsMode:
		return a.place(a.presetsDialog.View())
	}

	return a.renderNormalView()
}

func (a *App) place(content string) string {
	return lipgloss.Place(
		a.state.Width, a.state.Height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}

// renderNormalView renders the list screen with its bars
func (a *App) renderNormalView() string {
	cur := a.current()

	topBar := lipgloss.NewStyle().
		Width(a.state.Width).
		Background(a.theme.BorderFocused).
		Foreground(lipgloss.Color("230")).
		Padding(0, 2).
		Render(a.formatStatusBar(a.renderTabs(), "lazystay"))

	bottomLeft := "[/] Search | [f] Filter | [p] Presets | [?] Help | [q] Quit"
	if a.status != "" {
		bottomLeft = a.status
	}
	bottomRight := fmt.Sprintf("%d of %d", cur.VisibleCount(), cur.TotalCount())
	bottomBar := lipgloss.NewStyle().
		Width(a.state.Width).
		Background(a.theme.Selection).
		Foreground(a.theme.Foreground).
		Padding(0, 2).
		Render(a.formatStatusBar(bottomLeft, bottomRight))

	a.panel.Title = cur.Domain().Title()
	a.panel.Badge = ""
	if n := cur.ActiveCount(); n > 0 {
		a.panel.Badge = fmt.Sprintf("● %d", n)
	}

	list := cur.List()
	list.Width = a.panel.Width
	list.Height = a.panel.Height - 1

	var body []string
	if a.state.ViewMode == models.SearchMode {
		a.searchInput.Width = a.panel.Width - 4
		search := a.searchInput.View()
		list.Height -= lipgloss.Height(search)
		body = append(body, search)
	} else if q := strings.TrimSpace(cur.Search()); q != "" {
		hint := lipgloss.NewStyle().Foreground(a.theme.Muted).Italic(true).
			Render(fmt.Sprintf("search: %s", q))
		list.Height--
		body = append(body, hint)
	}
	if a.loading && cur.TotalCount() == 0 {
		body = append(body, lipgloss.NewStyle().Foreground(a.theme.Muted).Render("Loading..."))
	} else {
		body = append(body, list.View())
	}
	a.panel.Content = lipgloss.JoinVertical(lipgloss.Left, body...)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		topBar,
		a.panel.View(),
		bottomBar,
	)
}

func (a *App) renderTabs() string {
	parts := make([]string, 0, len(models.AllDomains))
	for i, d := range models.AllDomains {
		label := fmt.Sprintf("%d %s", i+1, d.Title())
		if n := a.screens[d].ActiveCount(); n > 0 {
			label += fmt.Sprintf(" (%d)", n)
		}
		if d == a.state.Screen {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}

// updatePanelDimensions calculates panel sizes based on window size
func (a *App) updatePanelDimensions() {
	if a.state.Width <= 0 || a.state.Height <= 0 {
		return
	}

	// Top bar, bottom bar and the panel border take four lines
	contentHeight := a.state.Height - 4
	if contentHeight < 5 {
		contentHeight = 5
	}
	contentWidth := a.state.Width - 2
	if contentWidth < 20 {
		contentWidth = 20
	}

	a.panel.Width = contentWidth
	a.panel.Height = contentHeight
	a.searchInput.Width = contentWidth - 4
	a.presetsDialog.Width = min(contentWidth, 70)
	a.presetsDialog.Height = min(contentHeight, 24)
}

// formatStatusBar formats a status bar with left and right aligned content
func (a *App) formatStatusBar(left, right string) string {
	// Account for padding (2 chars on each side = 4 total)
	availableWidth := a.state.Width - 4
	if availableWidth < 0 {
		availableWidth = 0
	}

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)

	if leftLen+rightLen > availableWidth {
		return lipgloss.NewStyle().MaxWidth(availableWidth).Render(left + " " + right)
	}

	spacing := availableWidth - leftLen - rightLen
	return left + strings.Repeat(" ", spacing) + right
}

// ShowError displays an error overlay with the given title and message
func (a *App) ShowError(title, message string) {
	a.errorOverlay.SetError(title, message)
	a.showError = true
}

// DismissError hides the error overlay
func (a *App) DismissError() {
	a.showError = false
}
