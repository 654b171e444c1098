package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rebelice/lazystay/internal/models"
	"github.com/rebelice/lazystay/internal/ui/theme"
)

// PresetsMode represents the dialog mode
type PresetsMode int

const (
	PresetsModeList PresetsMode = iota
	PresetsModeSave
	PresetsModeRename
)

// ApplyPresetMsg is sent when a preset should replace the live filter
type ApplyPresetMsg struct {
	Preset models.Preset
}

// SavePresetMsg is sent when the current filter should be saved as Name
type SavePresetMsg struct {
	Domain models.Domain
	Name   string
}

// RenamePresetMsg is sent when a preset should be renamed
type RenamePresetMsg struct {
	ID   string
	Name string
}

// DeletePresetMsg is sent when a preset should be deleted
type DeletePresetMsg struct {
	ID string
}

// ClosePresetsDialogMsg is sent when dialog should close
type ClosePresetsDialogMsg struct{}

// PresetsDialog lists, saves and renames filter presets of one list
type PresetsDialog struct {
	Width  int
	Height int
	Theme  theme.Theme

	// State
	mode     PresetsMode
	domain   models.Domain
	presets  []models.Preset
	summary  string
	selected int
	offset   int

	nameInput textinput.Model
}

// NewPresetsDialog creates a new presets dialog
func NewPresetsDialog(th theme.Theme) *PresetsDialog {
	ti := textinput.New()
	ti.Placeholder = "Preset name"
	ti.CharLimit = 64

	return &PresetsDialog{
		Width:     60,
		Height:    20,
		Theme:     th,
		mode:      PresetsModeList,
		presets:   []models.Preset{},
		nameInput: ti,
	}
}

// ShowList opens the dialog on the presets of domain
func (pd *PresetsDialog) ShowList(domain models.Domain, presets []models.Preset) {
	pd.domain = domain
	pd.mode = PresetsModeList
	pd.SetPresets(presets)
}

// ShowSave opens the dialog asking for a name for the current filter.
// summary describes the filter being saved.
func (pd *PresetsDialog) ShowSave(domain models.Domain, summary string) {
	pd.domain = domain
	pd.mode = PresetsModeSave
	pd.summary = summary
	pd.nameInput.SetValue("")
	pd.nameInput.Focus()
}

// SetPresets updates the presets list
func (pd *PresetsDialog) SetPresets(presets []models.Preset) {
	pd.presets = presets
	if pd.selected >= len(presets) {
		pd.selected = max(len(presets)-1, 0)
	}
	if pd.offset > pd.selected {
		pd.offset = pd.selected
	}
}

// Mode returns the dialog mode
func (pd *PresetsDialog) Mode() PresetsMode {
	return pd.mode
}

// Update handles keyboard input
func (pd *PresetsDialog) Update(msg tea.KeyMsg) (*PresetsDialog, tea.Cmd) {
	switch pd.mode {
	case PresetsModeList:
		return pd.handleListMode(msg)
	case PresetsModeSave, PresetsModeRename:
		return pd.handleNameMode(msg)
	}
	return pd, nil
}

func (pd *PresetsDialog) handleListMode(msg tea.KeyMsg) (*PresetsDialog, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return pd, func() tea.Msg {
			return ClosePresetsDialogMsg{}
		}
	case "up", "k":
		if pd.selected > 0 {
			pd.selected--
			if pd.selected < pd.offset {
				pd.offset = pd.selected
			}
		}
	case "down", "j":
		if pd.selected < len(pd.presets)-1 {
			pd.selected++
			visibleHeight := pd.listHeight()
			if pd.selected >= pd.offset+visibleHeight {
				pd.offset = pd.selected - visibleHeight + 1
			}
		}
	case "enter":
		if pd.selected < len(pd.presets) {
			p := pd.presets[pd.selected]
			return pd, func() tea.Msg {
				return ApplyPresetMsg{Preset: p}
			}
		}
	case "d", "x":
		if pd.selected < len(pd.presets) {
			id := pd.presets[pd.selected].ID
			return pd, func() tea.Msg {
				return DeletePresetMsg{ID: id}
			}
		}
	case "R":
		if pd.selected < len(pd.presets) {
			pd.mode = PresetsModeRename
			pd.nameInput.SetValue(pd.presets[pd.selected].Name)
			pd.nameInput.CursorEnd()
			pd.nameInput.Focus()
		}
	}
	return pd, nil
}

func (pd *PresetsDialog) handleNameMode(msg tea.KeyMsg) (*PresetsDialog, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if pd.mode == PresetsModeSave {
			return pd, func() tea.Msg {
				return ClosePresetsDialogMsg{}
			}
		}
		pd.mode = PresetsModeList
		return pd, nil
	case "enter":
		name := strings.TrimSpace(pd.nameInput.Value())
		if name == "" {
			return pd, nil
		}
		if pd.mode == PresetsModeSave {
			domain := pd.domain
			return pd, func() tea.Msg {
				return SavePresetMsg{Domain: domain, Name: name}
			}
		}
		id := pd.presets[pd.selected].ID
		pd.mode = PresetsModeList
		return pd, func() tea.Msg {
			return RenamePresetMsg{ID: id, Name: name}
		}
	}

	var cmd tea.Cmd
	pd.nameInput, cmd = pd.nameInput.Update(msg)
	return pd, cmd
}

func (pd *PresetsDialog) listHeight() int {
	// Title, instructions, padding and border
	return max((pd.Height-8)/2, 1)
}

// View renders the dialog
func (pd *PresetsDialog) View() string {
	var sections []string

	// Title
	titleStyle := lipgloss.NewStyle().
		Foreground(pd.Theme.Foreground).
		Background(pd.Theme.Info).
		Padding(0, 1).
		Bold(true)

	instrStyle := lipgloss.NewStyle().
		Foreground(pd.Theme.Muted).
		Padding(0, 1)

	switch pd.mode {
	case PresetsModeSave:
		sections = append(sections, titleStyle.Render("Save "+pd.domain.Title()+" Filter"))
		sections = append(sections, instrStyle.Render("Enter: Save  Esc: Cancel"))
		sections = append(sections, "")
		if pd.summary != "" {
			sections = append(sections, lipgloss.NewStyle().Foreground(pd.Theme.Muted).Padding(0, 1).Render(pd.summary), "")
		}
		sections = append(sections, " "+pd.nameInput.View())
	case PresetsModeRename:
		sections = append(sections, titleStyle.Render("Rename Preset"))
		sections = append(sections, instrStyle.Render("Enter: Rename  Esc: Back"))
		sections = append(sections, "", " "+pd.nameInput.View())
	default:
		sections = append(sections, titleStyle.Render(pd.domain.Title()+" Presets"))
		sections = append(sections, instrStyle.Render("↑↓: Navigate  Enter: Apply  R: Rename  d: Delete  Esc: Close"))
		sections = append(sections, pd.renderList()...)
	}

	// Container
	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pd.Theme.Border).
		Width(pd.Width).
		Padding(1)

	return containerStyle.Render(strings.Join(sections, "\n"))
}

func (pd *PresetsDialog) renderList() []string {
	if len(pd.presets) == 0 {
		return []string{"", " No presets yet. Press 's' on a list to save its filters."}
	}

	lines := []string{""}
	end := min(pd.offset+pd.listHeight(), len(pd.presets))
	for i := pd.offset; i < end; i++ {
		p := pd.presets[i]

		used := "never used"
		if p.UsageCount > 0 {
			used = fmt.Sprintf("used %d× · last %s", p.UsageCount, p.LastUsed.Format("02 Jan"))
		}
		line := fmt.Sprintf("%s\n  %s", truncate(p.Name, pd.Width-6), used)

		style := lipgloss.NewStyle().Padding(0, 1)
		if i == pd.selected {
			style = style.Background(pd.Theme.Selection).Foreground(pd.Theme.Foreground)
		}
		lines = append(lines, style.Render(line))
	}
	return lines
}
