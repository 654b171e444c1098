package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rebelice/lazystay/internal/models"
	"github.com/rebelice/lazystay/internal/ui/theme"
)

func testPresets() []models.Preset {
	return []models.Preset{
		{ID: "a", Name: "Doubles", Domain: models.DomainTenants, UsageCount: 2},
		{ID: "b", Name: "Dues", Domain: models.DomainTenants},
	}
}

func TestPresetsDialog_ApplyAndDelete(t *testing.T) {
	pd := NewPresetsDialog(theme.DefaultTheme())
	pd.ShowList(models.DomainTenants, testPresets())

	pd, cmd := pd.Update(keyMsg("j"))
	if cmd != nil {
		t.Error("navigation should not produce a command")
	}
	pd, cmd = pd.Update(keyMsg("enter"))
	if msg, ok := cmd().(ApplyPresetMsg); !ok || msg.Preset.ID != "b" {
		t.Errorf("cmd produced %#v, want ApplyPresetMsg for b", cmd())
	}

	_, cmd = pd.Update(keyMsg("d"))
	if msg, ok := cmd().(DeletePresetMsg); !ok || msg.ID != "b" {
		t.Errorf("cmd produced %#v, want DeletePresetMsg for b", cmd())
	}
}

func TestPresetsDialog_SetPresetsClampsSelection(t *testing.T) {
	pd := NewPresetsDialog(theme.DefaultTheme())
	pd.ShowList(models.DomainTenants, testPresets())
	pd, _ = pd.Update(keyMsg("j"))

	pd.SetPresets(testPresets()[:1])
	_, cmd := pd.Update(keyMsg("enter"))
	if msg, ok := cmd().(ApplyPresetMsg); !ok || msg.Preset.ID != "a" {
		t.Errorf("cmd produced %#v, want ApplyPresetMsg for a", cmd())
	}

	pd.SetPresets(nil)
	if _, cmd := pd.Update(keyMsg("enter")); cmd != nil {
		t.Error("enter on an empty list should do nothing")
	}
}

func TestPresetsDialog_Save(t *testing.T) {
	pd := NewPresetsDialog(theme.DefaultTheme())
	pd.ShowSave(models.DomainRooms, "1 filter(s)")
	if pd.Mode() != PresetsModeSave {
		t.Fatalf("Mode() = %v, want save", pd.Mode())
	}

	// Blank names are ignored
	pd, cmd := pd.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("blank name should not save")
	}

	for _, r := range "Full" {
		pd, _ = pd.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd = pd.Update(keyMsg("enter"))
	msg, ok := cmd().(SavePresetMsg)
	if !ok || msg.Name != "Full" || msg.Domain != models.DomainRooms {
		t.Errorf("cmd produced %#v, want SavePresetMsg{rooms, Full}", cmd())
	}
}

func TestPresetsDialog_Rename(t *testing.T) {
	pd := NewPresetsDialog(theme.DefaultTheme())
	pd.ShowList(models.DomainTenants, testPresets())

	pd, _ = pd.Update(keyMsg("R"))
	if pd.Mode() != PresetsModeRename {
		t.Fatalf("Mode() = %v, want rename", pd.Mode())
	}
	pd, _ = pd.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	pd, cmd := pd.Update(keyMsg("enter"))

	msg, ok := cmd().(RenamePresetMsg)
	if !ok || msg.ID != "a" || msg.Name != "Doubles!" {
		t.Errorf("cmd produced %#v, want RenamePresetMsg{a, Doubles!}", cmd())
	}
	if pd.Mode() != PresetsModeList {
		t.Errorf("Mode() = %v, want list after rename", pd.Mode())
	}
}

func TestPresetsDialog_EscFromRenameReturnsToList(t *testing.T) {
	pd := NewPresetsDialog(theme.DefaultTheme())
	pd.ShowList(models.DomainTenants, testPresets())
	pd, _ = pd.Update(keyMsg("R"))

	pd, cmd := pd.Update(keyMsg("esc"))
	if cmd != nil || pd.Mode() != PresetsModeList {
		t.Errorf("esc in rename: mode = %v, cmd = %v; want list mode, no command", pd.Mode(), cmd)
	}

	_, cmd = pd.Update(keyMsg("esc"))
	if _, ok := cmd().(ClosePresetsDialogMsg); !ok {
		t.Errorf("cmd produced %#v, want ClosePresetsDialogMsg", cmd())
	}
}

func TestPresetsDialog_View(t *testing.T) {
	pd := NewPresetsDialog(theme.DefaultTheme())
	pd.ShowList(models.DomainTenants, nil)
	if !strings.Contains(pd.View(), "No presets yet") {
		t.Errorf("empty view:\n%s", pd.View())
	}

	pd.SetPresets(testPresets())
	view := pd.View()
	for _, want := range []string{"Tenants Presets", "Doubles", "used 2×", "never used"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
