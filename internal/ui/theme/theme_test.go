package theme

import "testing"

func TestGetTheme(t *testing.T) {
	tests := map[string]string{
		"default":          "default",
		"catppuccin-mocha": "catppuccin-mocha",
		"catppuccin":       "catppuccin-mocha",
		"nope":             "default",
	}
	for in, want := range tests {
		if got := GetTheme(in).Name; got != want {
			t.Errorf("GetTheme(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStatusColor(t *testing.T) {
	th := DefaultTheme()
	if th.StatusColor("Active") != th.Success {
		t.Error("expected Active to use success color")
	}
	if th.StatusColor("Dues") != th.Warning {
		t.Error("expected Dues to use warning color")
	}
	if th.StatusColor("Cancelled") != th.Error {
		t.Error("expected Cancelled to use error color")
	}
	if th.StatusColor("something else") != th.Info {
		t.Error("expected unknown labels to use info color")
	}
}
