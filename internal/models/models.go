package models

// AppState holds the application state
type AppState struct {
	Width    int
	Height   int
	Screen   Domain
	ViewMode ViewMode
}

// ViewMode identifies what currently owns the keyboard
type ViewMode int

const (
	NormalMode ViewMode = iota
	SearchMode
	FilterMode
	PresetsMode
	HelpMode
)

// NewAppState creates a new AppState with defaults
func NewAppState() AppState {
	return AppState{
		Width:    80,
		Height:   24,
		Screen:   DomainRooms,
		ViewMode: NormalMode,
	}
}
