package filter

import (
	"time"
)

// Cloner is a filter value that can deep-copy itself
type Cloner[F any] interface {
	Clone() F
}

// State is the lifecycle of a filter sheet
type State int

const (
	// StateClosed has no draft
	StateClosed State = iota
	// StateBrowsing holds a draft identical to the value it was opened with
	StateBrowsing
	// StateDirty holds an edited draft
	StateDirty
	// StateCommitting is entered only while Apply hands the draft to OnChange
	StateCommitting
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateBrowsing:
		return "browsing"
	case StateDirty:
		return "dirty"
	case StateCommitting:
		return "committing"
	default:
		return "unknown"
	}
}

// SheetConfig wires a Sheet to its host
type SheetConfig[F Cloner[F]] struct {
	Sections []Section[F]
	// Reset is the pristine value Clear All restores
	Reset F
	// OnChange receives the draft on Apply, at most once per open sheet
	OnChange func(next F)
	// OnClose runs whenever the sheet closes, after OnChange on Apply
	OnClose func()
	// Now is the clock used to clamp future dates; defaults to time.Now
	Now func() time.Time
}

// Sheet edits a private draft of a filter value and commits it only on Apply.
// Dismissing discards the draft without calling OnChange.
type Sheet[F Cloner[F]] struct {
	sections []Section[F]
	index    map[string]int
	reset    F
	onChange func(F)
	onClose  func()
	now      func() time.Time

	state  State
	draft  F
	active int
}

// NewSheet creates a closed sheet
func NewSheet[F Cloner[F]](cfg SheetConfig[F]) *Sheet[F] {
	s := &Sheet[F]{
		sections: cfg.Sections,
		index:    make(map[string]int, len(cfg.Sections)),
		reset:    cfg.Reset.Clone(),
		onChange: cfg.OnChange,
		onClose:  cfg.OnClose,
		now:      cfg.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	for i, sec := range cfg.Sections {
		if _, dup := s.index[sec.Key()]; dup {
			debugf("filter: duplicate section key %q", sec.Key())
			continue
		}
		s.index[sec.Key()] = i
	}
	return s
}

// Now reads the sheet's clock
func (s *Sheet[F]) Now() time.Time {
	return s.now()
}

// State returns the current lifecycle state
func (s *Sheet[F]) State() State {
	return s.state
}

// Visible reports whether the sheet is open
func (s *Sheet[F]) Visible() bool {
	return s.state != StateClosed
}

// Dirty reports whether the draft was edited since Open
func (s *Sheet[F]) Dirty() bool {
	return s.state == StateDirty
}

// Sections returns the sections in tab order
func (s *Sheet[F]) Sections() []Section[F] {
	return s.sections
}

// Draft returns a copy of the draft
func (s *Sheet[F]) Draft() F {
	return s.draft.Clone()
}

// ActiveIndex returns the index of the selected tab
func (s *Sheet[F]) ActiveIndex() int {
	return s.active
}

// Active returns the selected section, or nil if there are none
func (s *Sheet[F]) Active() Section[F] {
	if s.active < 0 || s.active >= len(s.sections) {
		return nil
	}
	return s.sections[s.active]
}

// Open copies value into a fresh draft and selects the first tab.
// Opening an already open sheet keeps its draft.
func (s *Sheet[F]) Open(value F) {
	if s.Visible() {
		return
	}
	s.draft = value.Clone()
	s.active = 0
	s.state = StateBrowsing
}

// SelectTab selects the section with key; the draft is untouched
func (s *Sheet[F]) SelectTab(key string) bool {
	if !s.Visible() {
		return false
	}
	i, ok := s.index[key]
	if !ok {
		debugf("filter: unknown section key %q", key)
		return false
	}
	s.active = i
	return true
}

// SelectTabIndex selects the section at i, wrapping around
func (s *Sheet[F]) SelectTabIndex(i int) {
	if !s.Visible() || len(s.sections) == 0 {
		return
	}
	n := len(s.sections)
	s.active = ((i % n) + n) % n
}

// NextTab moves to the following section
func (s *Sheet[F]) NextTab() {
	s.SelectTabIndex(s.active + 1)
}

// PrevTab moves to the preceding section
func (s *Sheet[F]) PrevTab() {
	s.SelectTabIndex(s.active - 1)
}

// ToggleCheckbox flips one option of a checkbox facet in the draft
func (s *Sheet[F]) ToggleCheckbox(key string, option int) {
	sec, ok := lookup[F, Checkbox[F]](s, key)
	if !ok {
		return
	}
	if sec.Toggle(&s.draft, option) {
		s.state = StateDirty
	}
}

// SetDateBound sets or clears (nil date) one bound of a date facet in the draft
func (s *Sheet[F]) SetDateBound(key string, which Bound, date *time.Time) {
	sec, ok := lookup[F, *DateRangeSection[F]](s, key)
	if !ok {
		return
	}
	sec.SetBound(&s.draft, which, date, s.now())
	s.state = StateDirty
}

// SetDraft replaces the draft; custom sections edit through it
func (s *Sheet[F]) SetDraft(next F) {
	if !s.Visible() {
		return
	}
	s.draft = next.Clone()
	s.state = StateDirty
}

// ClearAll resets the draft to the pristine value. The sheet stays open and
// nothing is committed until Apply.
func (s *Sheet[F]) ClearAll() {
	if !s.Visible() {
		return
	}
	s.draft = s.reset.Clone()
	s.state = StateDirty
}

// Apply commits the draft through OnChange and closes the sheet
func (s *Sheet[F]) Apply() {
	if !s.Visible() || s.state == StateCommitting {
		return
	}
	s.state = StateCommitting
	committed := s.draft.Clone()
	if s.onChange != nil {
		s.onChange(committed)
	}
	s.close()
}

// Dismiss closes the sheet and discards the draft
func (s *Sheet[F]) Dismiss() {
	if !s.Visible() {
		return
	}
	s.close()
}

func (s *Sheet[F]) close() {
	var zero F
	s.draft = zero
	s.state = StateClosed
	if s.onClose != nil {
		s.onClose()
	}
}

// lookup finds an open sheet's section by key and asserts its variant
func lookup[F Cloner[F], S Section[F]](s *Sheet[F], key string) (S, bool) {
	var zero S
	if !s.Visible() {
		return zero, false
	}
	i, ok := s.index[key]
	if !ok {
		debugf("filter: unknown section key %q", key)
		return zero, false
	}
	sec, ok := s.sections[i].(S)
	if !ok {
		debugf("filter: section %q is %s, not the requested kind", key, s.sections[i].Kind())
		return zero, false
	}
	return sec, true
}
