package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rebelice/lazystay/internal/export"
	"github.com/rebelice/lazystay/internal/filter"
	"github.com/rebelice/lazystay/internal/models"
	"github.com/rebelice/lazystay/internal/presets"
	"github.com/rebelice/lazystay/internal/source"
	"github.com/rebelice/lazystay/internal/store"
	"github.com/rebelice/lazystay/internal/ui/components"
	"github.com/rebelice/lazystay/internal/ui/theme"
)

// screen is one list with its live filter, search text and filter sheet
type screen interface {
	Domain() models.Domain
	Load(recs source.Records)
	Restore() error

	Search() string
	SetSearch(q string)
	VisibleCount() int
	TotalCount() int
	ActiveCount() int
	Summary() string

	OpenSheet()
	SheetVisible() bool
	UpdateSheet(msg tea.KeyMsg) tea.Cmd
	SheetMouse(msg tea.MouseMsg) bool
	SheetView(width int) string
	Clear(persist bool) tea.Cmd

	List() *components.ListView
	Refresh()

	Table() export.Table
	JSONWriter(path string) func() error
	SavePreset(m *presets.Manager, name string) (*models.Preset, error)
	ApplyPreset(p models.Preset) (tea.Cmd, error)
}

// filterValue is a domain filter shape
type filterValue[F any] interface {
	filter.Cloner[F]
	ActiveCount() int
}

// FilterPersistedMsg reports the outcome of writing a live filter to the store
type FilterPersistedMsg struct {
	Domain models.Domain
	Err    error
}

type screenConfig[T any, F filterValue[F]] struct {
	domain   models.Domain
	sections []filter.Section[F]
	pristine func() F
	apply    func(records []T, f F, search string) []T
	pick     func(recs source.Records) []T
	table    func(records []T) export.Table
	card     func(record T) components.Card
	empty    string
}

type memoKey struct {
	revision   int
	generation int
	search     string
}

// listScreen implements screen for records T filtered by F
type listScreen[T any, F filterValue[F]] struct {
	cfg   screenConfig[T, F]
	sheet *components.FilterSheet[F]
	slot  *store.Slot[F]
	list  *components.ListView

	records  []T
	revision int

	live       F
	generation int
	committed  bool
	search     string

	memoKey   memoKey
	memoValid bool
	memo      []T
}

func newListScreen[T any, F filterValue[F]](cfg screenConfig[T, F], th theme.Theme, cardWidth int, st *store.Store) *listScreen[T, F] {
	s := &listScreen[T, F]{
		cfg:  cfg,
		live: cfg.pristine(),
		list: components.NewListView(th, cardWidth),
	}
	s.list.SetEmptyMessage(cfg.empty)

	engine := filter.NewSheet(filter.SheetConfig[F]{
		Sections: cfg.sections,
		Reset:    cfg.pristine(),
		OnChange: s.commit,
	})
	s.sheet = components.NewFilterSheet(cfg.domain, engine, th)

	if st != nil {
		s.slot = store.NewSlot(st, string(cfg.domain), cfg.pristine)
	}
	return s
}

// commit is the sheet's OnChange: the only writer of the live filter
func (s *listScreen[T, F]) commit(next F) {
	s.live = next
	s.generation++
	s.committed = true
}

func (s *listScreen[T, F]) Domain() models.Domain {
	return s.cfg.domain
}

func (s *listScreen[T, F]) Load(recs source.Records) {
	s.records = s.cfg.pick(recs)
	s.revision++
	s.Refresh()
}

// Restore replaces the live filter with the persisted one
func (s *listScreen[T, F]) Restore() error {
	if s.slot == nil {
		return nil
	}
	v, err := s.slot.Get()
	s.live = v
	s.generation++
	return err
}

func (s *listScreen[T, F]) Search() string {
	return s.search
}

func (s *listScreen[T, F]) SetSearch(q string) {
	s.search = q
	s.Refresh()
}

// visible returns the filtered records, recomputed only when the records,
// the live filter or the search text changed
func (s *listScreen[T, F]) visible() []T {
	key := memoKey{revision: s.revision, generation: s.generation, search: s.search}
	if s.memoValid && s.memoKey == key {
		return s.memo
	}
	s.memo = s.cfg.apply(s.records, s.live, s.search)
	s.memoKey = key
	s.memoValid = true
	return s.memo
}

func (s *listScreen[T, F]) VisibleCount() int {
	return len(s.visible())
}

func (s *listScreen[T, F]) TotalCount() int {
	return len(s.records)
}

func (s *listScreen[T, F]) ActiveCount() int {
	return s.live.ActiveCount()
}

// Summary describes the live filter in one line
func (s *listScreen[T, F]) Summary() string {
	var parts []string
	if n := s.live.ActiveCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d filter(s)", n))
	}
	if strings.TrimSpace(s.search) != "" {
		parts = append(parts, fmt.Sprintf("search %q", s.search))
	}
	if len(parts) == 0 {
		return "no filters"
	}
	return strings.Join(parts, ", ")
}

// Live returns a copy of the live filter
func (s *listScreen[T, F]) Live() F {
	return s.live.Clone()
}

func (s *listScreen[T, F]) OpenSheet() {
	s.sheet.Open(s.live)
}

func (s *listScreen[T, F]) SheetVisible() bool {
	return s.sheet.Visible()
}

func (s *listScreen[T, F]) UpdateSheet(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	s.sheet, cmd = s.sheet.Update(msg)
	return tea.Batch(cmd, s.afterCommit(true))
}

func (s *listScreen[T, F]) SheetMouse(msg tea.MouseMsg) bool {
	return s.sheet.HandleMouseClick(msg)
}

func (s *listScreen[T, F]) SheetView(width int) string {
	s.sheet.Width = width
	return s.sheet.View()
}

// Clear commits the pristine filter through the sheet
func (s *listScreen[T, F]) Clear(persist bool) tea.Cmd {
	engine := s.sheet.Sheet()
	engine.Open(s.live)
	engine.ClearAll()
	engine.Apply()
	return s.afterCommit(persist)
}

// afterCommit refreshes the list and persists the live filter once per Apply
func (s *listScreen[T, F]) afterCommit(persist bool) tea.Cmd {
	if !s.committed {
		return nil
	}
	s.committed = false
	s.Refresh()

	if !persist || s.slot == nil {
		return nil
	}
	slot, value, domain := s.slot, s.live.Clone(), s.cfg.domain
	return func() tea.Msg {
		return FilterPersistedMsg{Domain: domain, Err: slot.Set(value)}
	}
}

func (s *listScreen[T, F]) List() *components.ListView {
	return s.list
}

// Refresh pushes the visible records to the list view
func (s *listScreen[T, F]) Refresh() {
	rows := s.visible()
	cards := make([]components.Card, len(rows))
	for i, r := range rows {
		cards[i] = s.cfg.card(r)
	}
	s.list.SetCards(cards)
}

func (s *listScreen[T, F]) Table() export.Table {
	return s.cfg.table(s.visible())
}

// JSONWriter snapshots the visible records and returns a writer for path
func (s *listScreen[T, F]) JSONWriter(path string) func() error {
	rows := s.visible()
	return func() error {
		return export.ExportToJSON(rows, path)
	}
}

func (s *listScreen[T, F]) SavePreset(m *presets.Manager, name string) (*models.Preset, error) {
	return presets.Add(m, s.cfg.domain, name, s.live)
}

// ApplyPreset commits a preset's filter through the sheet
func (s *listScreen[T, F]) ApplyPreset(p models.Preset) (tea.Cmd, error) {
	if p.Domain != s.cfg.domain {
		return nil, fmt.Errorf("preset %q belongs to %s", p.Name, p.Domain.Title())
	}
	v, err := presets.Decode(p, s.cfg.pristine())
	if err != nil {
		return nil, err
	}

	engine := s.sheet.Sheet()
	engine.Open(s.live)
	engine.SetDraft(v.Clone())
	engine.Apply()
	return s.afterCommit(true), nil
}
