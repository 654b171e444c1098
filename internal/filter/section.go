package filter

import (
	"time"

	"github.com/rebelice/lazystay/internal/models"
)

// Kind is the UI affordance of a facet section
type Kind int

const (
	KindCheckbox Kind = iota
	KindDateRange
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindCheckbox:
		return "checkbox"
	case KindDateRange:
		return "date-range"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Section describes one facet of a filter value F.
// The set of implementations is closed: *CheckboxSection, *DateRangeSection
// and *CustomSection.
type Section[F any] interface {
	Key() string
	Label() string
	Kind() Kind
	sealed()
}

// Checkbox is a checkbox section seen without its option value type
type Checkbox[F any] interface {
	Section[F]
	OptionLabels() []string
	Selected(f *F, option int) bool
	Toggle(f *F, option int) bool
	SelectedCount(f *F) int
}

// Option is one selectable value of a checkbox section
type Option[V comparable] struct {
	Label string
	Value V
}

// CheckboxSection is a multi-select facet stored as a slice of V
type CheckboxSection[F any, V comparable] struct {
	FacetKey string
	Title    string
	Options  []Option[V]
	// Field points at the facet slice inside a filter value
	Field func(f *F) *[]V
}

func (s *CheckboxSection[F, V]) Key() string   { return s.FacetKey }
func (s *CheckboxSection[F, V]) Label() string { return s.Title }
func (s *CheckboxSection[F, V]) Kind() Kind    { return KindCheckbox }
func (s *CheckboxSection[F, V]) sealed()       {}

// OptionLabels returns the option labels in display order
func (s *CheckboxSection[F, V]) OptionLabels() []string {
	labels := make([]string, len(s.Options))
	for i, opt := range s.Options {
		labels[i] = opt.Label
	}
	return labels
}

// Selected reports whether the option at index is in f's selection
func (s *CheckboxSection[F, V]) Selected(f *F, option int) bool {
	if option < 0 || option >= len(s.Options) {
		return false
	}
	for _, v := range *s.Field(f) {
		if v == s.Options[option].Value {
			return true
		}
	}
	return false
}

// Toggle flips the option at index in f's selection.
// It reports false for an index outside Options.
func (s *CheckboxSection[F, V]) Toggle(f *F, option int) bool {
	if option < 0 || option >= len(s.Options) {
		debugf("filter: section %q has no option %d", s.FacetKey, option)
		return false
	}
	field := s.Field(f)
	*field = Toggle(*field, s.Options[option].Value)
	return true
}

// SelectedCount returns the size of f's selection, including values that
// are not among Options
func (s *CheckboxSection[F, V]) SelectedCount(f *F) int {
	return len(*s.Field(f))
}

// Bound selects one side of a date range
type Bound int

const (
	BoundFrom Bound = iota
	BoundTo
)

func (b Bound) String() string {
	if b == BoundTo {
		return "to"
	}
	return "from"
}

// DateRangeSection is an inclusive day-range facet
type DateRangeSection[F any] struct {
	FacetKey    string
	Title       string
	AllowFuture bool
	Field       func(f *F) *models.DateRange
}

func (s *DateRangeSection[F]) Key() string   { return s.FacetKey }
func (s *DateRangeSection[F]) Label() string { return s.Title }
func (s *DateRangeSection[F]) Kind() Kind    { return KindDateRange }
func (s *DateRangeSection[F]) sealed()       {}

// Range returns f's range for this facet
func (s *DateRangeSection[F]) Range(f *F) models.DateRange {
	return *s.Field(f)
}

// SetBound sets or clears (nil date) one bound. Without AllowFuture a date
// after now is clamped to today.
func (s *DateRangeSection[F]) SetBound(f *F, which Bound, date *time.Time, now time.Time) {
	var v *time.Time
	if date != nil {
		d := StartOfDay(*date)
		if !s.AllowFuture && d.After(now) {
			d = StartOfDay(now)
		}
		v = &d
	}

	r := s.Field(f)
	if which == BoundTo {
		r.To = v
	} else {
		r.From = v
	}
}

// CustomSection hands the whole draft to domain code. The engine never
// reads or validates the value it maintains.
type CustomSection[F any] struct {
	FacetKey string
	Title    string
	// Render draws the section body
	Render func(draft F, setDraft func(F)) string
	// HandleKey reacts to a key press and reports whether it consumed it
	HandleKey func(draft F, key string, setDraft func(F)) bool
	// IsSet reports whether the facet constrains anything, for tab badges
	IsSet func(f F) bool
}

func (s *CustomSection[F]) Key() string   { return s.FacetKey }
func (s *CustomSection[F]) Label() string { return s.Title }
func (s *CustomSection[F]) Kind() Kind    { return KindCustom }
func (s *CustomSection[F]) sealed()       {}
