package filter

import (
	"slices"
	"strings"
	"time"

	"github.com/rebelice/lazystay/internal/models"
	"github.com/spf13/cast"
)

// debugf receives integration assertions (unknown facet keys, bad option
// indexes). It is silent unless SetDebugLogger installs a sink.
var debugf = func(string, ...any) {}

// SetDebugLogger installs the sink for integration assertions.
// Passing nil silences them again.
func SetDebugLogger(fn func(format string, args ...any)) {
	if fn == nil {
		fn = func(string, ...any) {}
	}
	debugf = fn
}

// TextMatches reports whether haystack contains needle, ignoring case.
// A blank needle matches everything.
func TextMatches(haystack, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// InSet reports whether value is one of selected.
// An empty selection means the facet is unconstrained and matches everything.
func InSet[V comparable](value V, selected []V) bool {
	if len(selected) == 0 {
		return true
	}
	return slices.Contains(selected, value)
}

// Toggle returns a new selection with v removed if present, appended otherwise
func Toggle[V comparable](selected []V, v V) []V {
	if i := slices.Index(selected, v); i >= 0 {
		out := make([]V, 0, len(selected)-1)
		out = append(out, selected[:i]...)
		return append(out, selected[i+1:]...)
	}
	out := make([]V, 0, len(selected)+1)
	out = append(out, selected...)
	return append(out, v)
}

// ParseDate parses a record date as sent by the backend.
// Date-only values are read in local time.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := cast.ToTimeInDefaultLocationE(raw, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// StartOfDay returns local midnight of t's local calendar day
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(time.Local).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// EndOfDay returns the last instant of t's local calendar day
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.In(time.Local).Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), time.Local)
}

// NormalizeRange swaps inverted bounds and widens them to whole local days
func NormalizeRange(r models.DateRange) models.DateRange {
	from, to := r.From, r.To
	if from != nil && to != nil && to.Before(*from) {
		from, to = to, from
	}

	var out models.DateRange
	if from != nil {
		start := StartOfDay(*from)
		out.From = &start
	}
	if to != nil {
		end := EndOfDay(*to)
		out.To = &end
	}
	return out
}

// DateInRange reports whether candidate falls inside r, inclusive of whole days.
// A nil candidate never matches. Callers skip the check when r has no bounds.
func DateInRange(candidate *time.Time, r models.DateRange) bool {
	if candidate == nil {
		return false
	}
	return withinNormalized(*candidate, NormalizeRange(r))
}

func withinNormalized(t time.Time, n models.DateRange) bool {
	if n.From != nil && t.Before(*n.From) {
		return false
	}
	if n.To != nil && t.After(*n.To) {
		return false
	}
	return true
}
