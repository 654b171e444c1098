package filter

import (
	"github.com/rebelice/lazystay/internal/models"
)

// Predicate reports whether a record stays visible.
// A nil Predicate is an unconstrained facet and is skipped.
type Predicate[T any] func(T) bool

// Apply returns the records that pass every predicate, in input order.
// The input slice is never modified.
func Apply[T any](records []T, preds ...Predicate[T]) []T {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		if passes(rec, active) {
			out = append(out, rec)
		}
	}
	return out
}

func passes[T any](rec T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if !p(rec) {
			return false
		}
	}
	return true
}

// Where wraps a fixed domain rule
func Where[T any](fn func(T) bool) Predicate[T] {
	return Predicate[T](fn)
}

// Search matches needle against any of the given text fields.
// It returns nil for a blank needle.
func Search[T any](needle string, fields ...func(T) string) Predicate[T] {
	if TextMatches("", needle) {
		return nil
	}
	return func(rec T) bool {
		for _, field := range fields {
			if TextMatches(field(rec), needle) {
				return true
			}
		}
		return false
	}
}

// Member keeps records whose field is in selected.
// It returns nil for an empty selection.
func Member[T any, V comparable](selected []V, field func(T) V) Predicate[T] {
	if len(selected) == 0 {
		return nil
	}
	return func(rec T) bool {
		return InSet(field(rec), selected)
	}
}

// Within keeps records whose raw date field falls inside r.
// Records with a missing or unparseable date are dropped.
// It returns nil when r has no bounds.
func Within[T any](r models.DateRange, field func(T) string) Predicate[T] {
	if r.IsZero() {
		return nil
	}
	bounds := NormalizeRange(r)
	return func(rec T) bool {
		t, ok := ParseDate(field(rec))
		if !ok {
			return false
		}
		return withinNormalized(t, bounds)
	}
}
