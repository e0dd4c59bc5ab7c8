// Package listview implements the filtering, sorting and selection rules
// shared by every list screen. All operations are pure: the input slice is
// never mutated and the same (rows, filters, sort) triple always yields the
// same output.
package listview

import (
	"strings"
	"time"
)

// Predicate decides membership of a row in the filtered view.
type Predicate[T any] func(T) bool

// Filter returns the rows satisfying every predicate, preserving order.
// The result is always a fresh slice.
func Filter[T any](rows []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		ok := true
		for _, p := range preds {
			if !p(r) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, r)
		}
	}
	return out
}

// Search matches rows whose listed text fields contain the term,
// case-insensitively. An empty term matches everything.
func Search[T any](term string, fields func(T) []string) Predicate[T] {
	term = strings.ToLower(strings.TrimSpace(term))
	return func(row T) bool {
		if term == "" {
			return true
		}
		for _, f := range fields(row) {
			if strings.Contains(strings.ToLower(f), term) {
				return true
			}
		}
		return false
	}
}

// Category matches rows whose enum field equals the wanted value exactly.
// Empty string and "ALL" are sentinels meaning no filter.
func Category[T any](want string, field func(T) string) Predicate[T] {
	return func(row T) bool {
		if want == "" || want == "ALL" {
			return true
		}
		return field(row) == want
	}
}

// DateRange matches rows whose date field falls inside [from, to], both ends
// inclusive. A zero bound leaves that side open.
func DateRange[T any](from, to time.Time, field func(T) time.Time) Predicate[T] {
	return func(row T) bool {
		d := field(row)
		if !from.IsZero() && d.Before(from) {
			return false
		}
		if !to.IsZero() && d.After(to) {
			return false
		}
		return true
	}
}

// Where wraps an arbitrary condition as a predicate. Used for one-off flags
// like "expiring only".
func Where[T any](cond func(T) bool) Predicate[T] {
	return Predicate[T](cond)
}
