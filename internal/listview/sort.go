package listview

import (
	"sort"
	"strings"
	"time"
)

// Direction of a sort.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortState is the (column, direction) pair driving a list's ordering.
type SortState struct {
	Key string    `json:"key"`
	Dir Direction `json:"direction"`
}

// Toggle returns the next state after a click on column key: the same column
// flips ASC→DESC→ASC, a different column resets to ASC.
func (s SortState) Toggle(key string) SortState {
	if s.Key == key && s.Dir == Asc {
		return SortState{Key: key, Dir: Desc}
	}
	return SortState{Key: key, Dir: Asc}
}

// Comparator orders two rows; negative means a before b under ASC.
type Comparator[T any] func(a, b T) int

// ByString compares a text field case-insensitively.
func ByString[T any](field func(T) string) Comparator[T] {
	return func(a, b T) int {
		return strings.Compare(strings.ToLower(field(a)), strings.ToLower(field(b)))
	}
}

// ByNumber compares a numeric field; callers map missing values to 0.
func ByNumber[T any](field func(T) float64) Comparator[T] {
	return func(a, b T) int {
		av, bv := field(a), field(b)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	}
}

// ByTime compares a date field by timestamp.
func ByTime[T any](field func(T) time.Time) Comparator[T] {
	return func(a, b T) int {
		av, bv := field(a), field(b)
		switch {
		case av.Before(bv):
			return -1
		case av.After(bv):
			return 1
		default:
			return 0
		}
	}
}

// ByPriority compares through a fixed enum-priority rank (e.g. LATE <
// PENDING < PAID for payment rows).
func ByPriority[T any](rank func(T) int) Comparator[T] {
	return func(a, b T) int {
		return rank(a) - rank(b)
	}
}

// Sort returns a sorted copy of rows. The sort is stable, so ties keep their
// incoming order and re-sorting an already-sorted list is a no-op. A nil
// comparator returns an unsorted copy.
func Sort[T any](rows []T, cmp Comparator[T], dir Direction) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	if cmp == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if dir == Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// SortBy resolves the comparator for state.Key from the view's column table
// and sorts. An unknown or empty key returns the rows unsorted (copied).
func SortBy[T any](rows []T, columns map[string]Comparator[T], state SortState) []T {
	cmp, ok := columns[state.Key]
	if !ok {
		return Sort(rows, nil, state.Dir)
	}
	return Sort(rows, cmp, state.Dir)
}
