package listview

import (
	"sort"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
)

// MaxReceiptSelection bounds how many receipts fit on one printed page.
const MaxReceiptSelection = 4

// Selection is the bounded multi-select over paid payment rows used by the
// batch-receipt screens. Toggling a selected id removes it; adding past the
// bound fails and leaves the set unchanged.
type Selection struct {
	ids map[int64]struct{}
	max int
}

// NewSelection returns an empty selection bounded at MaxReceiptSelection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[int64]struct{}), max: MaxReceiptSelection}
}

// Toggle flips membership of id. Adding beyond the bound returns
// ErrSelectionLimit and the set is untouched.
func (s *Selection) Toggle(id int64) error {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return nil
	}
	if len(s.ids) >= s.max {
		return &domain.ErrSelectionLimit{Limit: s.max}
	}
	s.ids[id] = struct{}{}
	return nil
}

// Has reports membership.
func (s *Selection) Has(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the current size.
func (s *Selection) Len() int { return len(s.ids) }

// IDs returns the members in ascending order.
func (s *Selection) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clear empties the selection (after a batch is printed).
func (s *Selection) Clear() {
	s.ids = make(map[int64]struct{})
}
