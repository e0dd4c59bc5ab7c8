package listview_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/listview"
)

type row struct {
	name   string
	status string
	amount float64
	date   time.Time
}

func sample() []row {
	return []row{
		{"Maria Oliveira", "ACTIVE", 2200, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{"João da Silva", "TERMINATED", 1500, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"Ana Souza", "ACTIVE", 1500, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"Carlos Lima", "ACTIVE", 3100, time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC)},
	}
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.name
	}
	return out
}

func TestSearch(t *testing.T) {
	fields := func(r row) []string { return []string{r.name} }

	got := listview.Filter(sample(), listview.Search("souza", fields))
	if want := []string{"Ana Souza"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("search 'souza' = %v, want %v", names(got), want)
	}

	// Empty term matches everything.
	got = listview.Filter(sample(), listview.Search("", fields))
	if len(got) != 4 {
		t.Errorf("empty search = %d rows, want 4", len(got))
	}

	// Case insensitive.
	got = listview.Filter(sample(), listview.Search("MARIA", fields))
	if len(got) != 1 {
		t.Errorf("uppercase search = %d rows, want 1", len(got))
	}
}

func TestCategoryFilter(t *testing.T) {
	status := func(r row) string { return r.status }

	got := listview.Filter(sample(), listview.Category("ACTIVE", status))
	if len(got) != 3 {
		t.Errorf("ACTIVE filter = %d rows, want 3", len(got))
	}
	for _, r := range got {
		if r.status != "ACTIVE" {
			t.Errorf("row %q leaked through ACTIVE filter with status %s", r.name, r.status)
		}
	}

	// Sentinels disable the filter.
	for _, sentinel := range []string{"", "ALL"} {
		got = listview.Filter(sample(), listview.Category(sentinel, status))
		if len(got) != 4 {
			t.Errorf("sentinel %q = %d rows, want 4", sentinel, len(got))
		}
	}
}

func TestDateRange(t *testing.T) {
	field := func(r row) time.Time { return r.date }
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	got := listview.Filter(sample(), listview.DateRange(from, to, field))
	if len(got) != 2 {
		t.Errorf("2025 range = %d rows, want 2", len(got))
	}

	// Inclusive bounds.
	exact := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	got = listview.Filter(sample(), listview.DateRange(exact, exact, field))
	if len(got) != 1 || got[0].name != "Ana Souza" {
		t.Errorf("exact-day range = %v, want [Ana Souza]", names(got))
	}

	// Open-ended range.
	got = listview.Filter(sample(), listview.DateRange(from, time.Time{}, field))
	if len(got) != 2 {
		t.Errorf("open upper bound = %d rows, want 2", len(got))
	}
}

func TestFilterIsPureAndIdempotent(t *testing.T) {
	rows := sample()
	orig := sample()
	preds := []listview.Predicate[row]{
		listview.Search("a", func(r row) []string { return []string{r.name} }),
		listview.Category("ACTIVE", func(r row) string { return r.status }),
	}

	once := listview.Filter(rows, preds...)
	twice := listview.Filter(once, preds...)

	if !reflect.DeepEqual(once, twice) {
		t.Error("filtering twice changed the result")
	}
	if !reflect.DeepEqual(rows, orig) {
		t.Error("filter mutated the input slice")
	}
	// filtered ⊆ original
	if len(once) > len(rows) {
		t.Error("filtered result larger than input")
	}
}

func TestSortToggle(t *testing.T) {
	s := listview.SortState{}

	s = s.Toggle("name")
	if s.Key != "name" || s.Dir != listview.Asc {
		t.Errorf("first click = %+v, want name/asc", s)
	}
	s = s.Toggle("name")
	if s.Dir != listview.Desc {
		t.Errorf("second click = %+v, want desc", s)
	}
	s = s.Toggle("name")
	if s.Dir != listview.Asc {
		t.Errorf("third click = %+v, want asc again", s)
	}
	s = s.Toggle("amount")
	if s.Key != "amount" || s.Dir != listview.Asc {
		t.Errorf("new column = %+v, want amount/asc", s)
	}
}

func TestSortKindsAndStability(t *testing.T) {
	columns := map[string]listview.Comparator[row]{
		"name":   listview.ByString(func(r row) string { return r.name }),
		"amount": listview.ByNumber(func(r row) float64 { return r.amount }),
		"date":   listview.ByTime(func(r row) time.Time { return r.date }),
	}

	byName := listview.SortBy(sample(), columns, listview.SortState{Key: "name", Dir: listview.Asc})
	want := []string{"Ana Souza", "Carlos Lima", "João da Silva", "Maria Oliveira"}
	if !reflect.DeepEqual(names(byName), want) {
		t.Errorf("sort by name = %v, want %v", names(byName), want)
	}

	// Stable on ties: the two 1500 rows keep input order, João before Ana.
	byAmount := listview.SortBy(sample(), columns, listview.SortState{Key: "amount", Dir: listview.Asc})
	if byAmount[0].name != "João da Silva" || byAmount[1].name != "Ana Souza" {
		t.Errorf("tie order not stable: %v", names(byAmount))
	}

	// Idempotent: sorting a sorted list is a no-op.
	again := listview.SortBy(byAmount, columns, listview.SortState{Key: "amount", Dir: listview.Asc})
	if !reflect.DeepEqual(names(byAmount), names(again)) {
		t.Error("re-sorting a sorted list changed the order")
	}

	// Toggling direction twice round-trips.
	desc := listview.SortBy(byAmount, columns, listview.SortState{Key: "amount", Dir: listview.Desc})
	back := listview.SortBy(desc, columns, listview.SortState{Key: "amount", Dir: listview.Asc})
	if !reflect.DeepEqual(names(byAmount), names(back)) {
		t.Errorf("asc→desc→asc = %v, want %v", names(back), names(byAmount))
	}

	// Unknown key leaves order untouched.
	untouched := listview.SortBy(sample(), columns, listview.SortState{Key: "bogus"})
	if !reflect.DeepEqual(names(untouched), names(sample())) {
		t.Error("unknown sort key reordered rows")
	}
}

func TestByPriority(t *testing.T) {
	statuses := []domain.RowStatus{domain.RowPaid, domain.RowLate, domain.RowPending}
	sorted := listview.Sort(statuses, listview.ByPriority(func(s domain.RowStatus) int { return s.Priority() }), listview.Asc)

	want := []domain.RowStatus{domain.RowLate, domain.RowPending, domain.RowPaid}
	if !reflect.DeepEqual(sorted, want) {
		t.Errorf("priority sort = %v, want %v", sorted, want)
	}
}

func TestSelectionBound(t *testing.T) {
	s := listview.NewSelection()

	for _, id := range []int64{1, 2, 3, 4} {
		if err := s.Toggle(id); err != nil {
			t.Fatalf("Toggle(%d) = %v", id, err)
		}
	}
	if s.Len() != 4 {
		t.Fatalf("Len = %d, want 4", s.Len())
	}

	// Fifth is rejected, set untouched.
	err := s.Toggle(5)
	var limit *domain.ErrSelectionLimit
	if !errors.As(err, &limit) {
		t.Fatalf("Toggle(5) = %v, want ErrSelectionLimit", err)
	}
	if s.Len() != 4 || s.Has(5) {
		t.Error("failed add modified the selection")
	}
	for _, id := range []int64{1, 2, 3, 4} {
		if !s.Has(id) {
			t.Errorf("member %d lost after rejected add", id)
		}
	}

	// Toggle removes, then re-adding works.
	if err := s.Toggle(2); err != nil {
		t.Fatalf("Toggle(2) remove = %v", err)
	}
	if s.Has(2) || s.Len() != 3 {
		t.Error("toggle did not remove member")
	}
	if err := s.Toggle(5); err != nil {
		t.Fatalf("Toggle(5) after removal = %v", err)
	}

	s.Clear()
	if s.Len() != 0 {
		t.Error("Clear left members behind")
	}
}
