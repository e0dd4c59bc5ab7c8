package derive_test

import (
	"testing"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/derive"
	"github.com/Matheus-Mantovani/Rentify/internal/domain"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestLeaseExpiringSoon(t *testing.T) {
	today := date(2025, 6, 1)

	tests := []struct {
		name    string
		end     time.Time
		status  domain.LeaseStatus
		horizon int
		want    bool
	}{
		{"ends today", date(2025, 6, 1), domain.LeaseActive, 30, true},
		{"ends at horizon edge", date(2025, 7, 1), domain.LeaseActive, 30, true},
		{"ends one past horizon", date(2025, 7, 2), domain.LeaseActive, 30, false},
		{"already expired", date(2025, 5, 31), domain.LeaseActive, 30, false},
		{"terminated never expires soon", date(2025, 6, 10), domain.LeaseTerminated, 30, false},
		{"bell horizon reaches further", date(2025, 7, 20), domain.LeaseActive, 60, true},
		{"list horizon does not", date(2025, 7, 20), domain.LeaseActive, 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := derive.LeaseExpiringSoon(tt.end, tt.status, today, tt.horizon)
			if got != tt.want {
				t.Errorf("LeaseExpiringSoon(%v, %s, %d) = %v, want %v", tt.end, tt.status, tt.horizon, got, tt.want)
			}
		})
	}
}

func TestDueDate_ClampsToMonthEnd(t *testing.T) {
	tests := []struct {
		year, month, day int
		want             time.Time
	}{
		{2025, 2, 31, date(2025, 2, 28)},
		{2024, 2, 31, date(2024, 2, 29)}, // leap year
		{2025, 4, 31, date(2025, 4, 30)},
		{2025, 1, 31, date(2025, 1, 31)},
		{2025, 7, 5, date(2025, 7, 5)},
		{2025, 3, 0, date(2025, 3, 1)},
	}

	for _, tt := range tests {
		got := derive.DueDate(tt.year, tt.month, tt.day)
		if !got.Equal(tt.want) {
			t.Errorf("DueDate(%d, %d, %d) = %v, want %v", tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}

func TestPaymentRowStatus(t *testing.T) {
	due := date(2025, 6, 5)

	tests := []struct {
		name       string
		hasPayment bool
		today      time.Time
		want       domain.RowStatus
	}{
		{"paid always wins", true, date(2025, 12, 31), domain.RowPaid},
		{"pending before due date", false, date(2025, 6, 4), domain.RowPending},
		{"pending on due date", false, date(2025, 6, 5), domain.RowPending},
		{"late after due date", false, date(2025, 6, 6), domain.RowLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := derive.PaymentRowStatus(tt.hasPayment, due, tt.today)
			if got != tt.want {
				t.Errorf("PaymentRowStatus(%v, due=%v, today=%v) = %s, want %s", tt.hasPayment, due, tt.today, got, tt.want)
			}
		})
	}
}

func TestBuildActiveLeaseIndex(t *testing.T) {
	leases := []domain.Lease{
		{
			ID:       1,
			Status:   domain.LeaseActive,
			Tenant:   &domain.Tenant{ID: 10},
			Property: &domain.Property{ID: 100},
		},
		{
			ID:       2,
			Status:   domain.LeaseTerminated,
			Tenant:   &domain.Tenant{ID: 20},
			Property: &domain.Property{ID: 200},
		},
		{
			ID:     3,
			Status: domain.LeaseActive,
			Tenant: &domain.Tenant{ID: 30},
		},
	}

	idx := derive.BuildActiveLeaseIndex(leases)

	if !idx.TenantActive(10) {
		t.Error("tenant 10 should be active")
	}
	if idx.TenantActive(20) {
		t.Error("tenant 20 has only a terminated lease, should not be active")
	}
	if !idx.TenantActive(30) {
		t.Error("tenant 30 should be active even without a property")
	}
	if idx.TenantActive(99) {
		t.Error("unknown tenant should not be active")
	}

	if got := idx.PropertyLease(100); got == nil || got.ID != 1 {
		t.Errorf("PropertyLease(100) = %v, want lease 1", got)
	}
	if got := idx.PropertyLease(200); got != nil {
		t.Errorf("PropertyLease(200) = %v, want nil for terminated lease", got)
	}
}
