package finance

import (
	"fmt"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
)

// Installment identifies which rent period of the lease a payment settles,
// as "current / total" on receipts.
type Installment struct {
	Current int
	Total   int
}

// String renders the "3 / 30" receipt header.
func (i Installment) String() string {
	return fmt.Sprintf("%d / %d", i.Current, i.Total)
}

// InstallmentFor numbers a payment within its lease term. Current is the
// 1-based month difference from lease start to the reference period, clamped
// to ≥1; Total is the month span of the lease but never less than Current,
// so an extended lease cannot display "3 of 2".
func InstallmentFor(lease *domain.Lease, payment *domain.Payment) Installment {
	current := monthDiff(lease.StartDate, payment.ReferenceYear, int(payment.ReferenceMonth)) + 1
	if current < 1 {
		current = 1
	}
	total := monthSpan(lease.StartDate, lease.EndDate)
	if total < current {
		total = current
	}
	return Installment{Current: current, Total: total}
}

// monthDiff counts whole calendar months from start to (year, month).
func monthDiff(start time.Time, year, month int) int {
	return (year-start.Year())*12 + (month - int(start.Month()))
}

// monthSpan counts the calendar months between two dates, inclusive of both
// endpoints, so Jan 2024 through Jun 2026 is 30 months.
func monthSpan(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
}
