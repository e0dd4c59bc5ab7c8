// Package derive computes display statuses from entity snapshots. Every
// function is pure and deterministic given the reference date, so the same
// snapshot always projects to the same board.
package derive

import (
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
)

// Horizons used by the two expiring-lease call sites. List screens warn at
// 30 days; the notification bell looks further out.
const (
	HorizonList         = 30
	HorizonNotification = 60
)

// LeaseExpiringSoon reports whether an ACTIVE lease ends within horizonDays
// of today (inclusive on both ends). Terminated leases never expire "soon".
func LeaseExpiringSoon(endDate time.Time, status domain.LeaseStatus, today time.Time, horizonDays int) bool {
	if status != domain.LeaseActive {
		return false
	}
	days := DaysUntil(endDate, today)
	return days >= 0 && days <= int64(horizonDays)
}

// DaysUntil returns whole days from today until date, negative when past.
// Both arguments are truncated to midnight so partial days don't shift the
// boundary.
func DaysUntil(date, today time.Time) int64 {
	d := atMidnight(date)
	t := atMidnight(today)
	return int64(d.Sub(t).Hours() / 24)
}

// DueDate computes the rent due date for a reference period. A due day past
// the month's length clamps to the last day of the month: day 31 in February
// is due on Feb 28/29, not rolled into March.
func DueDate(refYear, refMonth, dueDay int) time.Time {
	if dueDay < 1 {
		dueDay = 1
	}
	last := daysInMonth(refYear, refMonth)
	if dueDay > last {
		dueDay = last
	}
	return time.Date(refYear, time.Month(refMonth), dueDay, 0, 0, 0, 0, time.UTC)
}

// PaymentRowStatus derives the settlement state of one lease-month. A
// matching payment always means PAID regardless of date; otherwise the row is
// LATE once today passes the due date.
func PaymentRowStatus(hasPayment bool, dueDate, today time.Time) domain.RowStatus {
	if hasPayment {
		return domain.RowPaid
	}
	if atMidnight(today).After(dueDate) {
		return domain.RowLate
	}
	return domain.RowPending
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
