// Package finance rolls entity snapshots up into the figures the dashboard
// and detail screens display: KPI cards, twelve-month chart series and
// receipt installment numbering.
package finance

import (
	"github.com/Matheus-Mantovani/Rentify/internal/domain"
)

// KPI is the expected/received/pending rollup shown above the payment board
// and on landlord details.
type KPI struct {
	Expected float64 `json:"expected"`
	Received float64 `json:"received"`
	Pending  float64 `json:"pending"`
}

// BoardKPI sums the board rows: expected rent over the listed leases,
// received over their matched payments. Pending is floored at zero so an
// overpaid month never displays negative.
func BoardKPI(rows []domain.PaymentRow) KPI {
	var k KPI
	for _, r := range rows {
		if r.Lease != nil {
			k.Expected += r.Lease.BaseRentValue
		}
		if r.Payment != nil {
			k.Received += r.Payment.AmountPaid
		}
	}
	k.Pending = k.Expected - k.Received
	if k.Pending < 0 {
		k.Pending = 0
	}
	return k
}

// LandlordKPI is the header rollup of the landlord detail screen.
type LandlordKPI struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	ActiveCount     int     `json:"activeCount"`
	TotalProperties int     `json:"totalProperties"`
}

// SummarizeLeases computes a landlord's KPI header from their leases:
// expected monthly revenue over ACTIVE leases and the count of distinct
// properties across all of them.
func SummarizeLeases(leases []domain.Lease) LandlordKPI {
	var k LandlordKPI
	props := make(map[int64]struct{})
	for _, l := range leases {
		if l.Status == domain.LeaseActive {
			k.TotalRevenue += l.BaseRentValue
			k.ActiveCount++
		}
		if l.Property != nil {
			props[l.Property.ID] = struct{}{}
		}
	}
	k.TotalProperties = len(props)
	return k
}

// PaymentTotals is the footer rollup of a filtered payment history.
type PaymentTotals struct {
	TotalAmount float64 `json:"totalAmount"`
	TotalFines  float64 `json:"totalFines"`
	Count       int     `json:"count"`
}

// SumPayments totals the filtered payment set.
func SumPayments(payments []domain.Payment) PaymentTotals {
	var t PaymentTotals
	for _, p := range payments {
		t.TotalAmount += p.AmountPaid
		t.TotalFines += p.LateFees
		t.Count++
	}
	return t
}

// MonthlyTax apportions an annual property-tax figure onto one receipt line.
func MonthlyTax(annualTax float64) float64 {
	if annualTax <= 0 {
		return 0
	}
	return annualTax / 12
}
