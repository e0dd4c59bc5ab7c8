package finance

import "github.com/Matheus-Mantovani/Rentify/internal/domain"

// monthNames holds the abbreviated pt-BR month labels used on chart axes.
var monthNames = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// MonthName returns the abbreviated pt-BR name for month 1–12.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// MonthlySeries expands the backend's sparse financials list into exactly
// twelve buckets, January through December, zero-filling months with no
// data. Entries outside 1–12 are ignored.
func MonthlySeries(sparse []domain.MonthlyFinancial) []domain.MonthBucket {
	buckets := make([]domain.MonthBucket, 12)
	for i := range buckets {
		buckets[i] = domain.MonthBucket{Month: i + 1, Name: monthNames[i]}
	}
	for _, m := range sparse {
		if m.Month < 1 || m.Month > 12 {
			continue
		}
		buckets[m.Month-1].Revenue = m.TotalRevenue
		buckets[m.Month-1].Expenses = m.TotalExpenses
	}
	return buckets
}

// FillAnnualIncome zero-fills a landlord's annual income report so the
// financials tab always renders twelve rows.
func FillAnnualIncome(report *domain.AnnualIncomeReport) {
	filled := make([]domain.MonthlyIncome, 12)
	for i := range filled {
		filled[i] = domain.MonthlyIncome{Month: i + 1, MonthName: monthNames[i]}
	}
	for _, m := range report.MonthlyData {
		if m.Month < 1 || m.Month > 12 {
			continue
		}
		name := m.MonthName
		if name == "" {
			name = monthNames[m.Month-1]
		}
		filled[m.Month-1] = domain.MonthlyIncome{Month: m.Month, MonthName: name, TotalIncome: m.TotalIncome}
	}
	report.MonthlyData = filled
}
