package rentify

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// GetDashboardSummary fetches the upstream KPI rollup.
func (c *Client) GetDashboardSummary(ctx context.Context, token string) (*domain.DashboardSummary, error) {
	ctx, span := tracer.Start(ctx, "Rentify.GetDashboardSummary")
	defer span.End()

	body, err := c.call(ctx, "reports", http.MethodGet, "/reports/dashboard-summary", token, nil)
	if err != nil {
		return nil, err
	}
	summary, err := decode[domain.DashboardSummary](body)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetMonthlyFinancials fetches the sparse revenue/expense list for one year.
// Callers zero-fill it into twelve buckets.
func (c *Client) GetMonthlyFinancials(ctx context.Context, token string, year int) ([]domain.MonthlyFinancial, error) {
	ctx, span := tracer.Start(ctx, "Rentify.GetMonthlyFinancials")
	defer span.End()
	span.SetAttributes(attribute.Int("year", year))

	path := fmt.Sprintf("/reports/financials?year=%d", year)
	body, err := c.call(ctx, "reports", http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]domain.MonthlyFinancial](body)
}

type annualIncomeRow struct {
	Year              int     `json:"year"`
	LandlordProfileID int64   `json:"landlordProfileId"`
	LandlordName      string  `json:"landlordName"`
	YearTotal         float64 `json:"yearTotal"`
	MonthlyData       []struct {
		Month       int     `json:"month"`
		TotalIncome float64 `json:"totalIncome"`
	} `json:"monthlyData"`
}

// GetAnnualIncome fetches a landlord profile's income report for one year.
// The sparse upstream months are returned as-is; the service zero-fills.
func (c *Client) GetAnnualIncome(ctx context.Context, token string, landlordProfileID int64, year int) (*domain.AnnualIncomeReport, error) {
	ctx, span := tracer.Start(ctx, "Rentify.GetAnnualIncome")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("landlord.id", landlordProfileID),
		attribute.Int("year", year),
	)

	path := fmt.Sprintf("/reports/annual-income?landlordProfileId=%d&year=%d", landlordProfileID, year)
	body, err := c.call(ctx, "reports", http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	row, err := decode[annualIncomeRow](body)
	if err != nil {
		return nil, err
	}
	report := &domain.AnnualIncomeReport{
		Year:              row.Year,
		LandlordProfileID: row.LandlordProfileID,
		LandlordName:      row.LandlordName,
		YearTotal:         row.YearTotal,
	}
	for _, m := range row.MonthlyData {
		report.MonthlyData = append(report.MonthlyData, domain.MonthlyIncome{
			Month:       m.Month,
			TotalIncome: m.TotalIncome,
		})
	}
	return report, nil
}

type latePaymentRow struct {
	LeaseID         int64   `json:"leaseId"`
	PropertyAddress string  `json:"propertyAddress"`
	TenantName      string  `json:"tenantName"`
	PaymentDueDay   int     `json:"paymentDueDay"`
	ReferenceMonth  int     `json:"referenceMonth"`
	RentValue       float64 `json:"rentValue"`
	DaysLate        int64   `json:"daysLate"`
}

// GetLatePayments fetches the defaulters report for one reference period.
func (c *Client) GetLatePayments(ctx context.Context, token string, month, year int) ([]domain.LatePayment, error) {
	ctx, span := tracer.Start(ctx, "Rentify.GetLatePayments")
	defer span.End()

	path := fmt.Sprintf("/reports/late-payments?referenceMonth=%d&referenceYear=%d", month, year)
	body, err := c.call(ctx, "reports", http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	rows, err := decode[[]latePaymentRow](body)
	if err != nil {
		return nil, err
	}
	late := make([]domain.LatePayment, len(rows))
	for i, r := range rows {
		late[i] = domain.LatePayment(r)
	}
	return late, nil
}

type activityRow struct {
	Type          string  `json:"type"`
	Title         string  `json:"title"`
	Subtitle      string  `json:"subtitle"`
	Value         float64 `json:"value"`
	Date          string  `json:"date"`
	RelatedID     int64   `json:"relatedId"`
	DaysRemaining *int64  `json:"daysRemaining"`
}

// GetRecentActivities fetches the dashboard activity feed.
func (c *Client) GetRecentActivities(ctx context.Context, token string) ([]domain.Activity, error) {
	ctx, span := tracer.Start(ctx, "Rentify.GetRecentActivities")
	defer span.End()

	body, err := c.call(ctx, "reports", http.MethodGet, "/reports/recent-activities", token, nil)
	if err != nil {
		return nil, err
	}
	rows, err := decode[[]activityRow](body)
	if err != nil {
		return nil, err
	}
	activities := make([]domain.Activity, len(rows))
	for i, r := range rows {
		activities[i] = domain.Activity{
			Type:          domain.ActivityType(r.Type),
			Title:         r.Title,
			Subtitle:      r.Subtitle,
			Value:         r.Value,
			Date:          parseDate(r.Date),
			RelatedID:     r.RelatedID,
			DaysRemaining: r.DaysRemaining,
		}
	}
	return activities, nil
}

type expiringLeaseRow struct {
	LeaseID         int64  `json:"leaseId"`
	PropertyAddress string `json:"propertyAddress"`
	TenantName      string `json:"tenantName"`
	EndDate         string `json:"endDate"`
	DaysRemaining   int64  `json:"daysRemaining"`
}

// GetExpiringLeases fetches leases ending within the given horizon.
func (c *Client) GetExpiringLeases(ctx context.Context, token string, days int) ([]domain.ExpiringLease, error) {
	ctx, span := tracer.Start(ctx, "Rentify.GetExpiringLeases")
	defer span.End()
	span.SetAttributes(attribute.Int("horizon.days", days))

	path := fmt.Sprintf("/reports/leases/expiring?days=%d", days)
	body, err := c.call(ctx, "reports", http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	rows, err := decode[[]expiringLeaseRow](body)
	if err != nil {
		return nil, err
	}
	expiring := make([]domain.ExpiringLease, len(rows))
	for i, r := range rows {
		expiring[i] = domain.ExpiringLease{
			LeaseID:         r.LeaseID,
			PropertyAddress: r.PropertyAddress,
			TenantName:      r.TenantName,
			EndDate:         parseDate(r.EndDate),
			DaysRemaining:   r.DaysRemaining,
		}
	}
	return expiring, nil
}
