package service_test

import (
	"context"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// mockLeases implements port.LeaseFetcher.
type mockLeases struct {
	leases     []domain.Lease
	guarantors []domain.LeaseGuarantor
	err        error
	terminated []int64
}

func (m *mockLeases) ListLeases(_ context.Context, _ string, filter domain.LeaseFilter) ([]domain.Lease, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Lease, 0, len(m.leases))
	for _, l := range m.leases {
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		if filter.LandlordProfileID != 0 && l.LandlordProfileID != filter.LandlordProfileID {
			continue
		}
		if filter.TenantID != 0 && (l.Tenant == nil || l.Tenant.ID != filter.TenantID) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (m *mockLeases) GetLease(_ context.Context, _ string, id int64) (*domain.Lease, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.leases {
		if m.leases[i].ID == id {
			return &m.leases[i], nil
		}
	}
	return nil, &domain.ErrNotFound{Resource: "lease", ID: "?"}
}

func (m *mockLeases) GetLeaseGuarantors(_ context.Context, _ string, leaseID int64) ([]domain.LeaseGuarantor, error) {
	out := []domain.LeaseGuarantor{}
	for _, g := range m.guarantors {
		if g.LeaseID == leaseID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *mockLeases) TerminateLease(_ context.Context, _ string, id int64, _ *domain.TerminateLeaseRequest) error {
	if m.err != nil {
		return m.err
	}
	m.terminated = append(m.terminated, id)
	return nil
}

// mockPayments implements port.PaymentFetcher.
type mockPayments struct {
	payments []domain.Payment
	err      error
	created  []domain.CreatePaymentRequest
}

func (m *mockPayments) ListPayments(_ context.Context, _ string, filter domain.PaymentFilter) ([]domain.Payment, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Payment, 0, len(m.payments))
	for _, p := range m.payments {
		if filter.LeaseID != 0 && p.LeaseID != filter.LeaseID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockPayments) GetPayment(_ context.Context, _ string, id int64) (*domain.Payment, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.payments {
		if m.payments[i].ID == id {
			return &m.payments[i], nil
		}
	}
	return nil, &domain.ErrNotFound{Resource: "payment", ID: "?"}
}

func (m *mockPayments) CreatePayment(_ context.Context, _ string, req *domain.CreatePaymentRequest) (*domain.Payment, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, *req)
	return &domain.Payment{ID: int64(len(m.created)), LeaseID: req.LeaseID, AmountPaid: req.AmountPaid}, nil
}

// mockTenants implements port.TenantFetcher.
type mockTenants struct {
	tenants []domain.Tenant
	err     error
}

func (m *mockTenants) ListTenants(_ context.Context, _ string) ([]domain.Tenant, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tenants, nil
}

func (m *mockTenants) GetTenant(_ context.Context, _ string, id int64) (*domain.Tenant, error) {
	for i := range m.tenants {
		if m.tenants[i].ID == id {
			return &m.tenants[i], nil
		}
	}
	return nil, &domain.ErrNotFound{Resource: "tenant", ID: "?"}
}

// mockLandlords implements port.LandlordFetcher.
type mockLandlords struct {
	profiles []domain.LandlordProfile
	err      error
}

func (m *mockLandlords) ListLandlordProfiles(_ context.Context, _ string) ([]domain.LandlordProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.profiles, nil
}

func (m *mockLandlords) GetLandlordProfile(_ context.Context, _ string, id int64) (*domain.LandlordProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.profiles {
		if m.profiles[i].ID == id {
			return &m.profiles[i], nil
		}
	}
	return nil, &domain.ErrNotFound{Resource: "landlord-profile", ID: "?"}
}

// mockReports implements port.ReportsFetcher.
type mockReports struct {
	summary    *domain.DashboardSummary
	financials []domain.MonthlyFinancial
	income     *domain.AnnualIncomeReport
	late       []domain.LatePayment
	activities []domain.Activity
	expiring   []domain.ExpiringLease

	summaryErr  error
	incomeErr   error
	expiringErr error
	feedErr     error
}

func (m *mockReports) GetDashboardSummary(_ context.Context, _ string) (*domain.DashboardSummary, error) {
	if m.summaryErr != nil {
		return nil, m.summaryErr
	}
	return m.summary, nil
}

func (m *mockReports) GetMonthlyFinancials(_ context.Context, _ string, _ int) ([]domain.MonthlyFinancial, error) {
	return m.financials, nil
}

func (m *mockReports) GetAnnualIncome(_ context.Context, _ string, _ int64, _ int) (*domain.AnnualIncomeReport, error) {
	if m.incomeErr != nil {
		return nil, m.incomeErr
	}
	return m.income, nil
}

func (m *mockReports) GetLatePayments(_ context.Context, _ string, _, _ int) ([]domain.LatePayment, error) {
	return m.late, nil
}

func (m *mockReports) GetRecentActivities(_ context.Context, _ string) ([]domain.Activity, error) {
	if m.feedErr != nil {
		return nil, m.feedErr
	}
	return m.activities, nil
}

func (m *mockReports) GetExpiringLeases(_ context.Context, _ string, _ int) ([]domain.ExpiringLease, error) {
	if m.expiringErr != nil {
		return nil, m.expiringErr
	}
	return m.expiring, nil
}

// mockLocations implements port.LocationFetcher.
type mockLocations struct {
	states []domain.State
	cities []domain.City
	err    error
	calls  int
}

func (m *mockLocations) ListStates(_ context.Context, _ string) ([]domain.State, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.states, nil
}

func (m *mockLocations) SearchCities(_ context.Context, _ string, stateCode, query string) ([]domain.City, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	out := []domain.City{}
	for _, c := range m.cities {
		if c.StateCode != stateCode {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// mockCache implements port.Cache[T] without expiry.
type mockCache[T any] struct {
	items map[string]T
}

func newMockCache[T any]() *mockCache[T] {
	return &mockCache[T]{items: make(map[string]T)}
}

func (m *mockCache[T]) Get(key string) (T, bool) {
	v, ok := m.items[key]
	return v, ok
}

func (m *mockCache[T]) Set(key string, value T) { m.items[key] = value }
func (m *mockCache[T]) Delete(key string)       { delete(m.items, key) }

func (m *mockCache[T]) InvalidatePrefix(prefix string) {
	for k := range m.items {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(m.items, k)
		}
	}
}

// mockAuth implements port.Authenticator.
type mockAuth struct {
	token string
	err   error
}

func (m *mockAuth) Login(_ context.Context, _ *domain.LoginRequest) (*domain.AuthToken, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.AuthToken{Token: m.token}, nil
}

func (m *mockAuth) Register(_ context.Context, _ *domain.RegisterRequest) (*domain.AuthToken, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.AuthToken{Token: m.token}, nil
}
