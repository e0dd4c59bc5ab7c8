// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the domain/service
// layer from concrete implementations.
package port

import (
	"context"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
)

// Authenticator exchanges credentials for an upstream session token.
type Authenticator interface {
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthToken, error)
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthToken, error)
}

// LeaseFetcher retrieves leases and their mutations.
type LeaseFetcher interface {
	ListLeases(ctx context.Context, token string, filter domain.LeaseFilter) ([]domain.Lease, error)
	GetLease(ctx context.Context, token string, id int64) (*domain.Lease, error)
	GetLeaseGuarantors(ctx context.Context, token string, leaseID int64) ([]domain.LeaseGuarantor, error)
	TerminateLease(ctx context.Context, token string, id int64, req *domain.TerminateLeaseRequest) error
}

// PaymentFetcher retrieves payments and records new ones.
type PaymentFetcher interface {
	ListPayments(ctx context.Context, token string, filter domain.PaymentFilter) ([]domain.Payment, error)
	GetPayment(ctx context.Context, token string, id int64) (*domain.Payment, error)
	CreatePayment(ctx context.Context, token string, req *domain.CreatePaymentRequest) (*domain.Payment, error)
}

// TenantFetcher retrieves tenants.
type TenantFetcher interface {
	ListTenants(ctx context.Context, token string) ([]domain.Tenant, error)
	GetTenant(ctx context.Context, token string, id int64) (*domain.Tenant, error)
}

// PropertyFetcher retrieves properties.
type PropertyFetcher interface {
	ListProperties(ctx context.Context, token string) ([]domain.Property, error)
	GetProperty(ctx context.Context, token string, id int64) (*domain.Property, error)
}

// LandlordFetcher retrieves landlord profiles.
type LandlordFetcher interface {
	ListLandlordProfiles(ctx context.Context, token string) ([]domain.LandlordProfile, error)
	GetLandlordProfile(ctx context.Context, token string, id int64) (*domain.LandlordProfile, error)
}

// GuarantorFetcher retrieves guarantors with their lease links.
type GuarantorFetcher interface {
	ListGuarantors(ctx context.Context, token string) ([]domain.Guarantor, error)
}

// MaintenanceFetcher retrieves maintenance jobs.
type MaintenanceFetcher interface {
	ListMaintenanceJobs(ctx context.Context, token string) ([]domain.MaintenanceJob, error)
}

// ReportsFetcher retrieves the upstream pre-aggregated reports.
type ReportsFetcher interface {
	GetDashboardSummary(ctx context.Context, token string) (*domain.DashboardSummary, error)
	GetMonthlyFinancials(ctx context.Context, token string, year int) ([]domain.MonthlyFinancial, error)
	GetAnnualIncome(ctx context.Context, token string, landlordProfileID int64, year int) (*domain.AnnualIncomeReport, error)
	GetLatePayments(ctx context.Context, token string, month, year int) ([]domain.LatePayment, error)
	GetRecentActivities(ctx context.Context, token string) ([]domain.Activity, error)
	GetExpiringLeases(ctx context.Context, token string, days int) ([]domain.ExpiringLease, error)
}

// LocationFetcher retrieves states and cities for address filters.
type LocationFetcher interface {
	ListStates(ctx context.Context, token string) ([]domain.State, error)
	SearchCities(ctx context.Context, token string, stateCode, query string) ([]domain.City, error)
}

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
	InvalidatePrefix(prefix string)
}
