package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/observability"
	"github.com/Matheus-Mantovani/Rentify/internal/listview"
	"github.com/Matheus-Mantovani/Rentify/internal/service"

	"go.uber.org/zap"
)

func landlordFixture() (*mockLandlords, *mockLeases, *mockPayments, *mockReports) {
	landlords := &mockLandlords{profiles: []domain.LandlordProfile{
		{ID: 1, FullName: "Carlos Souza", IsDefault: false},
		{ID: 2, FullName: "Maria Prado", IsDefault: true},
	}}
	leases := &mockLeases{leases: []domain.Lease{
		{
			ID: 10, Status: domain.LeaseActive, LandlordProfileID: 1, BaseRentValue: 1500,
			EndDate:  date(2024, 6, 1),
			Tenant:   &domain.Tenant{ID: 11, FullName: "Ana Lima"},
			Property: &domain.Property{ID: 21, Address: "Rua A, 1"},
		},
		{
			ID: 11, Status: domain.LeaseTerminated, LandlordProfileID: 1, BaseRentValue: 900,
			EndDate:  date(2023, 1, 1),
			Tenant:   &domain.Tenant{ID: 12, FullName: "Bruno Dias"},
			Property: &domain.Property{ID: 22, Address: "Rua B, 2"},
		},
	}}
	payments := &mockPayments{payments: []domain.Payment{
		{ID: 100, LeaseID: 10, AmountPaid: 1500, LateFees: 50, PaymentDate: date(2024, 5, 10), Method: domain.MethodPix},
		{ID: 101, LeaseID: 11, AmountPaid: 900, PaymentDate: date(2022, 12, 5), Method: domain.MethodCash},
	}}
	reports := &mockReports{income: &domain.AnnualIncomeReport{
		Year: 2024, LandlordProfileID: 1, YearTotal: 1500,
		MonthlyData: []domain.MonthlyIncome{{Month: 5, TotalIncome: 1500}},
	}}
	return landlords, leases, payments, reports
}

func newLandlords(l *mockLandlords, le *mockLeases, p *mockPayments, r *mockReports) *service.Landlords {
	return service.NewLandlords(l, le, p, r, observability.NewMetrics(), zap.NewNop()).
		WithClock(func() time.Time { return date(2024, 5, 15) })
}

func TestLandlords_Details(t *testing.T) {
	svc := newLandlords(landlordFixture())

	view, err := svc.Details(context.Background(), "tok", 1, service.LandlordQuery{Year: 2024})
	if err != nil {
		t.Fatalf("Details: %v", err)
	}

	if view.Profile == nil || view.Profile.FullName != "Carlos Souza" {
		t.Fatal("wrong profile")
	}
	// KPI: one active lease at 1500, two distinct properties overall.
	if view.KPI.TotalRevenue != 1500 || view.KPI.ActiveCount != 1 || view.KPI.TotalProperties != 2 {
		t.Errorf("kpi = %+v", view.KPI)
	}
	if len(view.Contracts) != 2 {
		t.Fatalf("contracts = %d, want 2", len(view.Contracts))
	}
	// Lease 10 ends 2024-06-01, 17 days from the pinned today.
	for _, c := range view.Contracts {
		if c.ID == 10 && !c.ExpiringSoon {
			t.Error("lease 10 should be expiring soon")
		}
		if c.ID == 11 && c.ExpiringSoon {
			t.Error("terminated lease 11 must not be expiring soon")
		}
	}
	if view.Totals.TotalAmount != 2400 || view.Totals.TotalFines != 50 || view.Totals.Count != 2 {
		t.Errorf("totals = %+v", view.Totals)
	}
	// Annual income zero-filled to twelve months.
	if view.AnnualIncome == nil || len(view.AnnualIncome.MonthlyData) != 12 {
		t.Fatal("annual income not zero-filled")
	}
	if view.AnnualIncome.MonthlyData[4].TotalIncome != 1500 {
		t.Errorf("may income = %v, want 1500", view.AnnualIncome.MonthlyData[4].TotalIncome)
	}
}

func TestLandlords_ContractFilters(t *testing.T) {
	svc := newLandlords(landlordFixture())

	view, err := svc.Details(context.Background(), "tok", 1, service.LandlordQuery{
		Year:         2024,
		ExpiringOnly: true,
	})
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if len(view.Contracts) != 1 || view.Contracts[0].ID != 10 {
		t.Fatalf("expiringOnly returned %d contracts", len(view.Contracts))
	}

	view, err = svc.Details(context.Background(), "tok", 1, service.LandlordQuery{
		Year:           2024,
		ContractStatus: string(domain.LeaseTerminated),
	})
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if len(view.Contracts) != 1 || view.Contracts[0].ID != 11 {
		t.Fatalf("status filter returned %d contracts", len(view.Contracts))
	}
}

func TestLandlords_PaymentFilters(t *testing.T) {
	svc := newLandlords(landlordFixture())

	view, err := svc.Details(context.Background(), "tok", 1, service.LandlordQuery{
		Year:        2024,
		Method:      string(domain.MethodPix),
		From:        date(2024, 1, 1),
		PaymentSort: listview.SortState{Key: "amount", Dir: listview.Desc},
	})
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if len(view.Payments) != 1 || view.Payments[0].ID != 100 {
		t.Fatalf("payment filters returned %d rows", len(view.Payments))
	}
	if view.Totals.TotalAmount != 1500 {
		t.Errorf("filtered totals = %+v", view.Totals)
	}
}

func TestLandlords_IncomeReportFailureIsSoft(t *testing.T) {
	landlords, leases, payments, reports := landlordFixture()
	reports.incomeErr = errors.New("report service down")
	svc := newLandlords(landlords, leases, payments, reports)

	view, err := svc.Details(context.Background(), "tok", 1, service.LandlordQuery{Year: 2024})
	if err != nil {
		t.Fatalf("Details should tolerate a missing income report, got %v", err)
	}
	if view.AnnualIncome != nil {
		t.Error("annual income should be nil when the report fails")
	}
}

func TestLandlords_DefaultProfile(t *testing.T) {
	landlords, leases, payments, reports := landlordFixture()
	svc := newLandlords(landlords, leases, payments, reports)

	p, err := svc.DefaultProfile(context.Background(), "tok")
	if err != nil {
		t.Fatalf("DefaultProfile: %v", err)
	}
	if p.ID != 2 {
		t.Errorf("default profile = %d, want 2 (first flagged default)", p.ID)
	}

	// No default flag: first profile wins.
	landlords.profiles[1].IsDefault = false
	p, err = svc.DefaultProfile(context.Background(), "tok")
	if err != nil {
		t.Fatalf("DefaultProfile: %v", err)
	}
	if p.ID != 1 {
		t.Errorf("fallback profile = %d, want 1", p.ID)
	}
}
