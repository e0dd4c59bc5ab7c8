package finance_test

import (
	"testing"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/finance"
)

func TestBoardKPI_PendingFlooredAtZero(t *testing.T) {
	rows := []domain.PaymentRow{
		{
			Lease:   &domain.Lease{BaseRentValue: 3000},
			Payment: &domain.Payment{AmountPaid: 3500},
		},
	}

	k := finance.BoardKPI(rows)
	if k.Expected != 3000 {
		t.Errorf("Expected = %.2f, want 3000.00", k.Expected)
	}
	if k.Received != 3500 {
		t.Errorf("Received = %.2f, want 3500.00", k.Received)
	}
	if k.Pending != 0 {
		t.Errorf("Pending = %.2f, want 0.00 (never negative)", k.Pending)
	}
}

func TestBoardKPI_SumsAcrossRows(t *testing.T) {
	rows := []domain.PaymentRow{
		{Lease: &domain.Lease{BaseRentValue: 1500}, Payment: &domain.Payment{AmountPaid: 1500}},
		{Lease: &domain.Lease{BaseRentValue: 2200}},
		{Lease: &domain.Lease{BaseRentValue: 800}},
	}

	k := finance.BoardKPI(rows)
	if k.Expected != 4500 || k.Received != 1500 || k.Pending != 3000 {
		t.Errorf("KPI = %+v, want expected=4500 received=1500 pending=3000", k)
	}
}

func TestSummarizeLeases(t *testing.T) {
	leases := []domain.Lease{
		{Status: domain.LeaseActive, BaseRentValue: 2000, Property: &domain.Property{ID: 1}},
		{Status: domain.LeaseActive, BaseRentValue: 1000, Property: &domain.Property{ID: 2}},
		{Status: domain.LeaseTerminated, BaseRentValue: 999, Property: &domain.Property{ID: 1}},
	}

	k := finance.SummarizeLeases(leases)
	if k.TotalRevenue != 3000 {
		t.Errorf("TotalRevenue = %.2f, want 3000 (terminated excluded)", k.TotalRevenue)
	}
	if k.ActiveCount != 2 {
		t.Errorf("ActiveCount = %d, want 2", k.ActiveCount)
	}
	if k.TotalProperties != 2 {
		t.Errorf("TotalProperties = %d, want 2 distinct", k.TotalProperties)
	}
}

func TestSumPayments(t *testing.T) {
	payments := []domain.Payment{
		{AmountPaid: 1500, LateFees: 0},
		{AmountPaid: 2050, LateFees: 50},
	}

	totals := finance.SumPayments(payments)
	if totals.TotalAmount != 3550 || totals.TotalFines != 50 || totals.Count != 2 {
		t.Errorf("totals = %+v", totals)
	}
}

func TestMonthlySeries_AlwaysTwelveBuckets(t *testing.T) {
	sparse := []domain.MonthlyFinancial{
		{Month: 3, TotalRevenue: 4500, TotalExpenses: 1200},
		{Month: 11, TotalRevenue: 5000},
		{Month: 13, TotalRevenue: 9999}, // out of range, dropped
	}

	buckets := finance.MonthlySeries(sparse)
	if len(buckets) != 12 {
		t.Fatalf("len = %d, want 12", len(buckets))
	}
	if buckets[0].Name != "Jan" || buckets[11].Name != "Dez" {
		t.Errorf("bucket names wrong: %s ... %s", buckets[0].Name, buckets[11].Name)
	}
	if buckets[2].Revenue != 4500 || buckets[2].Expenses != 1200 {
		t.Errorf("March bucket = %+v", buckets[2])
	}
	if buckets[10].Revenue != 5000 {
		t.Errorf("November bucket = %+v", buckets[10])
	}
	for i, b := range buckets {
		if i != 2 && i != 10 && (b.Revenue != 0 || b.Expenses != 0) {
			t.Errorf("bucket %d not zero-filled: %+v", i+1, b)
		}
	}

	empty := finance.MonthlySeries(nil)
	if len(empty) != 12 {
		t.Errorf("empty input: len = %d, want 12", len(empty))
	}
}

func TestInstallmentFor(t *testing.T) {
	lease := &domain.Lease{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), // 30 months
	}

	tests := []struct {
		month, year int
		want        string
	}{
		{1, 2024, "1 / 30"},
		{3, 2024, "3 / 30"},
		{6, 2026, "30 / 30"},
		// Payment past the original term: total stretches, no "31 / 30".
		{7, 2026, "31 / 31"},
		// Reference before lease start clamps to the first installment.
		{12, 2023, "1 / 30"},
	}

	for _, tt := range tests {
		p := &domain.Payment{ReferenceMonth: tt.month, ReferenceYear: tt.year}
		got := finance.InstallmentFor(lease, p).String()
		if got != tt.want {
			t.Errorf("InstallmentFor(%d/%d) = %q, want %q", tt.month, tt.year, got, tt.want)
		}
	}
}

func TestInstallmentForSingleMonthLease(t *testing.T) {
	lease := &domain.Lease{
		StartDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
	}
	p := &domain.Payment{ReferenceMonth: 5, ReferenceYear: 2024}
	if got := finance.InstallmentFor(lease, p).String(); got != "1 / 1" {
		t.Errorf("InstallmentFor(5/2024) = %q, want %q", got, "1 / 1")
	}
}

func TestMonthlyTax(t *testing.T) {
	if got := finance.MonthlyTax(1200); got != 100 {
		t.Errorf("MonthlyTax(1200) = %.2f, want 100.00", got)
	}
	if got := finance.MonthlyTax(0); got != 0 {
		t.Errorf("MonthlyTax(0) = %.2f, want 0", got)
	}
}

func TestFillAnnualIncome(t *testing.T) {
	report := &domain.AnnualIncomeReport{
		Year:        2025,
		MonthlyData: []domain.MonthlyIncome{{Month: 5, MonthName: "Maio", TotalIncome: 7000}},
	}

	finance.FillAnnualIncome(report)
	if len(report.MonthlyData) != 12 {
		t.Fatalf("len = %d, want 12", len(report.MonthlyData))
	}
	if report.MonthlyData[4].TotalIncome != 7000 || report.MonthlyData[4].MonthName != "Maio" {
		t.Errorf("May entry = %+v", report.MonthlyData[4])
	}
	if report.MonthlyData[0].TotalIncome != 0 || report.MonthlyData[0].MonthName != "Jan" {
		t.Errorf("January entry = %+v", report.MonthlyData[0])
	}
}
