package service_test

import (
	"context"
	"testing"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/observability"
	"github.com/Matheus-Mantovani/Rentify/internal/listview"
	"github.com/Matheus-Mantovani/Rentify/internal/service"

	"go.uber.org/zap"
)

func tenantsFixture() (*mockTenants, *mockLeases) {
	tenants := &mockTenants{tenants: []domain.Tenant{
		{ID: 1, FullName: "Ana Lima", CityName: "Campinas", StateCode: "SP"},
		{ID: 2, FullName: "Bruno Dias", CityName: "Santos", StateCode: "SP"},
		{ID: 3, FullName: "Carla Souza", CityName: "Niterói", StateCode: "RJ"},
	}}
	leases := &mockLeases{leases: []domain.Lease{
		{ID: 10, Status: domain.LeaseActive, Tenant: &domain.Tenant{ID: 1}},
		{ID: 11, Status: domain.LeaseTerminated, Tenant: &domain.Tenant{ID: 2}},
	}}
	return tenants, leases
}

func newTenants(t *mockTenants, l *mockLeases) *service.Tenants {
	return service.NewTenants(t, l, observability.NewMetrics(), zap.NewNop())
}

func TestTenants_ActiveFlag(t *testing.T) {
	svc := newTenants(tenantsFixture())

	view, err := svc.List(context.Background(), "tok", service.TenantQuery{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(view.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(view.Rows))
	}
	active := map[int64]bool{}
	for _, r := range view.Rows {
		active[r.ID] = r.IsActive
	}
	if !active[1] {
		t.Error("tenant 1 has an active lease and must be active")
	}
	// A terminated lease does not make a tenant active.
	if active[2] {
		t.Error("tenant 2 only has a terminated lease")
	}
	if active[3] {
		t.Error("tenant 3 has no lease at all")
	}
}

func TestTenants_StateAndCityFilter(t *testing.T) {
	svc := newTenants(tenantsFixture())

	view, err := svc.List(context.Background(), "tok", service.TenantQuery{State: "SP"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(view.Rows) != 2 {
		t.Fatalf("SP rows = %d, want 2", len(view.Rows))
	}
	// The city dropdown only offers cities of the selected state, sorted.
	if len(view.Cities) != 2 || view.Cities[0] != "Campinas" || view.Cities[1] != "Santos" {
		t.Errorf("cities = %v", view.Cities)
	}

	view, err = svc.List(context.Background(), "tok", service.TenantQuery{State: "SP", City: "Santos"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(view.Rows) != 1 || view.Rows[0].FullName != "Bruno Dias" {
		t.Fatalf("city filter returned %d rows", len(view.Rows))
	}
}

func TestTenants_SearchAndSort(t *testing.T) {
	svc := newTenants(tenantsFixture())

	view, err := svc.List(context.Background(), "tok", service.TenantQuery{
		Sort: listview.SortState{Key: "name", Dir: listview.Desc},
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if view.Rows[0].FullName != "Carla Souza" {
		t.Errorf("desc name sort first = %s", view.Rows[0].FullName)
	}

	view, err = svc.List(context.Background(), "tok", service.TenantQuery{Search: "BRUNO"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(view.Rows) != 1 || view.Rows[0].ID != 2 {
		t.Fatalf("search returned %d rows", len(view.Rows))
	}
}
