package service

import (
	"context"
	"sort"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/derive"
	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/observability"
	"github.com/Matheus-Mantovani/Rentify/internal/listview"
	"github.com/Matheus-Mantovani/Rentify/internal/port"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Tenants serves the tenant list with the derived isActive flag.
type Tenants struct {
	tenants port.TenantFetcher
	leases  port.LeaseFetcher
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewTenants creates the tenant list service.
func NewTenants(tenants port.TenantFetcher, leases port.LeaseFetcher, metrics *observability.Metrics, logger *zap.Logger) *Tenants {
	return &Tenants{
		tenants: tenants,
		leases:  leases,
		metrics: metrics,
		logger:  logger,
	}
}

// TenantQuery narrows the tenant list.
type TenantQuery struct {
	Search string
	State  string
	City   string
	Sort   listview.SortState
}

// TenantView is the tenant list plus the distinct cities feeding the city
// filter dropdown.
type TenantView struct {
	Rows   []domain.TenantRow `json:"rows"`
	Cities []string           `json:"cities"`
}

var tenantColumns = map[string]listview.Comparator[domain.TenantRow]{
	"name":  listview.ByString(func(r domain.TenantRow) string { return r.FullName }),
	"city":  listview.ByString(func(r domain.TenantRow) string { return r.CityName }),
	"email": listview.ByString(func(r domain.TenantRow) string { return r.Email }),
}

// List fetches tenants and active leases in parallel, then derives isActive
// through the active-lease index. Cities are collected from the state-filtered
// set so the dropdown only offers reachable values.
func (s *Tenants) List(ctx context.Context, token string, q TenantQuery) (*TenantView, error) {
	ctx, span := tracer.Start(ctx, "Tenants.List")
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("tenants_list", time.Since(start))
	}()

	var (
		tenants []domain.Tenant
		leases  []domain.Lease
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tenants, err = s.tenants.ListTenants(gCtx, token)
		return err
	})
	g.Go(func() error {
		var err error
		leases, err = s.leases.ListLeases(gCtx, token, domain.LeaseFilter{Status: domain.LeaseActive})
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("tenant fetch failed", zap.Error(err))
		return nil, err
	}

	idx := derive.BuildActiveLeaseIndex(leases)
	rows := make([]domain.TenantRow, len(tenants))
	for i, t := range tenants {
		rows[i] = domain.TenantRow{Tenant: t, IsActive: idx.TenantActive(t.ID)}
	}

	byState := listview.Filter(rows, listview.Category(q.State, func(r domain.TenantRow) string { return r.StateCode }))

	filtered := listview.Filter(byState,
		listview.Search(q.Search, func(r domain.TenantRow) []string {
			return []string{r.FullName, r.CPF, r.Email, r.Phone}
		}),
		listview.Category(q.City, func(r domain.TenantRow) string { return r.CityName }),
	)

	return &TenantView{
		Rows:   listview.SortBy(filtered, tenantColumns, q.Sort),
		Cities: uniqueCities(byState),
	}, nil
}

// uniqueCities extracts the sorted distinct city names of a tenant set.
func uniqueCities(rows []domain.TenantRow) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range rows {
		if r.CityName == "" {
			continue
		}
		if _, ok := seen[r.CityName]; ok {
			continue
		}
		seen[r.CityName] = struct{}{}
		out = append(out, r.CityName)
	}
	sort.Strings(out)
	return out
}
