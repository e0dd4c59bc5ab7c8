package service

import (
	"context"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/derive"
	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/observability"
	"github.com/Matheus-Mantovani/Rentify/internal/listview"
	"github.com/Matheus-Mantovani/Rentify/internal/port"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Properties serves the property list.
type Properties struct {
	properties port.PropertyFetcher
	leases     port.LeaseFetcher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewProperties creates the property list service.
func NewProperties(properties port.PropertyFetcher, leases port.LeaseFetcher, metrics *observability.Metrics, logger *zap.Logger) *Properties {
	return &Properties{
		properties: properties,
		leases:     leases,
		metrics:    metrics,
		logger:     logger,
	}
}

// PropertyRow is a property with its current tenant, when rented.
type PropertyRow struct {
	domain.Property
	CurrentTenant string  `json:"currentTenant,omitempty"`
	CurrentRent   float64 `json:"currentRent,omitempty"`
}

// PropertyQuery narrows the property list.
type PropertyQuery struct {
	Search string
	Status string
	Sort   listview.SortState
}

var propertyColumns = map[string]listview.Comparator[PropertyRow]{
	"address": listview.ByString(func(r PropertyRow) string { return r.Address }),
	"city":    listview.ByString(func(r PropertyRow) string { return r.CityName }),
	"value":   listview.ByNumber(func(r PropertyRow) float64 { return r.CurrentMarketValue }),
	"rent":    listview.ByNumber(func(r PropertyRow) float64 { return r.CurrentRent }),
}

// List fetches properties and active leases in parallel and joins the
// occupying tenant onto each rented property.
func (s *Properties) List(ctx context.Context, token string, q PropertyQuery) ([]PropertyRow, error) {
	ctx, span := tracer.Start(ctx, "Properties.List")
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("properties_list", time.Since(start))
	}()

	var (
		properties []domain.Property
		leases     []domain.Lease
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		properties, err = s.properties.ListProperties(gCtx, token)
		return err
	})
	g.Go(func() error {
		var err error
		leases, err = s.leases.ListLeases(gCtx, token, domain.LeaseFilter{Status: domain.LeaseActive})
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("property fetch failed", zap.Error(err))
		return nil, err
	}

	idx := derive.BuildActiveLeaseIndex(leases)
	rows := make([]PropertyRow, len(properties))
	for i, p := range properties {
		row := PropertyRow{Property: p}
		if l := idx.PropertyLease(p.ID); l != nil {
			row.CurrentTenant = l.TenantName()
			row.CurrentRent = l.BaseRentValue
		}
		rows[i] = row
	}

	rows = listview.Filter(rows,
		listview.Search(q.Search, func(r PropertyRow) []string {
			return []string{r.Address, r.Neighborhood, r.CityName, r.RegistrationNumber, r.CurrentTenant}
		}),
		listview.Category(q.Status, func(r PropertyRow) string { return string(r.Status) }),
	)
	return listview.SortBy(rows, propertyColumns, q.Sort), nil
}
