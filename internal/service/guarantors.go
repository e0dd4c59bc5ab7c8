package service

import (
	"context"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/observability"
	"github.com/Matheus-Mantovani/Rentify/internal/listview"
	"github.com/Matheus-Mantovani/Rentify/internal/port"

	"go.uber.org/zap"
)

// Guarantors serves the guarantor list with lease links.
type Guarantors struct {
	guarantors port.GuarantorFetcher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewGuarantors creates the guarantor list service.
func NewGuarantors(guarantors port.GuarantorFetcher, metrics *observability.Metrics, logger *zap.Logger) *Guarantors {
	return &Guarantors{guarantors: guarantors, metrics: metrics, logger: logger}
}

// GuarantorQuery narrows the guarantor list.
type GuarantorQuery struct {
	Search string
	Sort   listview.SortState
}

var guarantorColumns = map[string]listview.Comparator[domain.Guarantor]{
	"name": listview.ByString(func(g domain.Guarantor) string { return g.FullName }),
	"city": listview.ByString(func(g domain.Guarantor) string { return g.CityName }),
	"leases": listview.ByNumber(func(g domain.Guarantor) float64 {
		return float64(len(g.Leases))
	}),
}

// List returns the filtered, sorted guarantors.
func (s *Guarantors) List(ctx context.Context, token string, q GuarantorQuery) ([]domain.Guarantor, error) {
	ctx, span := tracer.Start(ctx, "Guarantors.List")
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("guarantors_list", time.Since(start))
	}()

	guarantors, err := s.guarantors.ListGuarantors(ctx, token)
	if err != nil {
		s.logger.Error("guarantor fetch failed", zap.Error(err))
		return nil, err
	}

	guarantors = listview.Filter(guarantors,
		listview.Search(q.Search, func(g domain.Guarantor) []string {
			return []string{g.FullName, g.CPF, g.Email, g.Phone}
		}),
	)
	return listview.SortBy(guarantors, guarantorColumns, q.Sort), nil
}
