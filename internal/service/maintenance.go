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

// Maintenance serves the maintenance job list.
type Maintenance struct {
	jobs    port.MaintenanceFetcher
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewMaintenance creates the maintenance list service.
func NewMaintenance(jobs port.MaintenanceFetcher, metrics *observability.Metrics, logger *zap.Logger) *Maintenance {
	return &Maintenance{jobs: jobs, metrics: metrics, logger: logger}
}

// MaintenanceQuery narrows and orders the job list.
type MaintenanceQuery struct {
	Search string
	Status string
	Sort   listview.SortState
}

var maintenanceColumns = map[string]listview.Comparator[domain.MaintenanceJob]{
	"property": listview.ByString(func(j domain.MaintenanceJob) string { return j.PropertyAddress }),
	"cost":     listview.ByNumber(func(j domain.MaintenanceJob) float64 { return j.TotalCost }),
	"date":     listview.ByTime(func(j domain.MaintenanceJob) time.Time { return j.RequestDate }),
	// PENDING < IN_PROGRESS < COMPLETED < CANCELED; unknown statuses last.
	"status": listview.ByPriority(func(j domain.MaintenanceJob) int { return j.Status.Priority() }),
}

// List returns the filtered, sorted maintenance jobs.
func (s *Maintenance) List(ctx context.Context, token string, q MaintenanceQuery) ([]domain.MaintenanceJob, error) {
	ctx, span := tracer.Start(ctx, "Maintenance.List")
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("maintenance_list", time.Since(start))
	}()

	jobs, err := s.jobs.ListMaintenanceJobs(ctx, token)
	if err != nil {
		s.logger.Error("maintenance fetch failed", zap.Error(err))
		return nil, err
	}

	jobs = listview.Filter(jobs,
		listview.Search(q.Search, func(j domain.MaintenanceJob) []string {
			return []string{j.PropertyAddress, j.ServiceDescription, j.ServiceProvider}
		}),
		listview.Category(q.Status, func(j domain.MaintenanceJob) string { return string(j.Status) }),
	)
	return listview.SortBy(jobs, maintenanceColumns, q.Sort), nil
}
