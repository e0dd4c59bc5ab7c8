package service

import (
	"context"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/finance"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/observability"
	"github.com/Matheus-Mantovani/Rentify/internal/port"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Dashboard serves the home screen: KPI cards, the twelve-month chart and
// the recent-activities feed.
type Dashboard struct {
	reports port.ReportsFetcher
	metrics *observability.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewDashboard creates the dashboard service.
func NewDashboard(reports port.ReportsFetcher, metrics *observability.Metrics, logger *zap.Logger) *Dashboard {
	return &Dashboard{
		reports: reports,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock overrides the reference-date source. Tests pin it.
func (s *Dashboard) WithClock(now func() time.Time) *Dashboard {
	s.now = now
	return s
}

// DashboardView aggregates the three upstream reports.
type DashboardView struct {
	Year       int                      `json:"year"`
	Summary    *domain.DashboardSummary `json:"summary"`
	Series     []domain.MonthBucket     `json:"monthlySeries"`
	Activities []domain.Activity        `json:"recentActivities"`
}

// Overview fans out the summary, the year's financials and the activity feed
// in parallel. The chart always holds twelve buckets, zero-filled where the
// upstream list is sparse.
func (s *Dashboard) Overview(ctx context.Context, token string, year int) (*DashboardView, error) {
	ctx, span := tracer.Start(ctx, "Dashboard.Overview")
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("dashboard", time.Since(start))
	}()

	if year == 0 {
		year = s.now().Year()
	}
	span.SetAttributes(attribute.Int("year", year))

	var (
		summary    *domain.DashboardSummary
		financials []domain.MonthlyFinancial
		activities []domain.Activity
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.reports.GetDashboardSummary(gCtx, token)
		return err
	})
	g.Go(func() error {
		var err error
		financials, err = s.reports.GetMonthlyFinancials(gCtx, token, year)
		return err
	})
	g.Go(func() error {
		feed, err := s.reports.GetRecentActivities(gCtx, token)
		if err != nil {
			// The feed is decorative; the cards and chart still render.
			s.logger.Warn("recent activities unavailable", zap.Error(err))
			return nil
		}
		activities = feed
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DashboardView{
		Year:       year,
		Summary:    summary,
		Series:     finance.MonthlySeries(financials),
		Activities: activities,
	}, nil
}
