package service

import (
	"context"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/derive"
	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/observability"
	"github.com/Matheus-Mantovani/Rentify/internal/port"

	"go.uber.org/zap"
)

// Notifications serves the bell icon: leases ending within the 60-day
// horizon.
type Notifications struct {
	reports port.ReportsFetcher
	leases  port.LeaseFetcher
	metrics *observability.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewNotifications creates the notification service.
func NewNotifications(reports port.ReportsFetcher, leases port.LeaseFetcher, metrics *observability.Metrics, logger *zap.Logger) *Notifications {
	return &Notifications{
		reports: reports,
		leases:  leases,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock overrides the reference-date source. Tests pin it.
func (s *Notifications) WithClock(now func() time.Time) *Notifications {
	s.now = now
	return s
}

// Expiring returns the leases ending within the notification horizon. The
// upstream report is preferred; when it is unavailable the list is derived
// locally from the lease snapshot so the bell still works through a partial
// outage.
func (s *Notifications) Expiring(ctx context.Context, token string) ([]domain.ExpiringLease, error) {
	ctx, span := tracer.Start(ctx, "Notifications.Expiring")
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("notifications", time.Since(start))
	}()

	expiring, err := s.reports.GetExpiringLeases(ctx, token, derive.HorizonNotification)
	if err == nil {
		return expiring, nil
	}
	s.logger.Warn("expiring-leases report unavailable, deriving locally", zap.Error(err))

	leases, lerr := s.leases.ListLeases(ctx, token, domain.LeaseFilter{Status: domain.LeaseActive})
	if lerr != nil {
		return nil, err
	}

	today := s.now()
	out := make([]domain.ExpiringLease, 0)
	for _, l := range leases {
		if !derive.LeaseExpiringSoon(l.EndDate, l.Status, today, derive.HorizonNotification) {
			continue
		}
		out = append(out, domain.ExpiringLease{
			LeaseID:         l.ID,
			PropertyAddress: l.PropertyAddress(),
			TenantName:      l.TenantName(),
			EndDate:         l.EndDate,
			DaysRemaining:   derive.DaysUntil(l.EndDate, today),
		})
	}
	return out, nil
}

// LatePayments proxies the defaulters report for one reference period,
// defaulting to the current month.
func (s *Notifications) LatePayments(ctx context.Context, token string, month, year int) ([]domain.LatePayment, error) {
	ctx, span := tracer.Start(ctx, "Notifications.LatePayments")
	defer span.End()

	if month == 0 || year == 0 {
		now := s.now()
		month, year = int(now.Month()), now.Year()
	}
	if month < 1 || month > 12 {
		return nil, &domain.ErrValidation{Field: "month", Message: "month must be between 1 and 12"}
	}
	return s.reports.GetLatePayments(ctx, token, month, year)
}
