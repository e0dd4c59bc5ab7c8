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
)

// Leases serves the lease list screen.
type Leases struct {
	leases  port.LeaseFetcher
	cache   port.Cache[[]domain.Lease]
	metrics *observability.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewLeases creates the lease list service.
func NewLeases(leases port.LeaseFetcher, cache port.Cache[[]domain.Lease], metrics *observability.Metrics, logger *zap.Logger) *Leases {
	return &Leases{
		leases:  leases,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock overrides the reference-date source. Tests pin it.
func (s *Leases) WithClock(now func() time.Time) *Leases {
	s.now = now
	return s
}

// LeaseRow is a lease projected for the list, with the 30-day expiry flag.
type LeaseRow struct {
	domain.Lease
	TenantDisplay   string `json:"tenantDisplay"`
	PropertyDisplay string `json:"propertyDisplay"`
	ExpiringSoon    bool   `json:"isExpiringSoon"`
}

// LeaseQuery narrows and orders the lease list.
type LeaseQuery struct {
	Search string
	Status string
	Sort   listview.SortState
}

var leaseColumns = map[string]listview.Comparator[LeaseRow]{
	"tenant":   listview.ByString(func(r LeaseRow) string { return r.TenantDisplay }),
	"property": listview.ByString(func(r LeaseRow) string { return r.PropertyDisplay }),
	"rent":     listview.ByNumber(func(r LeaseRow) float64 { return r.BaseRentValue }),
	"start":    listview.ByTime(func(r LeaseRow) time.Time { return r.StartDate }),
	"end":      listview.ByTime(func(r LeaseRow) time.Time { return r.EndDate }),
}

// List returns the filtered, sorted lease rows. The snapshot is cached per
// session; a mutation elsewhere invalidates the "leases:" prefix.
func (s *Leases) List(ctx context.Context, token string, q LeaseQuery) ([]LeaseRow, error) {
	ctx, span := tracer.Start(ctx, "Leases.List")
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("leases_list", time.Since(start))
	}()

	leases, err := s.snapshot(ctx, token)
	if err != nil {
		return nil, err
	}

	today := s.now()
	rows := make([]LeaseRow, len(leases))
	for i, l := range leases {
		rows[i] = LeaseRow{
			Lease:           l,
			TenantDisplay:   l.TenantName(),
			PropertyDisplay: l.PropertyAddress(),
			ExpiringSoon:    derive.LeaseExpiringSoon(l.EndDate, l.Status, today, derive.HorizonList),
		}
	}

	rows = listview.Filter(rows,
		listview.Search(q.Search, func(r LeaseRow) []string {
			return []string{r.TenantDisplay, r.PropertyDisplay, r.LandlordName}
		}),
		listview.Category(q.Status, func(r LeaseRow) string { return string(r.Status) }),
	)
	return listview.SortBy(rows, leaseColumns, q.Sort), nil
}

// Terminate records a move-out and drops the cached lease snapshots.
func (s *Leases) Terminate(ctx context.Context, token string, id int64, req *domain.TerminateLeaseRequest) error {
	ctx, span := tracer.Start(ctx, "Leases.Terminate")
	defer span.End()

	if req.MoveOutDate == "" {
		return &domain.ErrValidation{Field: "moveOutDate", Message: "move-out date is required"}
	}
	if err := s.leases.TerminateLease(ctx, token, id, req); err != nil {
		return err
	}
	s.cache.InvalidatePrefix("leases:")
	s.logger.Info("lease terminated", zap.Int64("lease_id", id))
	return nil
}

func (s *Leases) snapshot(ctx context.Context, token string) ([]domain.Lease, error) {
	key := scopeKey("leases", token)
	if cached, ok := s.cache.Get(key); ok {
		s.metrics.IncrCacheHit("leases")
		return cached, nil
	}
	s.metrics.IncrCacheMiss("leases")

	leases, err := s.leases.ListLeases(ctx, token, domain.LeaseFilter{})
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, leases)
	return leases, nil
}
