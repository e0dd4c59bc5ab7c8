package service

import (
	"context"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/derive"
	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/finance"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/observability"
	"github.com/Matheus-Mantovani/Rentify/internal/listview"
	"github.com/Matheus-Mantovani/Rentify/internal/port"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Board builds the monthly payment board: one row per active lease with its
// settlement status for the reference period.
type Board struct {
	leases   port.LeaseFetcher
	payments port.PaymentFetcher
	metrics  *observability.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

// NewBoard creates the payment board service.
func NewBoard(leases port.LeaseFetcher, payments port.PaymentFetcher, metrics *observability.Metrics, logger *zap.Logger) *Board {
	return &Board{
		leases:   leases,
		payments: payments,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides the reference-date source. Tests pin it.
func (b *Board) WithClock(now func() time.Time) *Board {
	b.now = now
	return b
}

// BoardQuery narrows and orders the board.
type BoardQuery struct {
	Month  int
	Year   int
	Search string
	Sort   listview.SortState
}

// BoardView is the board projection returned to the dashboard.
type BoardView struct {
	Month int                 `json:"month"`
	Year  int                 `json:"year"`
	Rows  []domain.PaymentRow `json:"rows"`
	KPI   finance.KPI         `json:"kpi"`
}

var boardColumns = map[string]listview.Comparator[domain.PaymentRow]{
	"tenant":   listview.ByString(func(r domain.PaymentRow) string { return r.TenantName }),
	"property": listview.ByString(func(r domain.PaymentRow) string { return r.PropertyName }),
	"amount":   listview.ByNumber(func(r domain.PaymentRow) float64 { return r.Amount }),
	"dueDate":  listview.ByTime(func(r domain.PaymentRow) time.Time { return r.DueDate }),
	"status":   listview.ByPriority(func(r domain.PaymentRow) int { return r.Status.Priority() }),
}

// MonthBoard fetches active leases and the month's payments in parallel and
// joins them into board rows. A lease without a payment for the period shows
// PENDING until its due date passes, then LATE.
func (b *Board) MonthBoard(ctx context.Context, token string, q BoardQuery) (*BoardView, error) {
	ctx, span := tracer.Start(ctx, "Board.MonthBoard")
	defer span.End()
	span.SetAttributes(attribute.Int("month", q.Month), attribute.Int("year", q.Year))

	start := time.Now()
	defer func() {
		b.metrics.RecordRequestDuration("payments_board", time.Since(start))
	}()

	if q.Month < 1 || q.Month > 12 {
		return nil, &domain.ErrValidation{Field: "month", Message: "month must be between 1 and 12"}
	}
	if q.Year < 2000 || q.Year > 2200 {
		return nil, &domain.ErrValidation{Field: "year", Message: "year out of range"}
	}

	var (
		leases   []domain.Lease
		payments []domain.Payment
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leases, err = b.leases.ListLeases(gCtx, token, domain.LeaseFilter{Status: domain.LeaseActive})
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = b.payments.ListPayments(gCtx, token, domain.PaymentFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		b.logger.Error("board fetch failed", zap.Error(err))
		return nil, err
	}

	// At most one payment per (lease, period) upstream.
	byLease := make(map[int64]*domain.Payment, len(payments))
	for i := range payments {
		p := &payments[i]
		if p.ReferenceMonth == q.Month && p.ReferenceYear == q.Year {
			byLease[p.LeaseID] = p
		}
	}

	today := b.now()
	rows := make([]domain.PaymentRow, 0, len(leases))
	for i := range leases {
		l := &leases[i]
		payment := byLease[l.ID]
		dueDate := derive.DueDate(q.Year, q.Month, l.PaymentDueDay)

		row := domain.PaymentRow{
			Lease:        l,
			Payment:      payment,
			Status:       derive.PaymentRowStatus(payment != nil, dueDate, today),
			DueDate:      dueDate,
			TenantName:   l.TenantName(),
			PropertyName: l.PropertyAddress(),
			Amount:       l.BaseRentValue,
		}
		if payment != nil {
			row.Amount = payment.AmountPaid
		}
		rows = append(rows, row)
	}

	rows = listview.Filter(rows, listview.Search(q.Search, func(r domain.PaymentRow) []string {
		return []string{r.TenantName, r.PropertyName}
	}))
	rows = listview.SortBy(rows, boardColumns, q.Sort)

	return &BoardView{
		Month: q.Month,
		Year:  q.Year,
		Rows:  rows,
		KPI:   finance.BoardKPI(rows),
	}, nil
}
