package service

import (
	"context"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/observability"
	"github.com/Matheus-Mantovani/Rentify/internal/port"

	"go.uber.org/zap"
)

// Payments handles payment mutations and cache invalidation.
type Payments struct {
	payments port.PaymentFetcher
	cache    port.Cache[[]domain.Lease]
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewPayments creates the payment mutation service.
func NewPayments(payments port.PaymentFetcher, cache port.Cache[[]domain.Lease], metrics *observability.Metrics, logger *zap.Logger) *Payments {
	return &Payments{payments: payments, cache: cache, metrics: metrics, logger: logger}
}

// Create records a settlement for one lease-month and invalidates the cached
// lease snapshots so the board reflects it on the next load.
func (s *Payments) Create(ctx context.Context, token string, req *domain.CreatePaymentRequest) (*domain.Payment, error) {
	ctx, span := tracer.Start(ctx, "Payments.Create")
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("payment_create", time.Since(start))
	}()

	if req.LeaseID == 0 {
		return nil, &domain.ErrValidation{Field: "leaseId", Message: "lease id is required"}
	}
	if req.AmountPaid <= 0 {
		return nil, &domain.ErrValidation{Field: "amountPaid", Message: "amount must be positive"}
	}
	if req.ReferenceMonth < 1 || req.ReferenceMonth > 12 {
		return nil, &domain.ErrValidation{Field: "referenceMonth", Message: "month must be between 1 and 12"}
	}

	p, err := s.payments.CreatePayment(ctx, token, req)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidatePrefix("leases:")
	s.logger.Info("payment recorded",
		zap.Int64("lease_id", req.LeaseID),
		zap.Int("reference_month", req.ReferenceMonth),
		zap.Int("reference_year", req.ReferenceYear),
	)
	return p, nil
}
