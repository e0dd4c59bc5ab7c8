package service

import (
	"context"
	"strconv"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/document"
	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/observability"
	"github.com/Matheus-Mantovani/Rentify/internal/listview"
	"github.com/Matheus-Mantovani/Rentify/internal/port"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Documents renders printable contracts and receipts from entity snapshots.
type Documents struct {
	leases    port.LeaseFetcher
	payments  port.PaymentFetcher
	landlords *Landlords
	metrics   *observability.Metrics
	logger    *zap.Logger
}

// NewDocuments creates the document rendering service.
func NewDocuments(leases port.LeaseFetcher, payments port.PaymentFetcher, landlords *Landlords, metrics *observability.Metrics, logger *zap.Logger) *Documents {
	return &Documents{
		leases:    leases,
		payments:  payments,
		landlords: landlords,
		metrics:   metrics,
		logger:    logger,
	}
}

// Contract renders the residential lease contract for one lease. The lease,
// its guarantor links and the landlord profile are fetched in parallel;
// missing parties render as bracketed placeholders.
func (s *Documents) Contract(ctx context.Context, token string, leaseID int64) (*document.Document, error) {
	ctx, span := tracer.Start(ctx, "Documents.Contract")
	defer span.End()
	span.SetAttributes(attribute.Int64("lease.id", leaseID))

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("document_contract", time.Since(start))
	}()

	lease, err := s.leases.GetLease(ctx, token, leaseID)
	if err != nil {
		return nil, err
	}

	var (
		landlord  *domain.LandlordProfile
		guarantor *domain.Guarantor
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.landlordFor(gCtx, token, lease)
		if err != nil {
			// The contract still renders with placeholder landlord fields.
			s.logger.Warn("landlord profile unavailable for contract",
				zap.Int64("lease_id", leaseID),
				zap.Error(err),
			)
			return nil
		}
		landlord = p
		return nil
	})
	g.Go(func() error {
		links, err := s.leases.GetLeaseGuarantors(gCtx, token, leaseID)
		if err != nil || len(links) == 0 {
			return nil
		}
		guarantor = &domain.Guarantor{
			ID:       links[0].GuarantorID,
			FullName: links[0].GuarantorName,
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc, err := document.RenderContract(lease, landlord, guarantor)
	if err != nil {
		return nil, err
	}
	s.metrics.IncrDocumentRendered("contract")
	return doc, nil
}

// Receipt renders the rent receipt for one settled payment.
func (s *Documents) Receipt(ctx context.Context, token string, paymentID int64) (*document.Document, error) {
	ctx, span := tracer.Start(ctx, "Documents.Receipt")
	defer span.End()
	span.SetAttributes(attribute.Int64("payment.id", paymentID))

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("document_receipt", time.Since(start))
	}()

	in, err := s.receiptInput(ctx, token, paymentID)
	if err != nil {
		return nil, err
	}
	doc, err := document.RenderReceipt(in.Payment, in.Lease, in.Landlord)
	if err != nil {
		return nil, err
	}
	s.metrics.IncrDocumentRendered("receipt")
	return doc, nil
}

// ReceiptBatch renders up to four receipts as one print job. Duplicate ids
// collapse to a single receipt. The whole batch is assembled synchronously
// before anything is returned, so a second call cannot interleave with a
// half-built batch.
func (s *Documents) ReceiptBatch(ctx context.Context, token string, paymentIDs []int64) (*document.Batch, error) {
	ctx, span := tracer.Start(ctx, "Documents.ReceiptBatch")
	defer span.End()
	span.SetAttributes(attribute.Int("batch.size", len(paymentIDs)))

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("document_receipt_batch", time.Since(start))
	}()

	if len(paymentIDs) == 0 {
		return nil, &domain.ErrValidation{Field: "paymentIds", Message: "nenhum recibo selecionado"}
	}
	sel := listview.NewSelection()
	for _, id := range paymentIDs {
		if sel.Has(id) {
			continue
		}
		if err := sel.Toggle(id); err != nil {
			return nil, err
		}
	}
	ids := sel.IDs()

	inputs := make([]document.ReceiptInput, len(ids))
	g, gCtx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			in, err := s.receiptInput(gCtx, token, id)
			if err != nil {
				return err
			}
			inputs[i] = *in
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	batch, err := document.RenderReceiptBatch(inputs)
	if err != nil {
		return nil, err
	}
	for range batch.Documents {
		s.metrics.IncrDocumentRendered("receipt")
	}
	return batch, nil
}

// receiptInput resolves the payment, its lease and the lease's landlord
// profile.
func (s *Documents) receiptInput(ctx context.Context, token string, paymentID int64) (*document.ReceiptInput, error) {
	payment, err := s.payments.GetPayment(ctx, token, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, &domain.ErrNotFound{Resource: "payment", ID: strconv.FormatInt(paymentID, 10)}
	}
	lease, err := s.leases.GetLease(ctx, token, payment.LeaseID)
	if err != nil {
		return nil, err
	}
	landlord, err := s.landlordFor(ctx, token, lease)
	if err != nil {
		landlord = nil
	}
	return &document.ReceiptInput{Payment: payment, Lease: lease, Landlord: landlord}, nil
}

// landlordFor resolves the lease's named profile, falling back to the default
// profile when the lease carries none.
func (s *Documents) landlordFor(ctx context.Context, token string, lease *domain.Lease) (*domain.LandlordProfile, error) {
	if lease.LandlordProfileID != 0 {
		return s.landlords.landlords.GetLandlordProfile(ctx, token, lease.LandlordProfileID)
	}
	return s.landlords.DefaultProfile(ctx, token)
}
