package rentify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

type paymentRow struct {
	ID             int64   `json:"id"`
	LeaseID        int64   `json:"leaseId"`
	AmountPaid     float64 `json:"amountPaid"`
	PaymentDate    string  `json:"paymentDate"`
	ReferenceMonth int     `json:"referenceMonth"`
	ReferenceYear  int     `json:"referenceYear"`
	LateFees       float64 `json:"lateFees"`
	Method         string  `json:"paymentMethod"`
	Notes          string  `json:"notes"`
}

func (r paymentRow) toDomain() domain.Payment {
	return domain.Payment{
		ID:             r.ID,
		LeaseID:        r.LeaseID,
		AmountPaid:     r.AmountPaid,
		PaymentDate:    parseDate(r.PaymentDate),
		ReferenceMonth: r.ReferenceMonth,
		ReferenceYear:  r.ReferenceYear,
		LateFees:       r.LateFees,
		Method:         domain.PaymentMethod(r.Method),
		Notes:          r.Notes,
	}
}

// ListPayments fetches payments, optionally narrowed by lease, tenant or
// landlord profile.
func (c *Client) ListPayments(ctx context.Context, token string, filter domain.PaymentFilter) ([]domain.Payment, error) {
	ctx, span := tracer.Start(ctx, "Rentify.ListPayments")
	defer span.End()

	q := url.Values{}
	if filter.LeaseID != 0 {
		q.Set("leaseId", strconv.FormatInt(filter.LeaseID, 10))
	}
	if filter.TenantID != 0 {
		q.Set("tenantId", strconv.FormatInt(filter.TenantID, 10))
	}
	if filter.LandlordProfileID != 0 {
		q.Set("landlordProfileId", strconv.FormatInt(filter.LandlordProfileID, 10))
	}
	path := "/payments"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	body, err := c.call(ctx, "payments", http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	rows, err := decode[[]paymentRow](body)
	if err != nil {
		return nil, err
	}
	payments := make([]domain.Payment, len(rows))
	for i, r := range rows {
		payments[i] = r.toDomain()
	}
	return payments, nil
}

// GetPayment fetches one payment.
func (c *Client) GetPayment(ctx context.Context, token string, id int64) (*domain.Payment, error) {
	ctx, span := tracer.Start(ctx, "Rentify.GetPayment")
	defer span.End()
	span.SetAttributes(attribute.Int64("payment.id", id))

	body, err := c.call(ctx, "payments", http.MethodGet, fmt.Sprintf("/payments/%d", id), token, nil)
	if err != nil {
		if _, ok := err.(*domain.ErrNotFound); ok {
			return nil, &domain.ErrNotFound{Resource: "payment", ID: strconv.FormatInt(id, 10)}
		}
		return nil, err
	}
	row, err := decode[paymentRow](body)
	if err != nil {
		return nil, err
	}
	p := row.toDomain()
	return &p, nil
}

// CreatePayment records a settlement for one lease-month.
func (c *Client) CreatePayment(ctx context.Context, token string, req *domain.CreatePaymentRequest) (*domain.Payment, error) {
	ctx, span := tracer.Start(ctx, "Rentify.CreatePayment")
	defer span.End()
	span.SetAttributes(attribute.Int64("lease.id", req.LeaseID))

	body, err := c.call(ctx, "payments", http.MethodPost, "/payments", token, req)
	if err != nil {
		return nil, err
	}
	row, err := decode[paymentRow](body)
	if err != nil {
		return nil, err
	}
	p := row.toDomain()
	return &p, nil
}
