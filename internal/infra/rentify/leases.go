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

// leaseRow maps the backend lease payload; dates arrive as yyyy-mm-dd strings.
type leaseRow struct {
	ID                int64        `json:"id"`
	Status            string       `json:"status"`
	Property          *propertyRow `json:"property"`
	Tenant            *tenantRow   `json:"tenant"`
	LandlordProfileID int64        `json:"landlordProfileId"`
	LandlordName      string       `json:"landlordName"`
	PaymentDueDay     int          `json:"paymentDueDay"`
	StartDate         string       `json:"startDate"`
	EndDate           string       `json:"endDate"`
	BaseRentValue     float64      `json:"baseRentValue"`
	SecurityDeposit   float64      `json:"securityDepositValue"`
	PaintingFeeValue  float64      `json:"paintingFeeValue"`
	GuaranteeType     string       `json:"guaranteeType"`

	RentValueInWords   string `json:"rentValueInWords"`
	DepositInWords     string `json:"depositValueInWords"`
	PaintingFeeInWords string `json:"paintingFeeInWords"`

	MoveOutDate      string `json:"moveOutDate"`
	MoveOutCondition string `json:"moveOutCondition"`
	MoveOutReason    string `json:"moveOutReason"`
}

func (r leaseRow) toDomain() domain.Lease {
	l := domain.Lease{
		ID:                 r.ID,
		Status:             domain.LeaseStatus(r.Status),
		LandlordProfileID:  r.LandlordProfileID,
		LandlordName:       r.LandlordName,
		PaymentDueDay:      r.PaymentDueDay,
		StartDate:          parseDate(r.StartDate),
		EndDate:            parseDate(r.EndDate),
		BaseRentValue:      r.BaseRentValue,
		SecurityDeposit:    r.SecurityDeposit,
		PaintingFeeValue:   r.PaintingFeeValue,
		GuaranteeType:      domain.GuaranteeType(r.GuaranteeType),
		RentValueInWords:   r.RentValueInWords,
		DepositInWords:     r.DepositInWords,
		PaintingFeeInWords: r.PaintingFeeInWords,
		MoveOutDate:        parseDatePtr(r.MoveOutDate),
		MoveOutCondition:   r.MoveOutCondition,
		MoveOutReason:      r.MoveOutReason,
	}
	if r.Property != nil {
		p := r.Property.toDomain()
		l.Property = &p
	}
	if r.Tenant != nil {
		t := r.Tenant.toDomain()
		l.Tenant = &t
	}
	return l
}

// ListLeases fetches leases, optionally narrowed by status, landlord profile
// or tenant.
func (c *Client) ListLeases(ctx context.Context, token string, filter domain.LeaseFilter) ([]domain.Lease, error) {
	ctx, span := tracer.Start(ctx, "Rentify.ListLeases")
	defer span.End()

	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if filter.LandlordProfileID != 0 {
		q.Set("landlordProfileId", strconv.FormatInt(filter.LandlordProfileID, 10))
	}
	if filter.TenantID != 0 {
		q.Set("tenantId", strconv.FormatInt(filter.TenantID, 10))
	}
	path := "/leases"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	body, err := c.call(ctx, "leases", http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	rows, err := decode[[]leaseRow](body)
	if err != nil {
		return nil, err
	}
	leases := make([]domain.Lease, len(rows))
	for i, r := range rows {
		leases[i] = r.toDomain()
	}
	return leases, nil
}

// GetLease fetches one lease with its nested tenant and property.
func (c *Client) GetLease(ctx context.Context, token string, id int64) (*domain.Lease, error) {
	ctx, span := tracer.Start(ctx, "Rentify.GetLease")
	defer span.End()
	span.SetAttributes(attribute.Int64("lease.id", id))

	body, err := c.call(ctx, "leases", http.MethodGet, fmt.Sprintf("/leases/%d", id), token, nil)
	if err != nil {
		if _, ok := err.(*domain.ErrNotFound); ok {
			return nil, &domain.ErrNotFound{Resource: "lease", ID: strconv.FormatInt(id, 10)}
		}
		return nil, err
	}
	row, err := decode[leaseRow](body)
	if err != nil {
		return nil, err
	}
	lease := row.toDomain()
	return &lease, nil
}

type leaseGuarantorRow struct {
	ID             int64   `json:"id"`
	LeaseID        int64   `json:"leaseId"`
	GuarantorID    int64   `json:"guarantorId"`
	GuarantorName  string  `json:"guarantorName"`
	SignatureDate  string  `json:"signatureDate"`
	GuaranteeType  string  `json:"guaranteeType"`
	GuaranteeValue float64 `json:"guaranteeValue"`
}

// GetLeaseGuarantors fetches the guarantor links for one lease.
func (c *Client) GetLeaseGuarantors(ctx context.Context, token string, leaseID int64) ([]domain.LeaseGuarantor, error) {
	ctx, span := tracer.Start(ctx, "Rentify.GetLeaseGuarantors")
	defer span.End()
	span.SetAttributes(attribute.Int64("lease.id", leaseID))

	path := fmt.Sprintf("/lease-guarantors?leaseId=%d", leaseID)
	body, err := c.call(ctx, "leases", http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	rows, err := decode[[]leaseGuarantorRow](body)
	if err != nil {
		return nil, err
	}
	links := make([]domain.LeaseGuarantor, len(rows))
	for i, r := range rows {
		links[i] = domain.LeaseGuarantor{
			ID:             r.ID,
			LeaseID:        r.LeaseID,
			GuarantorID:    r.GuarantorID,
			GuarantorName:  r.GuarantorName,
			SignatureDate:  parseDatePtr(r.SignatureDate),
			GuaranteeType:  domain.GuaranteeType(r.GuaranteeType),
			GuaranteeValue: r.GuaranteeValue,
		}
	}
	return links, nil
}

// TerminateLease records a move-out against an active lease.
func (c *Client) TerminateLease(ctx context.Context, token string, id int64, req *domain.TerminateLeaseRequest) error {
	ctx, span := tracer.Start(ctx, "Rentify.TerminateLease")
	defer span.End()
	span.SetAttributes(attribute.Int64("lease.id", id))

	_, err := c.call(ctx, "leases", http.MethodPost, fmt.Sprintf("/leases/%d/terminate", id), token, req)
	return err
}
