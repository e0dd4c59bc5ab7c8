package rentify

import (
	"context"
	"net/http"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
)

type guarantorRow struct {
	ID        int64               `json:"id"`
	FullName  string              `json:"fullName"`
	CPF       string              `json:"cpf"`
	RG        string              `json:"rg"`
	Email     string              `json:"email"`
	Phone     string              `json:"phone"`
	CityName  string              `json:"cityName"`
	StateCode string              `json:"stateCode"`
	Leases    []leaseGuarantorRow `json:"leases"`
}

func (r guarantorRow) toDomain() domain.Guarantor {
	g := domain.Guarantor{
		ID:        r.ID,
		FullName:  r.FullName,
		CPF:       r.CPF,
		RG:        r.RG,
		Email:     r.Email,
		Phone:     r.Phone,
		CityName:  r.CityName,
		StateCode: r.StateCode,
	}
	for _, link := range r.Leases {
		g.Leases = append(g.Leases, domain.LeaseGuarantor{
			ID:             link.ID,
			LeaseID:        link.LeaseID,
			GuarantorID:    link.GuarantorID,
			GuarantorName:  link.GuarantorName,
			SignatureDate:  parseDatePtr(link.SignatureDate),
			GuaranteeType:  domain.GuaranteeType(link.GuaranteeType),
			GuaranteeValue: link.GuaranteeValue,
		})
	}
	return g
}

// ListGuarantors fetches guarantors with their lease links.
func (c *Client) ListGuarantors(ctx context.Context, token string) ([]domain.Guarantor, error) {
	ctx, span := tracer.Start(ctx, "Rentify.ListGuarantors")
	defer span.End()

	body, err := c.call(ctx, "guarantors", http.MethodGet, "/guarantors/details", token, nil)
	if err != nil {
		return nil, err
	}
	rows, err := decode[[]guarantorRow](body)
	if err != nil {
		return nil, err
	}
	guarantors := make([]domain.Guarantor, len(rows))
	for i, r := range rows {
		guarantors[i] = r.toDomain()
	}
	return guarantors, nil
}
