package rentify

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

type tenantRow struct {
	ID            int64  `json:"id"`
	FullName      string `json:"fullName"`
	CPF           string `json:"cpf"`
	RG            string `json:"rg"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	CityName      string `json:"cityName"`
	StateCode     string `json:"stateCode"`
	MaritalStatus string `json:"maritalStatus"`
	Nationality   string `json:"nationality"`
	Profession    string `json:"profession"`
}

func (r tenantRow) toDomain() domain.Tenant {
	return domain.Tenant{
		ID:            r.ID,
		FullName:      r.FullName,
		CPF:           r.CPF,
		RG:            r.RG,
		Email:         r.Email,
		Phone:         r.Phone,
		CityName:      r.CityName,
		StateCode:     r.StateCode,
		MaritalStatus: domain.MaritalStatus(r.MaritalStatus),
		Nationality:   r.Nationality,
		Profession:    r.Profession,
	}
}

// ListTenants fetches all tenants.
func (c *Client) ListTenants(ctx context.Context, token string) ([]domain.Tenant, error) {
	ctx, span := tracer.Start(ctx, "Rentify.ListTenants")
	defer span.End()

	body, err := c.call(ctx, "tenants", http.MethodGet, "/tenants", token, nil)
	if err != nil {
		return nil, err
	}
	rows, err := decode[[]tenantRow](body)
	if err != nil {
		return nil, err
	}
	tenants := make([]domain.Tenant, len(rows))
	for i, r := range rows {
		tenants[i] = r.toDomain()
	}
	return tenants, nil
}

// GetTenant fetches one tenant.
func (c *Client) GetTenant(ctx context.Context, token string, id int64) (*domain.Tenant, error) {
	ctx, span := tracer.Start(ctx, "Rentify.GetTenant")
	defer span.End()
	span.SetAttributes(attribute.Int64("tenant.id", id))

	body, err := c.call(ctx, "tenants", http.MethodGet, fmt.Sprintf("/tenants/%d", id), token, nil)
	if err != nil {
		if _, ok := err.(*domain.ErrNotFound); ok {
			return nil, &domain.ErrNotFound{Resource: "tenant", ID: strconv.FormatInt(id, 10)}
		}
		return nil, err
	}
	row, err := decode[tenantRow](body)
	if err != nil {
		return nil, err
	}
	t := row.toDomain()
	return &t, nil
}
