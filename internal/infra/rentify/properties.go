package rentify

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

type propertyRow struct {
	ID                 int64   `json:"id"`
	Address            string  `json:"address"`
	AddressComplement  string  `json:"addressComplement"`
	Neighborhood       string  `json:"neighborhood"`
	PostalCode         string  `json:"postalCode"`
	CityName           string  `json:"cityName"`
	StateCode          string  `json:"stateCode"`
	Status             string  `json:"status"`
	CurrentMarketValue float64 `json:"currentMarketValue"`
	CondoFee           float64 `json:"condoFee"`
	PropertyTaxValue   float64 `json:"propertyTaxValue"`
	RegistrationNumber string  `json:"registrationNumber"`
	Notes              string  `json:"notes"`
}

func (r propertyRow) toDomain() domain.Property {
	return domain.Property{
		ID:                 r.ID,
		Address:            r.Address,
		AddressComplement:  r.AddressComplement,
		Neighborhood:       r.Neighborhood,
		PostalCode:         r.PostalCode,
		CityName:           r.CityName,
		StateCode:          r.StateCode,
		Status:             domain.PropertyStatus(r.Status),
		CurrentMarketValue: r.CurrentMarketValue,
		CondoFee:           r.CondoFee,
		PropertyTaxValue:   r.PropertyTaxValue,
		RegistrationNumber: r.RegistrationNumber,
		Notes:              r.Notes,
	}
}

// ListProperties fetches all properties with their detail fields.
func (c *Client) ListProperties(ctx context.Context, token string) ([]domain.Property, error) {
	ctx, span := tracer.Start(ctx, "Rentify.ListProperties")
	defer span.End()

	body, err := c.call(ctx, "properties", http.MethodGet, "/properties/details", token, nil)
	if err != nil {
		return nil, err
	}
	rows, err := decode[[]propertyRow](body)
	if err != nil {
		return nil, err
	}
	properties := make([]domain.Property, len(rows))
	for i, r := range rows {
		properties[i] = r.toDomain()
	}
	return properties, nil
}

// GetProperty fetches one property.
func (c *Client) GetProperty(ctx context.Context, token string, id int64) (*domain.Property, error) {
	ctx, span := tracer.Start(ctx, "Rentify.GetProperty")
	defer span.End()
	span.SetAttributes(attribute.Int64("property.id", id))

	body, err := c.call(ctx, "properties", http.MethodGet, fmt.Sprintf("/properties/%d", id), token, nil)
	if err != nil {
		if _, ok := err.(*domain.ErrNotFound); ok {
			return nil, &domain.ErrNotFound{Resource: "property", ID: strconv.FormatInt(id, 10)}
		}
		return nil, err
	}
	row, err := decode[propertyRow](body)
	if err != nil {
		return nil, err
	}
	p := row.toDomain()
	return &p, nil
}
