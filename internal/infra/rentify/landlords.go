package rentify

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

type landlordRow struct {
	ID            int64  `json:"id"`
	ProfileAlias  string `json:"profileAlias"`
	IsDefault     bool   `json:"isDefault"`
	FullName      string `json:"fullName"`
	CPFCNPJ       string `json:"cpfCnpj"`
	Nationality   string `json:"nationality"`
	MaritalStatus string `json:"maritalStatus"`
	Profession    string `json:"profession"`
	RG            string `json:"rg"`
	Address       string `json:"address"`
	CityName      string `json:"cityName"`
	StateCode     string `json:"stateCode"`
	BankName      string `json:"bankName"`
	BankAgency    string `json:"bankAgency"`
	BankAccount   string `json:"bankAccount"`
	PixKey        string `json:"pixKey"`
}

func (r landlordRow) toDomain() domain.LandlordProfile {
	return domain.LandlordProfile{
		ID:            r.ID,
		ProfileAlias:  r.ProfileAlias,
		IsDefault:     r.IsDefault,
		FullName:      r.FullName,
		CPFCNPJ:       r.CPFCNPJ,
		Nationality:   r.Nationality,
		MaritalStatus: domain.MaritalStatus(r.MaritalStatus),
		Profession:    r.Profession,
		RG:            r.RG,
		Address:       r.Address,
		CityName:      r.CityName,
		StateCode:     r.StateCode,
		BankName:      r.BankName,
		BankAgency:    r.BankAgency,
		BankAccount:   r.BankAccount,
		PixKey:        r.PixKey,
	}
}

// ListLandlordProfiles fetches all landlord profiles.
func (c *Client) ListLandlordProfiles(ctx context.Context, token string) ([]domain.LandlordProfile, error) {
	ctx, span := tracer.Start(ctx, "Rentify.ListLandlordProfiles")
	defer span.End()

	body, err := c.call(ctx, "landlords", http.MethodGet, "/landlord-profiles", token, nil)
	if err != nil {
		return nil, err
	}
	rows, err := decode[[]landlordRow](body)
	if err != nil {
		return nil, err
	}
	profiles := make([]domain.LandlordProfile, len(rows))
	for i, r := range rows {
		profiles[i] = r.toDomain()
	}
	return profiles, nil
}

// GetLandlordProfile fetches one landlord profile.
func (c *Client) GetLandlordProfile(ctx context.Context, token string, id int64) (*domain.LandlordProfile, error) {
	ctx, span := tracer.Start(ctx, "Rentify.GetLandlordProfile")
	defer span.End()
	span.SetAttributes(attribute.Int64("landlord.id", id))

	body, err := c.call(ctx, "landlords", http.MethodGet, fmt.Sprintf("/landlord-profiles/%d", id), token, nil)
	if err != nil {
		if _, ok := err.(*domain.ErrNotFound); ok {
			return nil, &domain.ErrNotFound{Resource: "landlord-profile", ID: strconv.FormatInt(id, 10)}
		}
		return nil, err
	}
	row, err := decode[landlordRow](body)
	if err != nil {
		return nil, err
	}
	p := row.toDomain()
	return &p, nil
}
