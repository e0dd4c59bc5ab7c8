package rentify

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
)

// ListStates fetches all federative units.
func (c *Client) ListStates(ctx context.Context, token string) ([]domain.State, error) {
	ctx, span := tracer.Start(ctx, "Rentify.ListStates")
	defer span.End()

	body, err := c.call(ctx, "locations", http.MethodGet, "/locations/states", token, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]domain.State](body)
}

// SearchCities fetches cities for a state, optionally narrowed by a name
// fragment.
func (c *Client) SearchCities(ctx context.Context, token string, stateCode, query string) ([]domain.City, error) {
	ctx, span := tracer.Start(ctx, "Rentify.SearchCities")
	defer span.End()

	q := url.Values{}
	if stateCode != "" {
		q.Set("stateCode", stateCode)
	}
	path := "/locations/cities"
	if query != "" {
		q.Set("name", query)
		path = "/locations/cities/search"
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	body, err := c.call(ctx, "locations", http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]domain.City](body)
}
