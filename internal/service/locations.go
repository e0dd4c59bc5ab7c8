package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/observability"
	"github.com/Matheus-Mantovani/Rentify/internal/port"

	"go.uber.org/zap"
)

// Locations proxies the state and city lookups with a long-lived cache.
// The lists are shared across accounts, so the cache is keyed by query, not
// by session.
type Locations struct {
	upstream port.LocationFetcher
	states   port.Cache[[]domain.State]
	cities   port.Cache[[]domain.City]
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewLocations creates the location lookup service.
func NewLocations(upstream port.LocationFetcher, states port.Cache[[]domain.State], cities port.Cache[[]domain.City], metrics *observability.Metrics, logger *zap.Logger) *Locations {
	return &Locations{
		upstream: upstream,
		states:   states,
		cities:   cities,
		metrics:  metrics,
		logger:   logger,
	}
}

// States returns all federative units.
func (s *Locations) States(ctx context.Context, token string) ([]domain.State, error) {
	ctx, span := tracer.Start(ctx, "Locations.States")
	defer span.End()

	if cached, ok := s.states.Get("states:all"); ok {
		s.metrics.IncrCacheHit("locations")
		return cached, nil
	}
	s.metrics.IncrCacheMiss("locations")

	states, err := s.upstream.ListStates(ctx, token)
	if err != nil {
		return nil, err
	}
	s.states.Set("states:all", states)
	return states, nil
}

// Cities returns the cities of a state, optionally narrowed by a name
// fragment.
func (s *Locations) Cities(ctx context.Context, token, stateCode, query string) ([]domain.City, error) {
	ctx, span := tracer.Start(ctx, "Locations.Cities")
	defer span.End()

	if stateCode == "" {
		return nil, &domain.ErrValidation{Field: "stateCode", Message: "state code is required"}
	}

	key := fmt.Sprintf("cities:%s:%s", stateCode, strings.ToLower(query))
	if cached, ok := s.cities.Get(key); ok {
		s.metrics.IncrCacheHit("locations")
		return cached, nil
	}
	s.metrics.IncrCacheMiss("locations")

	cities, err := s.upstream.SearchCities(ctx, token, stateCode, query)
	if err != nil {
		return nil, err
	}
	s.cities.Set(key, cities)
	return cities, nil
}
