package handler

import (
	"net/http"

	"github.com/Matheus-Mantovani/Rentify/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Localidades
// GET /v1/locations/states, GET /v1/locations/cities
// ============================================================

func statesHandler(svc *service.Locations, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/locations/states")
		defer span.End()

		states, err := svc.States(ctx, TokenFromContext(ctx))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, states)
	}
}

func citiesHandler(svc *service.Locations, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/locations/cities")
		defer span.End()

		cities, err := svc.Cities(ctx, TokenFromContext(ctx),
			r.URL.Query().Get("state"), r.URL.Query().Get("q"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, cities)
	}
}
