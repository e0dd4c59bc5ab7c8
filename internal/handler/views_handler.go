package handler

import (
	"net/http"

	"github.com/Matheus-Mantovani/Rentify/internal/service"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Quadro de pagamentos
// GET /v1/views/payments/board
// ============================================================

func boardHandler(svc *service.Board, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/views/payments/board")
		defer span.End()

		q := service.BoardQuery{
			Month:  queryInt(r, "month"),
			Year:   queryInt(r, "year"),
			Search: r.URL.Query().Get("search"),
			Sort:   parseSort(r),
		}
		span.SetAttributes(attribute.Int("month", q.Month), attribute.Int("year", q.Year))

		view, err := svc.MonthBoard(ctx, TokenFromContext(ctx), q)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

// ============================================================
// Contratos
// GET /v1/views/leases
// ============================================================

func leasesHandler(svc *service.Leases, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/views/leases")
		defer span.End()

		q := service.LeaseQuery{
			Search: r.URL.Query().Get("search"),
			Status: r.URL.Query().Get("status"),
			Sort:   parseSort(r),
		}
		rows, err := svc.List(ctx, TokenFromContext(ctx), q)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

// ============================================================
// Inquilinos
// GET /v1/views/tenants
// ============================================================

func tenantsHandler(svc *service.Tenants, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/views/tenants")
		defer span.End()

		q := service.TenantQuery{
			Search: r.URL.Query().Get("search"),
			State:  r.URL.Query().Get("state"),
			City:   r.URL.Query().Get("city"),
			Sort:   parseSort(r),
		}
		view, err := svc.List(ctx, TokenFromContext(ctx), q)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

// ============================================================
// Imóveis
// GET /v1/views/properties
// ============================================================

func propertiesHandler(svc *service.Properties, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/views/properties")
		defer span.End()

		q := service.PropertyQuery{
			Search: r.URL.Query().Get("search"),
			Status: r.URL.Query().Get("status"),
			Sort:   parseSort(r),
		}
		rows, err := svc.List(ctx, TokenFromContext(ctx), q)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

// ============================================================
// Manutenções
// GET /v1/views/maintenance
// ============================================================

func maintenanceHandler(svc *service.Maintenance, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/views/maintenance")
		defer span.End()

		q := service.MaintenanceQuery{
			Search: r.URL.Query().Get("search"),
			Status: r.URL.Query().Get("status"),
			Sort:   parseSort(r),
		}
		jobs, err := svc.List(ctx, TokenFromContext(ctx), q)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, jobs)
	}
}

// ============================================================
// Fiadores
// GET /v1/views/guarantors
// ============================================================

func guarantorsHandler(svc *service.Guarantors, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/views/guarantors")
		defer span.End()

		q := service.GuarantorQuery{
			Search: r.URL.Query().Get("search"),
			Sort:   parseSort(r),
		}
		rows, err := svc.List(ctx, TokenFromContext(ctx), q)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}
