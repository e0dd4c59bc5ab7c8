package handler

import (
	"net/http"

	"github.com/Matheus-Mantovani/Rentify/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Dashboard
// GET /v1/views/dashboard
// ============================================================

func dashboardHandler(svc *service.Dashboard, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/views/dashboard")
		defer span.End()

		view, err := svc.Overview(ctx, TokenFromContext(ctx), queryInt(r, "year"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

// ============================================================
// Notificações
// GET /v1/views/notifications
// ============================================================

func notificationsHandler(svc *service.Notifications, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/views/notifications")
		defer span.End()

		expiring, err := svc.Expiring(ctx, TokenFromContext(ctx))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, expiring)
	}
}

// ============================================================
// Inadimplentes
// GET /v1/views/reports/late-payments
// ============================================================

func latePaymentsHandler(svc *service.Notifications, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/views/reports/late-payments")
		defer span.End()

		late, err := svc.LatePayments(ctx, TokenFromContext(ctx), queryInt(r, "month"), queryInt(r, "year"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, late)
	}
}
