package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/service"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Pagamentos
// POST /v1/payments
// ============================================================

func paymentCreateHandler(svc *service.Payments, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/payments")
		defer span.End()

		var req domain.CreatePaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		span.SetAttributes(attribute.Int64("lease.id", req.LeaseID))

		payment, err := svc.Create(ctx, TokenFromContext(ctx), &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, payment)
	}
}

// ============================================================
// Rescisão
// POST /v1/leases/{leaseId}/terminate
// ============================================================

func leaseTerminateHandler(svc *service.Leases, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/leases/{leaseId}/terminate")
		defer span.End()

		id, err := pathID(r, "leaseId")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid lease id")
			return
		}
		span.SetAttributes(attribute.Int64("lease.id", id))

		var req domain.TerminateLeaseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.Terminate(ctx, TokenFromContext(ctx), id, &req); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "terminated"})
	}
}
