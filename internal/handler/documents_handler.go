package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Matheus-Mantovani/Rentify/internal/service"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Documentos
// Contratos e recibos para impressão
// ============================================================

func contractHandler(svc *service.Documents, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/documents/leases/{leaseId}/contract")
		defer span.End()

		id, err := pathID(r, "leaseId")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid lease id")
			return
		}
		span.SetAttributes(attribute.Int64("lease.id", id))

		doc, err := svc.Contract(ctx, TokenFromContext(ctx), id)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, doc)
	}
}

func receiptHandler(svc *service.Documents, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/documents/payments/{paymentId}/receipt")
		defer span.End()

		id, err := pathID(r, "paymentId")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid payment id")
			return
		}
		span.SetAttributes(attribute.Int64("payment.id", id))

		doc, err := svc.Receipt(ctx, TokenFromContext(ctx), id)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, doc)
	}
}

func receiptBatchHandler(svc *service.Documents, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/documents/receipts/batch")
		defer span.End()

		var req struct {
			PaymentIDs []int64 `json:"paymentIds"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		span.SetAttributes(attribute.Int("batch.size", len(req.PaymentIDs)))

		batch, err := svc.ReceiptBatch(ctx, TokenFromContext(ctx), req.PaymentIDs)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, batch)
	}
}
