package handler

import (
	"net/http"

	"github.com/Matheus-Mantovani/Rentify/internal/listview"
	"github.com/Matheus-Mantovani/Rentify/internal/service"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Locadores
// GET /v1/views/landlords/{profileId}
// ============================================================

func landlordHandler(svc *service.Landlords, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/views/landlords/{profileId}")
		defer span.End()

		id, err := pathID(r, "profileId")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid profile id")
			return
		}
		span.SetAttributes(attribute.Int64("profile.id", id))

		q := landlordQuery(r)
		view, err := svc.Details(ctx, TokenFromContext(ctx), id, q)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

// landlordDefaultHandler resolves the default profile and serves its view,
// so the screen loads without a profile id on first visit.
func landlordDefaultHandler(svc *service.Landlords, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/views/landlords")
		defer span.End()

		token := TokenFromContext(ctx)
		profile, err := svc.DefaultProfile(ctx, token)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		view, err := svc.Details(ctx, token, profile.ID, landlordQuery(r))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

// landlordQuery parses the two tab queries of the landlord screen. Contract
// filters use the plain names; payment-history filters carry a "p" prefix
// so both tabs ride one URL.
func landlordQuery(r *http.Request) service.LandlordQuery {
	q := service.LandlordQuery{
		ContractSearch: r.URL.Query().Get("search"),
		ContractStatus: r.URL.Query().Get("status"),
		ExpiringOnly:   r.URL.Query().Get("expiringOnly") == "true",
		ContractSort:   parseSort(r),

		PaymentSearch: r.URL.Query().Get("psearch"),
		Method:        r.URL.Query().Get("method"),
		From:          queryDate(r, "from"),
		To:            queryDate(r, "to"),

		Year: queryInt(r, "year"),
	}
	if key := r.URL.Query().Get("psort"); key != "" {
		q.PaymentSort.Key = key
		q.PaymentSort.Dir = listview.Asc
		if r.URL.Query().Get("pdir") == string(listview.Desc) {
			q.PaymentSort.Dir = listview.Desc
		}
	}
	return q
}
