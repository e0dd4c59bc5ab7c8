package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/listview"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseSort reads ?sort=column&dir=desc into a sort state. An unknown column
// falls through to the service, which ignores it.
func parseSort(r *http.Request) listview.SortState {
	s := listview.SortState{Key: r.URL.Query().Get("sort"), Dir: listview.Asc}
	if r.URL.Query().Get("dir") == string(listview.Desc) {
		s.Dir = listview.Desc
	}
	return s
}

func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}

func queryDate(r *http.Request, name string) time.Time {
	t, err := time.Parse("2006-01-02", r.URL.Query().Get(name))
	if err != nil {
		return time.Time{}
	}
	return t
}

func pathID(r *http.Request, param string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, param), 10, 64)
}

// handleServiceError maps domain errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	var notFound *domain.ErrNotFound
	var circuitOpen *domain.ErrCircuitOpen
	var timeout *domain.ErrTimeout
	var validation *domain.ErrValidation
	var unauthorized *domain.ErrUnauthorized
	var conflict *domain.ErrConflict
	var selectionLimit *domain.ErrSelectionLimit
	var notPrintable *domain.ErrNotPrintable
	var external *domain.ErrExternalService

	switch {
	case errors.As(err, &notFound):
		logger.Debug("not found", zap.String("error", err.Error()))
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &circuitOpen):
		logger.Error("circuit breaker open", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &timeout):
		logger.Error("request timeout", zap.Error(err))
		writeError(w, http.StatusGatewayTimeout, err.Error())
	case errors.As(err, &validation):
		logger.Debug("validation error", zap.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &unauthorized):
		logger.Warn("unauthorized", zap.String("error", err.Error()))
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.As(err, &conflict):
		logger.Debug("conflict", zap.String("error", err.Error()))
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &selectionLimit):
		logger.Debug("receipt selection over limit", zap.Int("limit", selectionLimit.Limit))
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &notPrintable):
		logger.Debug("receipt not printable", zap.Int64("payment_id", notPrintable.PaymentID))
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &external):
		logger.Error("upstream failure", zap.Error(err))
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		logger.Error("unhandled error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
