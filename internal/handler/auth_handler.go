package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Autenticação
// POST /v1/auth/login, POST /v1/auth/register
// ============================================================

func authLoginHandler(svc *service.Auth, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/auth/login")
		defer span.End()

		var req domain.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		token, err := svc.Login(ctx, &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, token)
	}
}

func authRegisterHandler(svc *service.Auth, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/auth/register")
		defer span.End()

		var req domain.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		token, err := svc.Register(ctx, &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, token)
	}
}
