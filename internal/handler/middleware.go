package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/Matheus-Mantovani/Rentify/internal/service"

	"go.uber.org/zap"
)

type contextKey string

const (
	tokenKey   contextKey = "sessionToken"
	subjectKey contextKey = "subject"
)

// AuthMiddleware checks the Bearer token's form and expiry and injects the
// raw token into context. Services forward it to the backend, which holds
// the signature authority.
func AuthMiddleware(authSvc *service.Auth, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("auth: missing token",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				writeError(w, http.StatusUnauthorized, "Token de autenticação não fornecido")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("auth: invalid token format",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				writeError(w, http.StatusUnauthorized, "Formato de token inválido")
				return
			}

			tokenString := parts[1]
			subject, err := authSvc.ValidateToken(tokenString)
			if err != nil {
				logger.Warn("auth: invalid or expired token",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
					zap.Error(err),
				)
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), tokenKey, tokenString)
			ctx = context.WithValue(ctx, subjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromContext extracts the session token the middleware stored.
func TokenFromContext(ctx context.Context) string {
	v, _ := ctx.Value(tokenKey).(string)
	return v
}

// SubjectFromContext extracts the authenticated subject claim.
func SubjectFromContext(ctx context.Context) string {
	v, _ := ctx.Value(subjectKey).(string)
	return v
}
