package service

import (
	"context"
	"strings"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/observability"
	"github.com/Matheus-Mantovani/Rentify/internal/port"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Auth passes credentials through to the backend and validates the form of
// the tokens it mints. Token security stays upstream; this service only
// rejects obviously malformed or expired tokens before a request travels.
type Auth struct {
	upstream port.Authenticator
	metrics  *observability.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

// NewAuth creates the auth pass-through service.
func NewAuth(upstream port.Authenticator, metrics *observability.Metrics, logger *zap.Logger) *Auth {
	return &Auth{upstream: upstream, metrics: metrics, logger: logger, now: time.Now}
}

// WithClock overrides the expiry-check clock. Tests pin it.
func (s *Auth) WithClock(now func() time.Time) *Auth {
	s.now = now
	return s
}

// Login exchanges credentials for an upstream session token.
func (s *Auth) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthToken, error) {
	ctx, span := tracer.Start(ctx, "Auth.Login")
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("auth_login", time.Since(start))
	}()

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, &domain.ErrValidation{Field: "credentials", Message: "email and password are required"}
	}
	token, err := s.upstream.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("login succeeded", zap.String("email", req.Email))
	return token, nil
}

// Register creates an account upstream.
func (s *Auth) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthToken, error) {
	ctx, span := tracer.Start(ctx, "Auth.Register")
	defer span.End()

	if strings.TrimSpace(req.Name) == "" {
		return nil, &domain.ErrValidation{Field: "name", Message: "name is required"}
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, &domain.ErrValidation{Field: "credentials", Message: "email and password are required"}
	}
	return s.upstream.Register(ctx, req)
}

// ValidateToken checks the bearer token's form and expiry without verifying
// its upstream signature, and returns the subject claim. The backend is the
// signature authority; re-checking expiry here just fails fast.
func (s *Auth) ValidateToken(tokenString string) (string, error) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return "", &domain.ErrUnauthorized{Message: "malformed token"}
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		if s.now().After(exp.Time) {
			return "", &domain.ErrUnauthorized{Message: "token expired"}
		}
	}
	subject, _ := claims.GetSubject()
	return subject, nil
}
