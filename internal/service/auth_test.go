package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/observability"
	"github.com/Matheus-Mantovani/Rentify/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

func newAuth(upstream *mockAuth) *service.Auth {
	return service.NewAuth(upstream, observability.NewMetrics(), zap.NewNop()).
		WithClock(func() time.Time { return date(2024, 5, 15) })
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return s
}

func TestAuth_Login(t *testing.T) {
	svc := newAuth(&mockAuth{token: "jwt-abc"})

	got, err := svc.Login(context.Background(), &domain.LoginRequest{Email: "u@x.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.Token != "jwt-abc" {
		t.Errorf("Token = %q", got.Token)
	}

	_, err = svc.Login(context.Background(), &domain.LoginRequest{Email: "  ", Password: "pw"})
	var vErr *domain.ErrValidation
	if !errors.As(err, &vErr) {
		t.Fatalf("got %v, want ErrValidation for blank email", err)
	}
}

func TestAuth_Register(t *testing.T) {
	svc := newAuth(&mockAuth{token: "jwt-abc"})

	_, err := svc.Register(context.Background(), &domain.RegisterRequest{Email: "u@x.com", Password: "pw"})
	var vErr *domain.ErrValidation
	if !errors.As(err, &vErr) {
		t.Fatalf("got %v, want ErrValidation for missing name", err)
	}

	got, err := svc.Register(context.Background(), &domain.RegisterRequest{Name: "Ana", Email: "u@x.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if got.Token != "jwt-abc" {
		t.Errorf("Token = %q", got.Token)
	}
}

func TestAuth_ValidateToken(t *testing.T) {
	svc := newAuth(&mockAuth{})

	tests := []struct {
		name    string
		token   string
		subject string
		wantErr string
	}{
		{
			name: "valid with future expiry",
			token: signedToken(t, jwt.MapClaims{
				"sub": "u@x.com",
				"exp": date(2024, 6, 1).Unix(),
			}),
			subject: "u@x.com",
		},
		{
			name: "valid without expiry claim",
			token: signedToken(t, jwt.MapClaims{
				"sub": "u@x.com",
			}),
			subject: "u@x.com",
		},
		{
			name: "expired",
			token: signedToken(t, jwt.MapClaims{
				"sub": "u@x.com",
				"exp": date(2024, 5, 1).Unix(),
			}),
			wantErr: "token expired",
		},
		{
			name:    "malformed",
			token:   "not.a.jwt",
			wantErr: "malformed token",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := svc.ValidateToken(tt.token)
			if tt.wantErr != "" {
				var uErr *domain.ErrUnauthorized
				if !errors.As(err, &uErr) {
					t.Fatalf("got %v, want ErrUnauthorized", err)
				}
				if uErr.Message != tt.wantErr {
					t.Errorf("message = %q, want %q", uErr.Message, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateToken: %v", err)
			}
			if subject != tt.subject {
				t.Errorf("subject = %q, want %q", subject, tt.subject)
			}
		})
	}
}

func TestAuth_LoginUpstreamError(t *testing.T) {
	upstream := &mockAuth{err: &domain.ErrUnauthorized{Message: "invalid credentials"}}
	svc := newAuth(upstream)

	_, err := svc.Login(context.Background(), &domain.LoginRequest{Email: "u@x.com", Password: "wrong"})
	var uErr *domain.ErrUnauthorized
	if !errors.As(err, &uErr) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
	if fmt.Sprint(err) != "invalid credentials" {
		t.Errorf("message = %q", err)
	}
}
