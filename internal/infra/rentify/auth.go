package rentify

import (
	"context"
	"net/http"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
)

// Login exchanges credentials for an upstream session token.
func (c *Client) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthToken, error) {
	ctx, span := tracer.Start(ctx, "Rentify.Login")
	defer span.End()

	body, err := c.call(ctx, "auth", http.MethodPost, "/auth/login", "", req)
	if err != nil {
		// Bad credentials arrive as a validation-shaped 400 from some
		// backend versions; normalize to unauthorized.
		if _, ok := err.(*domain.ErrValidation); ok {
			return nil, &domain.ErrUnauthorized{Message: "invalid credentials"}
		}
		return nil, err
	}
	token, err := decode[domain.AuthToken](body)
	if err != nil {
		return nil, err
	}
	if token.Token == "" {
		return nil, &domain.ErrUnauthorized{Message: "upstream returned an empty token"}
	}
	return &token, nil
}

// Register creates an account upstream and returns its first session token.
func (c *Client) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthToken, error) {
	ctx, span := tracer.Start(ctx, "Rentify.Register")
	defer span.End()

	body, err := c.call(ctx, "auth", http.MethodPost, "/auth/register", "", req)
	if err != nil {
		return nil, err
	}
	token, err := decode[domain.AuthToken](body)
	if err != nil {
		return nil, err
	}
	return &token, nil
}
