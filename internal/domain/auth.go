package domain

// LoginRequest carries credentials for the upstream POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the fields for the upstream POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthToken is the upstream login response. The token is a JWT the dashboard
// carries on every subsequent request; this BFF validates its form and
// forwards it upstream as-is.
type AuthToken struct {
	Token string `json:"token"`
}
