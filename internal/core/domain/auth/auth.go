package auth

import (
	"errors"

	"github.com/centralmgmt/portal/internal/core/domain/user"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned on a failed login; it never reveals
// whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	User  *user.User `json:"user"`
	Token string     `json:"token"`
}

// TokenResponse is returned by token refresh.
type TokenResponse struct {
	Token string `json:"token"`
}

// Claims represents the JWT claims carried by an access token
type Claims struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Role   user.Role `json:"role"`

	jwt.RegisteredClaims
}
