package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	config "github.com/centralmgmt/portal/configs"
	"github.com/centralmgmt/portal/internal/core/domain/auth"
	"github.com/centralmgmt/portal/internal/core/domain/common"
	"github.com/centralmgmt/portal/internal/core/domain/user"
	"github.com/centralmgmt/portal/internal/core/ports"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users  ports.UserRepository
	cfg    *config.JWTConfig
	logger *logrus.Logger
}

func NewAuthService(users ports.UserRepository, cfg *config.JWTConfig, logger *logrus.Logger) ports.AuthService {
	return &AuthService{users: users, cfg: cfg, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, req *auth.LoginRequest) (*user.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			// Same failure as a wrong password so probes cannot enumerate accounts.
			return nil, "", auth.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", auth.ErrInvalidCredentials
	}

	token, err := s.generateToken(u)
	if err != nil {
		return nil, "", err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user logged in")
	}
	return u, token, nil
}

func (s *AuthService) ValidateToken(tokenString string) (*auth.Claims, error) {
	claims := &auth.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Refresh mints a new token for an already-authenticated caller. The user is
// re-read so revoked accounts and role changes take effect immediately.
func (s *AuthService) Refresh(ctx context.Context, claims *auth.Claims) (string, error) {
	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", err
	}
	return s.generateToken(u)
}

func (s *AuthService) generateToken(u *user.User) (string, error) {
	now := time.Now()
	claims := &auth.Claims{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
