package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	config "github.com/centralmgmt/portal/configs"
	impl "github.com/centralmgmt/portal/internal/application/services"
	"github.com/centralmgmt/portal/internal/core/domain/auth"
	"github.com/centralmgmt/portal/internal/core/domain/common"
	"github.com/centralmgmt/portal/internal/core/domain/user"
	"github.com/centralmgmt/portal/test/mocks"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", TokenTTL: time.Hour}
}

func testUser(t *testing.T) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return &user.User{ID: uuid.New(), Email: "admin@example.com", PasswordHash: string(hash), Name: "Admin User", Role: user.RoleAdmin}
}

func TestLogin_Success(t *testing.T) {
	u := testUser(t)
	repo := &mocks.UserRepositoryMock{GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
		if email != u.Email {
			return nil, user.ErrNotFound
		}
		return u, nil
	}}
	svc := impl.NewAuthService(repo, testJWTConfig(), nil)

	got, token, err := svc.Login(context.Background(), &auth.LoginRequest{Email: u.Email, Password: "password"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != u.ID || token == "" {
		t.Fatal("expected user and signed token")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("expected minted token to validate: %v", err)
	}
	if claims.UserID != u.ID || claims.Email != u.Email || claims.Role != user.RoleAdmin {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	u := testUser(t)
	repo := &mocks.UserRepositoryMock{GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
		return u, nil
	}}
	svc := impl.NewAuthService(repo, testJWTConfig(), nil)

	_, _, err := svc.Login(context.Background(), &auth.LoginRequest{Email: u.Email, Password: "wrong"})
	if !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	svc := impl.NewAuthService(&mocks.UserRepositoryMock{}, testJWTConfig(), nil)

	_, _, err := svc.Login(context.Background(), &auth.LoginRequest{Email: "ghost@example.com", Password: "password"})
	if !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	svc := impl.NewAuthService(&mocks.UserRepositoryMock{}, testJWTConfig(), nil)

	_, _, err := svc.Login(context.Background(), &auth.LoginRequest{})
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestValidateToken_RejectsTampering(t *testing.T) {
	u := testUser(t)
	repo := &mocks.UserRepositoryMock{GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
		return u, nil
	}}
	svc := impl.NewAuthService(repo, testJWTConfig(), nil)

	_, token, err := svc.Login(context.Background(), &auth.LoginRequest{Email: u.Email, Password: "password"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.ValidateToken(token + "x"); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	u := testUser(t)
	repo := &mocks.UserRepositoryMock{GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
		return u, nil
	}}
	minter := impl.NewAuthService(repo, &config.JWTConfig{Secret: "other-secret", TokenTTL: time.Hour}, nil)
	verifier := impl.NewAuthService(repo, testJWTConfig(), nil)

	_, token, err := minter.Login(context.Background(), &auth.LoginRequest{Email: u.Email, Password: "password"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestRefresh_ReReadsUser(t *testing.T) {
	u := testUser(t)
	repo := &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) {
			if id != u.ID {
				return nil, user.ErrNotFound
			}
			// Role changed since the old token was minted.
			demoted := *u
			demoted.Role = user.RoleUser
			return &demoted, nil
		},
	}
	svc := impl.NewAuthService(repo, testJWTConfig(), nil)

	token, err := svc.Refresh(context.Background(), &auth.Claims{UserID: u.ID, Role: user.RoleAdmin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Role != user.RoleUser {
		t.Fatalf("expected refreshed token to carry the current role, got %s", claims.Role)
	}
}

func TestRefresh_UnknownUser(t *testing.T) {
	svc := impl.NewAuthService(&mocks.UserRepositoryMock{}, testJWTConfig(), nil)

	_, err := svc.Refresh(context.Background(), &auth.Claims{UserID: uuid.New()})
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
}
