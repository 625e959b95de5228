package httpserver

import (
	"errors"
	"net/http"

	"github.com/centralmgmt/portal/internal/core/domain/audit"
	"github.com/centralmgmt/portal/internal/core/domain/auth"
	"github.com/centralmgmt/portal/internal/core/domain/common"
	"github.com/centralmgmt/portal/internal/infrastructure/httpserver/helpers"
	"github.com/labstack/echo/v4"
)

// Auth handlers
func (s *Server) login(c echo.Context) error {
	var req auth.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	u, token, err := s.authSvc.Login(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, auth.ErrInvalidCredentials):
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
		}
	}

	if s.auditSvc != nil {
		_, _ = s.auditSvc.LogAction(c.Request().Context(), &audit.Entry{
			Action:     audit.ActionUserLogin,
			EntityType: audit.EntityUser,
			EntityID:   u.ID.String(),
			UserID:     u.ID,
			UserName:   u.Name,
			Details:    map[string]any{"email": u.Email},
		})
	}

	// Auth responses are bare: no envelope around {user, token}.
	return c.JSON(http.StatusOK, auth.LoginResponse{User: u, Token: token})
}

// logout is a bookkeeping endpoint: tokens are stateless, so it only
// records the action.
func (s *Server) logout(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}
	userName, _ := helpers.GetUserNameRaw(c)

	if s.auditSvc != nil {
		_, _ = s.auditSvc.LogAction(c.Request().Context(), &audit.Entry{
			Action:     audit.ActionUserLogout,
			EntityType: audit.EntityUser,
			EntityID:   userID.String(),
			UserID:     userID,
			UserName:   userName,
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

// currentUser echoes the identity carried by the validated token.
func (s *Server) currentUser(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}
	email, err := helpers.GetUserEmailFromContext(c)
	if err != nil {
		return err
	}
	name, err := helpers.GetUserNameFromContext(c)
	if err != nil {
		return err
	}
	role, err := helpers.GetUserRoleFromContext(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"id":    userID,
		"email": email,
		"name":  name,
		"role":  role,
	})
}

func (s *Server) refreshToken(c echo.Context) error {
	claims, ok := c.Get("jwt_claims").(*auth.Claims)
	if !ok || claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid user context")
	}

	token, err := s.authSvc.Refresh(c.Request().Context(), claims)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "failed to refresh token")
	}

	return c.JSON(http.StatusOK, auth.TokenResponse{Token: token})
}
