package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/centralmgmt/portal/internal/core/domain/user"
	"github.com/centralmgmt/portal/internal/infrastructure/httpserver/helpers"
)

type RoleMiddleware struct{}

func NewRoleMiddleware() *RoleMiddleware {
	return &RoleMiddleware{}
}

// RequireRole creates middleware that rejects callers whose role is not in
// the allowed set. It must run after RequireJWT.
func (m *RoleMiddleware) RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := helpers.GetUserRoleFromContext(c)
			if err != nil {
				return err
			}
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
		}
	}
}
