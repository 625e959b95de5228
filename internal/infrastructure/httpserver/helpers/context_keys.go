package helpers

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/centralmgmt/portal/internal/core/domain/user"
)

// Context keys set by the JWT middleware.
const (
	KeyUserID    = "user_id"
	KeyUserEmail = "user_email"
	KeyUserName  = "user_name"
	KeyUserRole  = "user_role"
)

func GetUserIDRaw(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(KeyUserID).(uuid.UUID)
	return id, ok
}

func GetUserEmailRaw(c echo.Context) (string, bool) {
	s, ok := c.Get(KeyUserEmail).(string)
	return s, ok
}

func GetUserNameRaw(c echo.Context) (string, bool) {
	s, ok := c.Get(KeyUserName).(string)
	return s, ok
}

func GetUserRoleRaw(c echo.Context) (user.Role, bool) {
	r, ok := c.Get(KeyUserRole).(user.Role)
	return r, ok
}
