package httpserver

import (
	"net/http"

	"github.com/centralmgmt/portal/internal/infrastructure/httpserver/helpers"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Notification handlers. All operations are scoped to the calling user.
func (s *Server) listNotifications(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	unreadOnly := c.QueryParam("unread") == "true"
	page := intQueryParam(c, "page")
	limit := intQueryParam(c, "limit")

	notifications, pagination, err := s.notificationSvc.List(c.Request().Context(), userID, unreadOnly, page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list notifications")
	}

	return respondPage(c, notifications, pagination)
}

func (s *Server) markNotificationRead(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid notification ID")
	}

	if err := s.notificationSvc.MarkRead(c.Request().Context(), id, userID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to mark notification read")
	}

	return respond(c, http.StatusOK, map[string]string{"message": "notification marked read"})
}

func (s *Server) markAllNotificationsRead(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	if err := s.notificationSvc.MarkAllRead(c.Request().Context(), userID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to mark notifications read")
	}

	return respond(c, http.StatusOK, map[string]string{"message": "all notifications marked read"})
}

func (s *Server) deleteNotification(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid notification ID")
	}

	if err := s.notificationSvc.Delete(c.Request().Context(), id, userID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete notification")
	}

	return respond(c, http.StatusOK, map[string]string{"message": "notification deleted"})
}
