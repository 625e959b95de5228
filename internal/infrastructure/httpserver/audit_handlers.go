package httpserver

import (
	"net/http"

	"github.com/centralmgmt/portal/internal/core/domain/audit"
	"github.com/labstack/echo/v4"
)

// Audit handlers
func (s *Server) getAuditLogs(c echo.Context) error {
	var filter audit.Filter
	if err := c.Bind(&filter); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	logs, pagination, err := s.auditSvc.GetLogs(c.Request().Context(), &filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get audit logs")
	}

	return respondPage(c, logs, pagination)
}
