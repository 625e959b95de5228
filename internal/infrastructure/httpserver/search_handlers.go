package httpserver

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Search handler
func (s *Server) search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "search query is required")
	}

	var types []string
	if raw := c.QueryParam("types"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
	}

	results, err := s.searchSvc.Search(c.Request().Context(), query, types)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}

	return respond(c, http.StatusOK, results)
}
