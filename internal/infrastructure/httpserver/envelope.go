package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/centralmgmt/portal/internal/core/domain/common"
)

// envelope is the uniform response body. Every endpoint, success or
// failure, serializes to this shape.
type envelope struct {
	Success    bool               `json:"success"`
	Data       any                `json:"data,omitempty"`
	Error      string             `json:"error,omitempty"`
	Pagination *common.Pagination `json:"pagination,omitempty"`
}

func respond(c echo.Context, code int, data any) error {
	return c.JSON(code, envelope{Success: true, Data: data})
}

func respondPage(c echo.Context, data any, p *common.Pagination) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Data: data, Pagination: p})
}

// httpErrorHandler renders every error through the envelope so failures
// keep the same shape as successes.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError && s.logger != nil {
		s.logger.WithError(err).Error("request failed")
	}

	if jsonErr := c.JSON(code, envelope{Success: false, Error: message}); jsonErr != nil && s.logger != nil {
		s.logger.WithError(jsonErr).Error("failed to write error response")
	}
}
