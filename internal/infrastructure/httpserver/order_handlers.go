package httpserver

import (
	"errors"
	"net/http"

	"github.com/centralmgmt/portal/internal/core/domain/audit"
	"github.com/centralmgmt/portal/internal/core/domain/common"
	"github.com/centralmgmt/portal/internal/core/domain/order"
	"github.com/centralmgmt/portal/internal/infrastructure/httpserver/helpers"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Order handlers
func (s *Server) listOrders(c echo.Context) error {
	page := intQueryParam(c, "page")
	limit := intQueryParam(c, "limit")
	status := c.QueryParam("status")

	orders, pagination, err := s.orderSvc.ListOrders(c.Request().Context(), page, limit, status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list orders")
	}

	return respondPage(c, orders, pagination)
}

func (s *Server) getOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order ID")
	}

	o, err := s.orderSvc.GetOrder(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get order")
	}

	return respond(c, http.StatusOK, o)
}

func (s *Server) createOrder(c echo.Context) error {
	var req order.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	o, err := s.orderSvc.CreateOrder(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create order")
	}

	s.auditOrderAction(c, audit.ActionOrderCreate, o, map[string]any{
		"orderNumber": o.OrderNumber,
		"totalAmount": o.TotalAmount,
	})

	return respond(c, http.StatusCreated, o)
}

func (s *Server) updateOrderStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order ID")
	}

	var req order.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	o, err := s.orderSvc.UpdateOrderStatus(c.Request().Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, order.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to update order status")
		}
	}

	s.auditOrderAction(c, audit.ActionOrderStatusUpdate, o, map[string]any{
		"orderNumber": o.OrderNumber,
		"status":      o.Status,
	})

	return respond(c, http.StatusOK, o)
}

func (s *Server) auditOrderAction(c echo.Context, action audit.Action, o *order.Order, details map[string]any) {
	if s.auditSvc == nil {
		return
	}
	userID, _ := helpers.GetUserIDRaw(c)
	userName, _ := helpers.GetUserNameRaw(c)
	_, _ = s.auditSvc.LogAction(c.Request().Context(), &audit.Entry{
		Action:     action,
		EntityType: audit.EntityOrder,
		EntityID:   o.ID.String(),
		UserID:     userID,
		UserName:   userName,
		Details:    details,
	})
}
