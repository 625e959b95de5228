package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/centralmgmt/portal/internal/core/domain/audit"
	"github.com/centralmgmt/portal/internal/core/domain/common"
	"github.com/centralmgmt/portal/internal/core/domain/inventory"
	"github.com/centralmgmt/portal/internal/core/domain/notification"
	"github.com/centralmgmt/portal/internal/infrastructure/httpserver/helpers"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func intQueryParam(c echo.Context, name string) int {
	v, _ := strconv.Atoi(c.QueryParam(name))
	return v
}

// Inventory handlers
func (s *Server) listInventory(c echo.Context) error {
	page := intQueryParam(c, "page")
	limit := intQueryParam(c, "limit")
	category := c.QueryParam("category")

	items, pagination, err := s.inventorySvc.ListItems(c.Request().Context(), page, limit, category)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list inventory")
	}

	return respondPage(c, items, pagination)
}

func (s *Server) getInventoryItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item ID")
	}

	item, err := s.inventorySvc.GetItem(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "inventory item not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get inventory item")
	}

	return respond(c, http.StatusOK, item)
}

func (s *Server) createInventoryItem(c echo.Context) error {
	var req inventory.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := s.inventorySvc.CreateItem(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create inventory item")
	}

	s.auditInventoryAction(c, audit.ActionInventoryCreate, item)
	s.notifyIfLowStock(c, item)

	return respond(c, http.StatusCreated, item)
}

func (s *Server) updateInventoryItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item ID")
	}

	var req inventory.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := s.inventorySvc.UpdateItem(c.Request().Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, inventory.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "inventory item not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to update inventory item")
		}
	}

	s.auditInventoryAction(c, audit.ActionInventoryUpdate, item)
	s.notifyIfLowStock(c, item)

	return respond(c, http.StatusOK, item)
}

func (s *Server) auditInventoryAction(c echo.Context, action audit.Action, item *inventory.Item) {
	if s.auditSvc == nil {
		return
	}
	userID, _ := helpers.GetUserIDRaw(c)
	userName, _ := helpers.GetUserNameRaw(c)
	_, _ = s.auditSvc.LogAction(c.Request().Context(), &audit.Entry{
		Action:     action,
		EntityType: audit.EntityInventory,
		EntityID:   item.ID.String(),
		UserID:     userID,
		UserName:   userName,
		Details:    map[string]any{"name": item.Name, "sku": item.SKU, "quantity": item.Quantity},
	})
}

// notifyIfLowStock warns the acting user when a write leaves an item at or
// below its reorder threshold.
func (s *Server) notifyIfLowStock(c echo.Context, item *inventory.Item) {
	if s.notificationSvc == nil || !item.IsLowStock() {
		return
	}
	userID, ok := helpers.GetUserIDRaw(c)
	if !ok {
		return
	}
	_, _ = s.notificationSvc.Notify(c.Request().Context(), &notification.CreateRequest{
		UserID:  userID,
		Type:    notification.TypeWarning,
		Title:   "Low stock alert",
		Message: fmt.Sprintf("%s is down to %d %s (reorder at %d)", item.Name, item.Quantity, item.Unit, item.MinQuantity),
		Link:    "/inventory/" + item.ID.String(),
	})
}
