package httpserver

import (
	"github.com/centralmgmt/portal/internal/core/domain/user"
)

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", s.login)

	protected := api.Group("")
	protected.Use(s.middleware.JWT.RequireJWT())

	protected.POST("/auth/logout", s.logout)
	protected.GET("/auth/me", s.currentUser)
	protected.POST("/auth/refresh", s.refreshToken)

	inventory := protected.Group("/quartzy/inventory")
	inventory.GET("", s.listInventory)
	inventory.POST("", s.createInventoryItem)
	inventory.GET("/:id", s.getInventoryItem)
	inventory.PUT("/:id", s.updateInventoryItem)

	orders := protected.Group("/quartzy/orders")
	orders.GET("", s.listOrders)
	orders.POST("", s.createOrder)
	orders.GET("/:id", s.getOrder)
	orders.PATCH("/:id/status", s.updateOrderStatus)

	protected.GET("/search", s.search)

	notifications := protected.Group("/notifications")
	notifications.GET("", s.listNotifications)
	notifications.PATCH("/read-all", s.markAllNotificationsRead)
	notifications.PATCH("/:id/read", s.markNotificationRead)
	notifications.DELETE("/:id", s.deleteNotification)

	audit := protected.Group("/audit")
	audit.GET("", s.getAuditLogs, s.middleware.Role.RequireRole(user.RoleAdmin, user.RoleManager))
}
