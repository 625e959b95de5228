package httpserver

import (
	"time"

	"github.com/centralmgmt/portal/internal/core/ports"
	customMiddleware "github.com/centralmgmt/portal/internal/infrastructure/httpserver/middleware"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type ServerDeps struct {
	AuthService         ports.AuthService
	InventoryService    ports.InventoryService
	OrderService        ports.OrderService
	SearchService       ports.SearchService
	NotificationService ports.NotificationService
	AuditService        ports.AuditService
	HealthCheckers      []ports.HealthChecker
}

type Server struct {
	echo            *echo.Echo
	config          *ServerConfig
	logger          *logrus.Logger
	authSvc         ports.AuthService
	inventorySvc    ports.InventoryService
	orderSvc        ports.OrderService
	searchSvc       ports.SearchService
	notificationSvc ports.NotificationService
	auditSvc        ports.AuditService
	middleware      *customMiddleware.MiddlewareCollection
	healthCheckers  []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()

	server := &Server{
		echo:            e,
		config:          serverConfig,
		logger:          logger,
		authSvc:         deps.AuthService,
		inventorySvc:    deps.InventoryService,
		orderSvc:        deps.OrderService,
		searchSvc:       deps.SearchService,
		notificationSvc: deps.NotificationService,
		auditSvc:        deps.AuditService,
		healthCheckers:  deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			deps.AuthService,
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	e.HTTPErrorHandler = server.httpErrorHandler

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
