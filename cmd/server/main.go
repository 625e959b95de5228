package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/centralmgmt/portal/configs"
	"github.com/centralmgmt/portal/internal/application/services"
	"github.com/centralmgmt/portal/internal/core/domain/search"
	"github.com/centralmgmt/portal/internal/core/ports"
	"github.com/centralmgmt/portal/internal/infrastructure/cache"
	"github.com/centralmgmt/portal/internal/infrastructure/health"
	"github.com/centralmgmt/portal/internal/infrastructure/httpserver"
	"github.com/centralmgmt/portal/internal/infrastructure/redis"
	"github.com/centralmgmt/portal/internal/infrastructure/repositories"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting management portal...")

	healthCheckers := []ports.HealthChecker{}

	// Initialize the cache accessor. Redis being down is not fatal: the
	// accessor starts degraded on its in-memory fallback.
	var primary ports.Cache
	redisClient, err := redis.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.WithError(err).Warn("Redis unavailable, cache starts on in-memory fallback")
	} else {
		defer redisClient.Close()
		logger.Info("Connected to Redis successfully")
		primary = redis.NewRedisCache(redisClient, cfg.Cache.KeyPrefix)
		healthCheckers = append(healthCheckers, health.NewRedisHealthChecker(redisClient))
	}
	cacheAccessor := cache.NewFailover(primary, logger)
	healthCheckers = append(healthCheckers, health.NewCacheHealthChecker(cacheAccessor))

	// Initialize the in-memory stores with demo data
	baseInventoryRepo := repositories.NewInventoryRepository(repositories.DemoInventoryItems()...)
	baseOrderRepo := repositories.NewOrderRepository()
	auditRepo := repositories.NewAuditRepository()
	notificationRepo := repositories.NewNotificationRepository()
	userRepo := repositories.NewUserRepository(repositories.DemoUsers()...)

	// Seed one demo order against the first demo item
	if items, _, err := baseInventoryRepo.List(context.Background(), 1, 1, ""); err == nil && len(items) > 0 {
		if _, err := baseOrderRepo.Create(context.Background(), repositories.DemoOrderRequest(items[0])); err != nil {
			logger.WithError(err).Warn("Failed to seed demo order")
		}
	}

	// Decorate with caching
	inventoryRepo := repositories.NewCachingInventoryRepository(baseInventoryRepo, cacheAccessor, cfg.Cache.InventoryTTL)
	orderRepo := repositories.NewCachingOrderRepository(baseOrderRepo, cacheAccessor, cfg.Cache.OrderTTL)

	// Wire all services with their repository dependencies
	inventoryService := services.NewInventoryService(inventoryRepo, logger)
	orderService := services.NewOrderService(orderRepo, logger)
	searchService := services.NewSearchService(inventoryService, orderService, search.DefaultWeights(), logger)
	auditService := services.NewAuditService(auditRepo, logger)
	notificationService := services.NewNotificationService(notificationRepo, logger)
	authService := services.NewAuthService(userRepo, &cfg.JWT, logger)

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Initialize HTTP server using ServerDeps for clearer wiring
	deps := httpserver.ServerDeps{
		AuthService:         authService,
		InventoryService:    inventoryService,
		OrderService:        orderService,
		SearchService:       searchService,
		NotificationService: notificationService,
		AuditService:        auditService,
		HealthCheckers:      healthCheckers,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
