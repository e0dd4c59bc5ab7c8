package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/config"
	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/handler"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/cache"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/observability"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/rentify"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/resilience"
	"github.com/Matheus-Mantovani/Rentify/internal/service"

	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("rentify_api_url", cfg.RentifyAPIURL),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Duration("cache_ttl", cfg.CacheTTL),
		zap.Duration("locations_ttl", cfg.LocationsTTL),
		zap.Int("max_retries", cfg.MaxRetries),
		zap.Duration("initial_backoff", cfg.InitialBackoff),
		zap.Bool("tracing", cfg.TracingOn),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "rentify-bff", cfg.TracingOn)
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Caches ---
	leaseCache := cache.New[[]domain.Lease](cfg.CacheTTL)
	stateCache := cache.New[[]domain.State](cfg.LocationsTTL)
	cityCache := cache.New[[]domain.City](cfg.LocationsTTL)

	// --- Resilience ---
	resilienceCfg := resilience.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		MaxConcurrency: cfg.MaxConcurrency,
	}
	cb := resilience.NewCircuitBreaker("rentify-backend")

	// --- Upstream client ---
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	backend := rentify.NewClient(httpClient, cfg.RentifyAPIURL, cb, resilienceCfg, metrics, logger)

	// --- Services ---
	landlordSvc := service.NewLandlords(backend, backend, backend, backend, metrics, logger)
	services := handler.Services{
		Auth:          service.NewAuth(backend, metrics, logger),
		Board:         service.NewBoard(backend, backend, metrics, logger),
		Leases:        service.NewLeases(backend, leaseCache, metrics, logger),
		Tenants:       service.NewTenants(backend, backend, metrics, logger),
		Landlords:     landlordSvc,
		Properties:    service.NewProperties(backend, backend, metrics, logger),
		Maintenance:   service.NewMaintenance(backend, metrics, logger),
		Guarantors:    service.NewGuarantors(backend, metrics, logger),
		Dashboard:     service.NewDashboard(backend, metrics, logger),
		Notifications: service.NewNotifications(backend, backend, metrics, logger),
		Payments:      service.NewPayments(backend, leaseCache, metrics, logger),
		Documents:     service.NewDocuments(backend, backend, landlordSvc, metrics, logger),
		Locations:     service.NewLocations(backend, stateCache, cityCache, metrics, logger),
	}

	// --- Router ---
	router := handler.NewRouter(services, metrics, cfg.AllowedOrigins, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
