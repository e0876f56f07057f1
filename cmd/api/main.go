package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agua-gas/internal/cart"
	"agua-gas/internal/catalog"
	"agua-gas/internal/config"
	"agua-gas/internal/handler"
	"agua-gas/internal/handoff"
	"agua-gas/internal/repository"
	"agua-gas/internal/router"
	"agua-gas/internal/service"
	"agua-gas/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting agua-gas storefront API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the persistent key-value store
	kv, err := newStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer kv.Close()

	// Initialize repositories
	feeRepo := repository.NewDeliveryFeeRepository(kv, logger)
	orderRepo := repository.NewOrderRepository(kv, logger)
	customerRepo := repository.NewCustomerRepository(kv, logger)
	settingsRepo := repository.NewSettingsRepository(kv, logger)

	// Initialize the catalogue and the per-session cart manager
	products := catalog.Default()
	carts := cart.NewManager(logger)

	// Initialize services
	feeService := service.NewDeliveryFeeService(feeRepo, logger)
	crmService := service.NewCRMService(customerRepo, orderRepo, logger)
	adminService := service.NewAdminService(settingsRepo, cfg.Admin.Password, cfg.Business.WhatsAppNumber, logger)
	whatsapp := handoff.NewWhatsApp(logger)
	checkoutService := service.NewCheckoutService(carts, feeService, crmService, adminService, orderRepo, whatsapp, logger)

	// Initialize HTTP handlers
	catalogHandler := handler.NewCatalogHandler(products, logger)
	cartHandler := handler.NewCartHandler(carts, products, logger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, logger)
	adminHandler := handler.NewAdminHandler(adminService, feeService, crmService, orderRepo, whatsapp, logger)

	// Initialize router
	mux := router.New(catalogHandler, cartHandler, checkoutHandler, adminHandler, adminService, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("storage", cfg.Storage.Backend).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newStore builds the key-value backend selected by configuration.
func newStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (store.KV, error) {
	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		poolCfg, err := pgxpool.ParseConfig(cfg.Storage.ConnectionString())
		if err != nil {
			return nil, fmt.Errorf("failed to parse database config: %w", err)
		}
		poolCfg.MaxConns = int32(cfg.Storage.MaxConnections)
		poolCfg.MinConns = int32(cfg.Storage.MinConnections)

		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create connection pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		return store.NewPostgresStore(ctx, pool, logger)

	case config.StorageRedis:
		return store.NewRedisStore(ctx, cfg.Storage.RedisURL, logger)

	default:
		return store.NewFileStore(cfg.Storage.Dir, logger)
	}
}
