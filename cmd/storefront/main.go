package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/router"
	"storefront/internal/session"
	"storefront/internal/storage"

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
	logger.Info().Msg("starting storefront API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer backend.Close()

	// Initialize catalogue loader with S3 and local fallback
	fileLoader := catalog.NewFileLoader(logger)
	var catalogLoader catalog.Loader = fileLoader

	if cfg.S3.Enabled {
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			catalogLoader = catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, logger)
		}
	} else if cfg.Catalog.Path != "" {
		logger.Info().Msg("using local file system for catalogue (S3 disabled)")
	}

	cat, err := catalog.Load(ctx, catalogLoader, cfg.Catalog.Path, logger)
	if err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}

	manager := session.NewManager(backend, cat, session.Timing{
		AuthLatency:   cfg.Timing.AuthLatency(),
		CheckoutDelay: cfg.Timing.CheckoutDelay(),
		ChatDelay:     cfg.Timing.ChatDelay(),
	}, logger)

	// Evict idle sessions for the life of the process
	go manager.RunSweeper(ctx, cfg.Session.SweepInterval(), cfg.Session.IdleTimeout())

	// Initialize router
	mux := router.New(router.NewHandlers(manager, logger), manager, logger)

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

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("storage", cfg.Storage.Backend).
			Int("products", cat.Len()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// openBackend connects the configured session store.
func openBackend(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (storage.Backend, error) {
	switch cfg.Storage.Backend {
	case config.StorageRedis:
		client, err := storage.DialRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		return storage.NewRedisBackend(client, cfg.Session.IdleTimeout(), logger), nil

	case config.StoragePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := database.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return storage.NewPostgresBackend(pool, logger), nil

	default:
		return storage.NewMemoryBackend(), nil
	}
}
