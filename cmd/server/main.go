package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	httpAdapter "github.com/iho/fraudmini/internal/adapter/http"
	"github.com/iho/fraudmini/internal/adapter/http/handler"
	"github.com/iho/fraudmini/internal/adapter/http/middleware"
	"github.com/iho/fraudmini/internal/app"
	"github.com/iho/fraudmini/internal/infrastructure/config"
	"github.com/iho/fraudmini/internal/infrastructure/logger"
	"github.com/iho/fraudmini/internal/infrastructure/postgres"
	"github.com/iho/fraudmini/internal/infrastructure/redis"
)

const serviceName = "fraudmini"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: serviceName,
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx := context.Background()

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	container, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer container.Close()

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	stopCleanup := startLimiterCleanup(rateLimiter, 10*time.Minute)
	defer stopCleanup()

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		DecisionHandler: handler.NewDecisionHandler(container.Decisions),
		IngestHandler:   handler.NewIngestHandler(container.Ingest),
		HealthHandler: handler.NewHealthHandler(
			serviceName,
			container.Pool,
			redis.Pinger{Client: container.Redis},
		),
		RateLimiter: rateLimiter,
		Logger:      log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}

// startLimiterCleanup evicts idle per-client limiters until the returned
// function is called.
func startLimiterCleanup(rl *middleware.RateLimiter, interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				rl.CleanupLimiters(interval)
			case <-done:
				return
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(done)
	}
}
