package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/iho/fraudmini/internal/adapter/http/handler"
	postgresRepo "github.com/iho/fraudmini/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/fraudmini/internal/adapter/repository/redis"
	"github.com/iho/fraudmini/internal/app"
	"github.com/iho/fraudmini/internal/infrastructure/config"
	"github.com/iho/fraudmini/internal/infrastructure/logger"
	redisInfra "github.com/iho/fraudmini/internal/infrastructure/redis"
	"github.com/iho/fraudmini/internal/infrastructure/streamworker"
)

const serviceName = "fraudmini-worker"

func main() {
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("worker failed")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	container, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer container.Close()

	consumer := cfg.WorkerConsumer
	if consumer == "" {
		consumer = consumerName(postgresRepo.NewULIDGenerator())
	}

	workers := []struct {
		name    string
		stream  string
		handler streamworker.Handler
	}{
		{"rows", cfg.RowQueueStream, streamworker.ScoreHandler(container.Decisions)},
		{"notifications", cfg.NotificationStream, streamworker.IngestHandler(container.Ingest)},
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, w := range workers {
		source := redisRepo.NewStreamConsumer(container.Redis, redisRepo.ConsumerConfig{
			Stream:       w.stream,
			Group:        cfg.WorkerGroup,
			Consumer:     consumer,
			Count:        cfg.WorkerBatchSize,
			Block:        cfg.WorkerBlock,
			ClaimMinIdle: cfg.WorkerClaimIdle,
		})
		if err := source.EnsureGroup(ctx); err != nil {
			return fmt.Errorf("create consumer group on %s: %w", w.stream, err)
		}

		worker := streamworker.New(streamworker.Config{
			Name:       w.name,
			Source:     source,
			Handler:    w.handler,
			Logger:     log,
			Recorder:   container.Metrics,
			MaxRetries: cfg.WorkerMaxRetries,
		})

		g.Go(func() error {
			if err := worker.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.MetricsPort),
		Handler:           metricsRouter(handler.NewHealthHandler(serviceName, container.Pool, redisInfra.Pinger{Client: container.Redis})),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		log.Info().Str("port", cfg.MetricsPort).Str("consumer", consumer).Msg("starting worker")
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
		defer cancel()
		return metricsServer.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	log.Info().Msg("worker stopped")
	return err
}

type idGenerator interface {
	Generate() string
}

// consumerName identifies this process within the consumer group.
func consumerName(ids idGenerator) string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "worker"
	}
	return host + "-" + ids.Generate()
}

// metricsRouter serves the worker's scrape and probe endpoints.
func metricsRouter(health *handler.HealthHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", health.Liveness)
	r.Get("/ready", health.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
