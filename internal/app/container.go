// Package app assembles the runtime object graph shared by the server and
// worker binaries.
package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	postgresRepo "github.com/iho/fraudmini/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/fraudmini/internal/adapter/repository/redis"
	s3store "github.com/iho/fraudmini/internal/adapter/storage/s3"
	"github.com/iho/fraudmini/internal/infrastructure/config"
	"github.com/iho/fraudmini/internal/infrastructure/metrics"
	"github.com/iho/fraudmini/internal/infrastructure/postgres"
	"github.com/iho/fraudmini/internal/infrastructure/redis"
	"github.com/iho/fraudmini/internal/usecase"
)

// Container holds connected infrastructure and the use cases built on it.
type Container struct {
	Pool    *pgxpool.Pool
	Redis   *goredis.Client
	Metrics *metrics.Metrics

	Rules     *postgresRepo.RuleRepository
	Decisions *usecase.DecisionUseCase
	Ingest    *usecase.IngestUseCase
}

// New connects to Postgres, Redis and S3 and wires the use cases.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Container, error) {
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	logger.Info().Msg("connected to postgres")

	redisClient, err := redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info().Msg("connected to redis")

	s3Client, err := s3store.NewClient(ctx, s3store.ClientConfig{
		Region:   cfg.AWSRegion,
		Endpoint: cfg.S3Endpoint,
	})
	if err != nil {
		pool.Close()
		redisClient.Close()
		return nil, fmt.Errorf("create s3 client: %w", err)
	}
	objects := s3store.NewObjectStore(s3Client, cfg.KMSKeyARN)

	m := metrics.New()

	// Repositories
	retrier := postgresRepo.NewRetrier(logger)
	transactionRepo := postgresRepo.NewTransactionRepository(pool, retrier)
	ruleRepo := postgresRepo.NewRuleRepository(pool, retrier)
	decisionRepo := redisRepo.NewDecisionCache(
		postgresRepo.NewDecisionRepository(pool, retrier),
		redisClient,
		cfg.DecisionCacheTTL,
		logger,
	)

	// Use cases
	decisionUC := usecase.NewDecisionUseCase(usecase.DecisionConfig{
		Transactions:  transactionRepo,
		Decisions:     decisionRepo,
		Rules:         usecase.NewRuleRepository(ruleRepo, logger),
		Engine:        usecase.NewDecisionEngine(transactionRepo),
		Archive:       objects,
		ArchiveBucket: cfg.ArchiveBucket,
		Alerts:        redisRepo.NewAlertPublisher(redisClient, cfg.AlertChannel),
		IDGen:         postgresRepo.NewULIDGenerator(),
		RuleVersion:   cfg.RuleVersion,
		Logger:        logger,
		Recorder:      m,
	})

	ingestUC := usecase.NewIngestUseCase(usecase.IngestConfig{
		Objects:       objects,
		RefinedBucket: cfg.RefinedBucket,
		Queue:         redisRepo.NewStreamQueue(redisClient, cfg.RowQueueStream, cfg.RowQueueMaxLen),
		Logger:        logger,
		Recorder:      m,
	})

	return &Container{
		Pool:      pool,
		Redis:     redisClient,
		Metrics:   m,
		Rules:     ruleRepo,
		Decisions: decisionUC,
		Ingest:    ingestUC,
	}, nil
}

// Close releases the Redis client and the Postgres pool.
func (c *Container) Close() {
	if c.Redis != nil {
		c.Redis.Close()
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}
