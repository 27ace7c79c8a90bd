package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iho/fraudmini/internal/domain"
	"github.com/iho/fraudmini/internal/usecase"
)

// DecisionCache is a read-through cache in front of a DecisionRepository.
// Cache failures are logged and fall back to the repository.
type DecisionCache struct {
	next   usecase.DecisionRepository
	client redis.Cmdable
	prefix string
	ttl    time.Duration
	logger zerolog.Logger
}

// NewDecisionCache creates a new DecisionCache.
func NewDecisionCache(next usecase.DecisionRepository, client redis.Cmdable, ttl time.Duration, logger zerolog.Logger) *DecisionCache {
	return &DecisionCache{
		next:   next,
		client: client,
		prefix: "decision:",
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached decision, loading it from the repository on a miss.
func (c *DecisionCache) Get(ctx context.Context, transactionID string) (*domain.Decision, error) {
	key := c.prefix + transactionID

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var decision domain.Decision
		if jsonErr := json.Unmarshal(raw, &decision); jsonErr == nil {
			return &decision, nil
		}
		c.logger.Warn().Str("key", key).Msg("discarding undecodable cached decision")
	case !errors.Is(err, redis.Nil):
		c.logger.Warn().Err(err).Str("key", key).Msg("decision cache read failed")
	}

	decision, err := c.next.Get(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, decision)

	return decision, nil
}

// Put writes the decision through to the repository, then refreshes the cache.
func (c *DecisionCache) Put(ctx context.Context, decision *domain.Decision) error {
	if err := c.next.Put(ctx, decision); err != nil {
		return err
	}

	c.store(ctx, decision)

	return nil
}

func (c *DecisionCache) store(ctx context.Context, decision *domain.Decision) {
	key := c.prefix + decision.TransactionID

	raw, err := json.Marshal(decision)
	if err == nil {
		err = c.client.Set(ctx, key, raw, c.ttl).Err()
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("decision cache write failed")
	}
}
