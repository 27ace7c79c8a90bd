package usecase

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/iho/fraudmini/internal/domain"
)

// RuleRepository loads the rule catalog once and serves it from memory for
// the lifetime of the process. There is no invalidation: new rules are picked
// up after a restart.
type RuleRepository struct {
	store    RuleStore
	pageSize int
	logger   zerolog.Logger

	group  singleflight.Group
	cached atomic.Pointer[domain.RuleSet]
}

// NewRuleRepository creates a new RuleRepository.
func NewRuleRepository(store RuleStore, logger zerolog.Logger) *RuleRepository {
	return &RuleRepository{
		store:    store,
		pageSize: RulePageSize,
		logger:   logger,
	}
}

// Load returns the rule catalog, scanning the store on first use. A failed
// scan is not cached.
func (r *RuleRepository) Load(ctx context.Context) (domain.RuleSet, error) {
	if rules := r.cached.Load(); rules != nil {
		return *rules, nil
	}

	v, err, _ := r.group.Do("rules", func() (any, error) {
		if rules := r.cached.Load(); rules != nil {
			return *rules, nil
		}

		rules, err := r.scanAll(ctx)
		if err != nil {
			return nil, err
		}

		r.cached.Store(&rules)
		r.logger.Info().Int("rules", len(rules)).Msg("rule catalog loaded")

		return rules, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: load rules: %w", domain.ErrUnavailable, err)
	}

	return v.(domain.RuleSet), nil
}

func (r *RuleRepository) scanAll(ctx context.Context) (domain.RuleSet, error) {
	rules := make(domain.RuleSet)

	after := ""
	for {
		page, next, err := r.store.Scan(ctx, after, r.pageSize)
		if err != nil {
			return nil, err
		}

		for _, rule := range page {
			rules[rule.ID] = rule
		}

		if next == "" || next == after {
			return rules, nil
		}
		after = next
	}
}
