package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/iho/fraudmini/internal/domain"
	"github.com/iho/fraudmini/internal/infrastructure/postgres/generated"
)

// RuleRepository implements usecase.RuleStore and seeds the rules table.
type RuleRepository struct {
	queries *generated.Queries
	txm     *TxManager
	retrier *Retrier
}

// NewRuleRepository creates a new RuleRepository.
func NewRuleRepository(db DB, retrier *Retrier) *RuleRepository {
	return &RuleRepository{
		queries: generated.New(db),
		txm:     NewTxManager(db),
		retrier: retrier,
	}
}

// Scan returns up to limit rules with IDs after the given one. The returned
// token is the last ID of a full page, or empty when the table is exhausted.
func (r *RuleRepository) Scan(ctx context.Context, after string, limit int) ([]domain.Rule, string, error) {
	var rows []generated.Rule
	err := r.retrier.Retry(ctx, func() error {
		var err error
		rows, err = r.queries.ListRulesAfter(ctx, generated.ListRulesAfterParams{
			RuleID: after,
			Limit:  int32(limit),
		})
		return err
	})
	if err != nil {
		return nil, "", fmt.Errorf("scan rules after %q: %w", after, err)
	}

	rules := make([]domain.Rule, 0, len(rows))
	for _, row := range rows {
		rules = append(rules, rowToRule(row))
	}

	next := ""
	if len(rows) == limit && limit > 0 {
		next = rows[len(rows)-1].RuleID
	}

	return rules, next, nil
}

// Upsert writes every rule in one transaction.
func (r *RuleRepository) Upsert(ctx context.Context, rules []domain.Rule) error {
	for i := range rules {
		if err := rules[i].Validate(); err != nil {
			return err
		}
	}

	now := time.Now().UTC()

	return r.txm.WithTx(ctx, func(q *generated.Queries) error {
		for _, rule := range rules {
			err := q.UpsertRule(ctx, generated.UpsertRuleParams{
				RuleID:    string(rule.ID),
				Name:      rule.Name,
				Weight:    int32(rule.Weight),
				Threshold: optionalDecimalToNumeric(rule.Threshold),
				List:      nonNil(rule.List),
				UpdatedAt: timeToPgTimestamptz(now),
			})
			if err != nil {
				return fmt.Errorf("upsert rule %s: %w", rule.ID, err)
			}
		}
		return nil
	})
}

// Count returns the number of stored rules.
func (r *RuleRepository) Count(ctx context.Context) (int64, error) {
	return r.queries.CountRules(ctx)
}
