package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/iho/fraudmini/internal/domain"
	"github.com/iho/fraudmini/internal/infrastructure/postgres/generated"
)

// DecisionRepository implements usecase.DecisionRepository.
type DecisionRepository struct {
	queries *generated.Queries
	retrier *Retrier
}

// NewDecisionRepository creates a new DecisionRepository.
func NewDecisionRepository(db generated.DBTX, retrier *Retrier) *DecisionRepository {
	return &DecisionRepository{
		queries: generated.New(db),
		retrier: retrier,
	}
}

// Get retrieves the decision for a transaction.
func (r *DecisionRepository) Get(ctx context.Context, transactionID string) (*domain.Decision, error) {
	var row generated.Decision
	err := r.retrier.Retry(ctx, func() error {
		var err error
		row, err = r.queries.GetDecision(ctx, transactionID)
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDecisionNotFound
		}

		return nil, err
	}

	return rowToDecision(row), nil
}

// Put stores a decision. An existing decision for the same transaction is
// overwritten.
func (r *DecisionRepository) Put(ctx context.Context, decision *domain.Decision) error {
	fired := make([]string, 0, len(decision.RulesFired))
	for _, id := range decision.RulesFired {
		fired = append(fired, string(id))
	}

	return r.queries.UpsertDecision(ctx, generated.UpsertDecisionParams{
		TransactionID: decision.TransactionID,
		Score:         int32(decision.Score),
		Decision:      string(decision.Tier),
		Reasons:       nonNil(decision.Reasons),
		RuleVersion:   decision.RuleVersion,
		RulesFired:    fired,
		CreatedAt:     timeToPgTimestamptz(decision.CreatedAt),
	})
}
