package usecase

import (
	"context"
	"io"
	"time"

	"github.com/iho/fraudmini/internal/domain"
)

// TransactionRepository defines data access for transactions.
type TransactionRepository interface {
	// Put stores the transaction, replacing any row with the same ID.
	Put(ctx context.Context, txn *domain.Transaction) error
	// RecentByUser returns the user's transactions by ts descending.
	RecentByUser(ctx context.Context, userID string, limit int) ([]*domain.Transaction, error)
}

// DecisionRepository defines data access for decisions.
type DecisionRepository interface {
	// Get returns domain.ErrDecisionNotFound when no decision exists.
	Get(ctx context.Context, transactionID string) (*domain.Decision, error)
	Put(ctx context.Context, decision *domain.Decision) error
}

// RuleStore is the backing store of the rule catalog.
type RuleStore interface {
	// Scan returns up to limit rules ordered by ID, starting after the
	// continuation token. An empty next token means the scan is exhausted.
	Scan(ctx context.Context, after string, limit int) (rules []domain.Rule, next string, err error)
}

// HistoryLookup returns a user's recent transactions.
type HistoryLookup interface {
	Recent(ctx context.Context, userID string, limit int) (domain.History, error)
}

// RuleLoader returns the rule catalog.
type RuleLoader interface {
	Load(ctx context.Context) (domain.RuleSet, error)
}

// ObjectStore is durable object storage for archives, receipts, and uploads.
type ObjectStore interface {
	Get(ctx context.Context, bucket, key string) (io.ReadCloser, error)
	Put(ctx context.Context, bucket, key string, body []byte, contentType string) error
	Copy(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) error
	Delete(ctx context.Context, bucket, key string) error
}

// MessageQueue sends messages to downstream consumers.
type MessageQueue interface {
	Send(ctx context.Context, payload []byte) error
}

// Publisher publishes notifications to a topic.
type Publisher interface {
	Publish(ctx context.Context, subject string, message []byte) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// DecisionRecorder observes scoring outcomes.
type DecisionRecorder interface {
	RecordDecision(decision *domain.Decision, idempotent bool, elapsed time.Duration)
	RecordSideEffectFailure(kind string)
}

// IngestRecorder observes ingestion outcomes.
type IngestRecorder interface {
	RecordFile(status domain.FileStatus)
	RecordRowDispatched()
}

type noopRecorder struct{}

func (noopRecorder) RecordDecision(*domain.Decision, bool, time.Duration) {}
func (noopRecorder) RecordSideEffectFailure(string) {}
func (noopRecorder) RecordFile(domain.FileStatus) {}
func (noopRecorder) RecordRowDispatched() {}
