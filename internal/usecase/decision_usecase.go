package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/fraudmini/internal/domain"
)

// Side effect kinds reported to the recorder.
const (
	SideEffectArchive = "archive"
	SideEffectAlert   = "alert"
)

// DecisionConfig holds the dependencies of DecisionUseCase.
type DecisionConfig struct {
	Transactions TransactionRepository
	Decisions    DecisionRepository
	Rules        RuleLoader
	Engine       *DecisionEngine

	// Archive is optional; without it no archive copy is written.
	Archive       ObjectStore
	ArchiveBucket string

	// Alerts is optional; without it no alerts are published.
	Alerts Publisher

	IDGen       IDGenerator
	RuleVersion string
	Logger      zerolog.Logger
	Recorder    DecisionRecorder
	Now         func() time.Time
}

// DecisionUseCase scores transactions and persists the decisions.
type DecisionUseCase struct {
	transactions  TransactionRepository
	decisions     DecisionRepository
	rules         RuleLoader
	engine        *DecisionEngine
	archive       ObjectStore
	archiveBucket string
	alerts        Publisher
	idGen         IDGenerator
	ruleVersion   string
	logger        zerolog.Logger
	recorder      DecisionRecorder
	now           func() time.Time
}

// NewDecisionUseCase creates a new DecisionUseCase.
func NewDecisionUseCase(cfg DecisionConfig) *DecisionUseCase {
	if cfg.RuleVersion == "" {
		cfg.RuleVersion = DefaultRuleVersion
	}
	if cfg.Recorder == nil {
		cfg.Recorder = noopRecorder{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &DecisionUseCase{
		transactions:  cfg.Transactions,
		decisions:     cfg.Decisions,
		rules:         cfg.Rules,
		engine:        cfg.Engine,
		archive:       cfg.Archive,
		archiveBucket: cfg.ArchiveBucket,
		alerts:        cfg.Alerts,
		idGen:         cfg.IDGen,
		ruleVersion:   cfg.RuleVersion,
		logger:        cfg.Logger,
		recorder:      cfg.Recorder,
		now:           cfg.Now,
	}
}

// ScoreResult is the outcome of a scoring request.
type ScoreResult struct {
	Decision *domain.Decision
	// ArchiveKey is nil when nothing was archived.
	ArchiveKey *string
	// Idempotent is set when the decision was already stored.
	Idempotent bool
}

// Score validates a raw payload and scores it.
func (uc *DecisionUseCase) Score(ctx context.Context, payload []byte) (*ScoreResult, error) {
	txn, err := domain.ParseTransaction(payload)
	if err != nil {
		return nil, err
	}

	return uc.ScoreTransaction(ctx, txn)
}

// ScoreTransaction scores a parsed transaction. A stored decision for the
// same transaction ID is returned as is, without writes or side effects.
//
// The existence check and the writes are not atomic: two concurrent first
// requests for one ID may both evaluate, and the later write wins.
func (uc *DecisionUseCase) ScoreTransaction(ctx context.Context, txn *domain.Transaction) (*ScoreResult, error) {
	start := uc.now()

	existing, err := uc.decisions.Get(ctx, txn.TransactionID)
	switch {
	case err == nil:
		uc.recorder.RecordDecision(existing, true, uc.now().Sub(start))
		return &ScoreResult{Decision: existing, Idempotent: true}, nil
	case !errors.Is(err, domain.ErrDecisionNotFound):
		return nil, fmt.Errorf("check existing decision: %w", err)
	}

	createdAt := uc.now().UTC()
	txn.CreatedAt = createdAt

	if err := uc.transactions.Put(ctx, txn); err != nil {
		return nil, fmt.Errorf("persist transaction: %w", err)
	}

	rules, err := uc.rules.Load(ctx)
	if err != nil {
		return nil, err
	}

	ev, err := uc.engine.Decide(ctx, txn, rules)
	if err != nil {
		return nil, err
	}

	decision := &domain.Decision{
		TransactionID: txn.TransactionID,
		Score:         ev.Score,
		Tier:          ev.Tier,
		Reasons:       ev.Reasons,
		RuleVersion:   uc.ruleVersion,
		RulesFired:    ev.Fired,
		CreatedAt:     createdAt,
	}

	if err := uc.decisions.Put(ctx, decision); err != nil {
		return nil, fmt.Errorf("persist decision: %w", err)
	}

	result := &ScoreResult{Decision: decision}
	result.ArchiveKey = uc.archiveDecision(ctx, txn, decision)
	uc.publishAlert(ctx, txn, decision)

	uc.recorder.RecordDecision(decision, false, uc.now().Sub(start))

	return result, nil
}

// GetDecision returns the stored decision for a transaction.
func (uc *DecisionUseCase) GetDecision(ctx context.Context, transactionID string) (*domain.Decision, error) {
	return uc.decisions.Get(ctx, transactionID)
}

type archiveRecord struct {
	Transaction *domain.Transaction `json:"transaction"`
	Decision    *domain.Decision    `json:"decision"`
}

// ArchiveKey returns the time-partitioned key a decision is archived under.
func ArchiveKey(transactionID string, createdAt time.Time) string {
	t := createdAt.UTC()
	return fmt.Sprintf("decisions/year=%04d/month=%02d/day=%02d/hour=%02d/%s.json",
		t.Year(), t.Month(), t.Day(), t.Hour(), url.PathEscape(transactionID))
}

func (uc *DecisionUseCase) archiveDecision(ctx context.Context, txn *domain.Transaction, decision *domain.Decision) *string {
	if uc.archive == nil {
		return nil
	}

	key := ArchiveKey(decision.TransactionID, decision.CreatedAt)

	body, err := json.Marshal(archiveRecord{Transaction: txn, Decision: decision})
	if err == nil {
		err = uc.archive.Put(ctx, uc.archiveBucket, key, body, "application/json")
	}
	if err != nil {
		uc.recorder.RecordSideEffectFailure(SideEffectArchive)
		uc.logger.Error().
			Err(err).
			Str("transaction_id", decision.TransactionID).
			Str("key", key).
			Msg("failed to archive decision")

		return nil
	}

	return &key
}

// DecisionAlert is the redacted notification published for risky decisions.
// It carries identifiers and scoring output only.
type DecisionAlert struct {
	AlertID       string          `json:"alert_id"`
	TransactionID string          `json:"transaction_id"`
	UserID        string          `json:"user_id"`
	Decision      domain.Tier     `json:"decision"`
	Score         int             `json:"score"`
	Reasons       []string        `json:"reasons"`
	RulesFired    []domain.RuleID `json:"rules_fired"`
	RuleVersion   string          `json:"rule_version"`
}

func (uc *DecisionUseCase) publishAlert(ctx context.Context, txn *domain.Transaction, decision *domain.Decision) {
	if uc.alerts == nil || !decision.Tier.Alertable() {
		return
	}

	alert := DecisionAlert{
		TransactionID: decision.TransactionID,
		UserID:        txn.UserID,
		Decision:      decision.Tier,
		Score:         decision.Score,
		Reasons:       decision.Reasons,
		RulesFired:    decision.RulesFired,
		RuleVersion:   decision.RuleVersion,
	}
	if uc.idGen != nil {
		alert.AlertID = uc.idGen.Generate()
	}

	message, err := json.Marshal(alert)
	if err == nil {
		err = uc.alerts.Publish(ctx, fmt.Sprintf("%s: %s", AlertSubject, decision.Tier), message)
	}
	if err != nil {
		uc.recorder.RecordSideEffectFailure(SideEffectAlert)
		uc.logger.Error().
			Err(err).
			Str("transaction_id", decision.TransactionID).
			Str("decision", string(decision.Tier)).
			Msg("failed to publish decision alert")
	}
}
