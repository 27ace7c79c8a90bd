package dto

import (
	"time"

	"github.com/iho/fraudmini/internal/domain"
	"github.com/iho/fraudmini/internal/usecase"
)

// ScoreResponse is returned by the scoring endpoint.
type ScoreResponse struct {
	TransactionID string          `json:"transaction_id"`
	Score         int             `json:"score"`
	Decision      domain.Tier     `json:"decision"`
	Reasons       []string        `json:"reasons"`
	RuleVersion   string          `json:"rule_version"`
	RulesFired    []domain.RuleID `json:"rules_fired"`
	S3Key         *string         `json:"s3_key"`
	Idempotent    bool            `json:"idempotent"`
}

// ScoreFromResult converts a scoring result to response.
func ScoreFromResult(res *usecase.ScoreResult) *ScoreResponse {
	d := res.Decision
	return &ScoreResponse{
		TransactionID: d.TransactionID,
		Score:         d.Score,
		Decision:      d.Tier,
		Reasons:       nonNil(d.Reasons),
		RuleVersion:   d.RuleVersion,
		RulesFired:    nonNil(d.RulesFired),
		S3Key:         res.ArchiveKey,
		Idempotent:    res.Idempotent,
	}
}

// DecisionResponse represents a stored decision in API responses.
type DecisionResponse struct {
	TransactionID string          `json:"transaction_id"`
	Score         int             `json:"score"`
	Decision      domain.Tier     `json:"decision"`
	Reasons       []string        `json:"reasons"`
	RuleVersion   string          `json:"rule_version"`
	RulesFired    []domain.RuleID `json:"rules_fired"`
	CreatedAt     time.Time       `json:"created_at"`
}

// DecisionFromDomain converts domain decision to response.
func DecisionFromDomain(d *domain.Decision) *DecisionResponse {
	return &DecisionResponse{
		TransactionID: d.TransactionID,
		Score:         d.Score,
		Decision:      d.Tier,
		Reasons:       nonNil(d.Reasons),
		RuleVersion:   d.RuleVersion,
		RulesFired:    nonNil(d.RulesFired),
		CreatedAt:     d.CreatedAt,
	}
}

// FileOutcomeResponse represents the processing result of one file.
type FileOutcomeResponse struct {
	File       string              `json:"file"`
	Status     domain.FileStatus   `json:"status"`
	ReceiptKey string              `json:"receipt_key,omitempty"`
	Rows       []domain.ReceiptRow `json:"rows,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// NotificationResponse is returned by the notification intake endpoint.
type NotificationResponse struct {
	Files []*FileOutcomeResponse `json:"files"`
}

// OutcomesFromDomain converts file outcomes to response.
func OutcomesFromDomain(outcomes []domain.FileOutcome) *NotificationResponse {
	files := make([]*FileOutcomeResponse, len(outcomes))
	for i, o := range outcomes {
		files[i] = &FileOutcomeResponse{
			File:       o.File.String(),
			Status:     o.Status,
			ReceiptKey: o.ReceiptKey,
			Rows:       o.Rows,
			Error:      usecase.FileOutcomeError(o),
		}
	}
	return &NotificationResponse{Files: files}
}

// HealthResponse is returned by the liveness probe.
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
