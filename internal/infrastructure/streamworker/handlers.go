package streamworker

import (
	"context"
	"errors"

	"github.com/iho/fraudmini/internal/domain"
	"github.com/iho/fraudmini/internal/usecase"
)

// Scorer scores one raw transaction payload.
type Scorer interface {
	Score(ctx context.Context, payload []byte) (*usecase.ScoreResult, error)
}

// NotificationHandler processes referenced files.
type NotificationHandler interface {
	HandleNotifications(ctx context.Context, refs []domain.FileRef) []domain.FileOutcome
}

// ScoreHandler scores transactions dispatched by the ingestion pipeline.
// Payloads that fail validation are rejected; every other error is retried.
func ScoreHandler(scorer Scorer) Handler {
	return func(ctx context.Context, body []byte) error {
		_, err := scorer.Score(ctx, body)
		if errors.Is(err, domain.ErrValidation) {
			return Permanent(err)
		}
		return err
	}
}

// IngestHandler processes file-arrival notifications. File level failures
// are quarantined by the pipeline and do not fail the message.
func IngestHandler(pipeline NotificationHandler) Handler {
	return func(ctx context.Context, body []byte) error {
		refs, err := usecase.ParseNotification(body)
		if err != nil {
			return Permanent(err)
		}

		pipeline.HandleNotifications(ctx, refs)

		return ctx.Err()
	}
}
