package streamworker

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// Message is one entry delivered by a Source.
type Message struct {
	ID   string
	Body []byte
}

// Source delivers messages and accepts acknowledgements.
type Source interface {
	Read(ctx context.Context) ([]Message, error)
	Ack(ctx context.Context, ids ...string) error
}

// Handler processes one message body.
type Handler func(ctx context.Context, body []byte) error

// Recorder observes message outcomes.
type Recorder interface {
	RecordMessage(worker, outcome string)
}

// Message outcomes reported to the Recorder.
const (
	OutcomeHandled  = "handled"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// permanentError marks a message that will never succeed.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent wraps err so the worker acknowledges the message instead of
// retrying it.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Worker reads messages from a Source and hands each to a Handler.
type Worker struct {
	name       string
	source     Source
	handler    Handler
	logger     zerolog.Logger
	recorder   Recorder
	maxRetries uint64
	newBackOff func() backoff.BackOff
}

// Config for Worker.
type Config struct {
	Name     string
	Source   Source
	Handler  Handler
	Logger   zerolog.Logger
	Recorder Recorder
	// MaxRetries bounds in-process retries of a failing message.
	MaxRetries uint64
}

type noopRecorder struct{}

func (noopRecorder) RecordMessage(string, string) {}

// New creates a new Worker.
func New(cfg Config) *Worker {
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Recorder == nil {
		cfg.Recorder = noopRecorder{}
	}

	return &Worker{
		name:       cfg.Name,
		source:     cfg.Source,
		handler:    cfg.Handler,
		logger:     cfg.Logger.With().Str("worker", cfg.Name).Logger(),
		recorder:   cfg.Recorder,
		maxRetries: cfg.MaxRetries,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 100 * time.Millisecond
			b.MaxInterval = 5 * time.Second
			b.MaxElapsedTime = 0
			return b
		},
	}
}

// Start runs the worker until the context is cancelled.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info().Msg("stream worker started")

	readBackOff := w.newBackOff()

	for {
		if ctx.Err() != nil {
			w.logger.Info().Msg("stream worker shutting down")
			return ctx.Err()
		}

		messages, err := w.source.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}

			wait := readBackOff.NextBackOff()
			w.logger.Error().Err(err).Dur("retry_in", wait).Msg("error reading messages")

			select {
			case <-ctx.Done():
			case <-time.After(wait):
			}
			continue
		}
		readBackOff.Reset()

		w.processBatch(ctx, messages)
	}
}

// processBatch handles messages in order. A failed message is left
// unacknowledged; the rest of the batch still runs.
func (w *Worker) processBatch(ctx context.Context, messages []Message) {
	for _, msg := range messages {
		outcome := w.handle(ctx, msg)
		w.recorder.RecordMessage(w.name, outcome)

		if outcome == OutcomeFailed {
			continue
		}

		if err := w.source.Ack(ctx, msg.ID); err != nil {
			w.logger.Error().Err(err).Str("message_id", msg.ID).Msg("failed to acknowledge message")
		}
	}
}

func (w *Worker) handle(ctx context.Context, msg Message) string {
	b := backoff.WithContext(backoff.WithMaxRetries(w.newBackOff(), w.maxRetries), ctx)

	err := backoff.Retry(func() error {
		err := w.handler(ctx, msg.Body)
		var perm *permanentError
		if errors.As(err, &perm) {
			return backoff.Permanent(err)
		}
		return err
	}, b)

	var perm *permanentError
	switch {
	case err == nil:
		w.logger.Debug().Str("message_id", msg.ID).Msg("message handled")
		return OutcomeHandled
	case errors.As(err, &perm):
		w.logger.Warn().Err(err).Str("message_id", msg.ID).Msg("message rejected")
		return OutcomeRejected
	default:
		w.logger.Error().Err(err).Str("message_id", msg.ID).Msg("message failed, leaving unacknowledged")
		return OutcomeFailed
	}
}
