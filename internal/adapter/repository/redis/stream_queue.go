package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// StreamField is the stream entry field holding the message body.
const StreamField = "body"

// StreamQueue implements usecase.MessageQueue on a Redis stream.
type StreamQueue struct {
	client redis.Cmdable
	stream string
	maxLen int64
}

// NewStreamQueue creates a new StreamQueue. A positive maxLen caps the
// stream length approximately.
func NewStreamQueue(client redis.Cmdable, stream string, maxLen int64) *StreamQueue {
	return &StreamQueue{
		client: client,
		stream: stream,
		maxLen: maxLen,
	}
}

// Send appends the payload to the stream.
func (q *StreamQueue) Send(ctx context.Context, payload []byte) error {
	args := &redis.XAddArgs{
		Stream: q.stream,
		Values: map[string]any{StreamField: payload},
	}
	if q.maxLen > 0 {
		args.MaxLen = q.maxLen
		args.Approx = true
	}

	if err := q.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("xadd %s: %w", q.stream, err)
	}

	return nil
}
