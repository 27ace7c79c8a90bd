package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/fraudmini/internal/infrastructure/streamworker"
)

// StreamConsumer reads a stream as a member of a consumer group. It
// implements streamworker.Source and is not safe for concurrent use.
//
// Read first re-delivers entries still pending for this consumer name, then
// periodically claims entries other consumers left idle for longer than
// ClaimMinIdle, and otherwise blocks for new entries.
type StreamConsumer struct {
	client   redis.Cmdable
	stream   string
	group    string
	consumer string
	count    int64
	block    time.Duration
	minIdle  time.Duration
	now      func() time.Time

	pendingFrom string
	drained     bool
	claimFrom   string
	lastClaim   time.Time
}

// ConsumerConfig configures a StreamConsumer.
type ConsumerConfig struct {
	Stream   string
	Group    string
	Consumer string
	Count    int64
	Block    time.Duration
	// ClaimMinIdle is how long an entry must sit unacknowledged before any
	// consumer may claim it. It is also the interval between claim scans.
	ClaimMinIdle time.Duration
}

// NewStreamConsumer creates a new StreamConsumer.
func NewStreamConsumer(client redis.Cmdable, cfg ConsumerConfig) *StreamConsumer {
	if cfg.Count <= 0 {
		cfg.Count = 10
	}
	if cfg.Block <= 0 {
		cfg.Block = 5 * time.Second
	}
	if cfg.ClaimMinIdle <= 0 {
		cfg.ClaimMinIdle = time.Minute
	}

	return &StreamConsumer{
		client:      client,
		stream:      cfg.Stream,
		group:       cfg.Group,
		consumer:    cfg.Consumer,
		count:       cfg.Count,
		block:       cfg.Block,
		minIdle:     cfg.ClaimMinIdle,
		now:         time.Now,
		pendingFrom: "0",
		claimFrom:   "0-0",
	}
}

// Stream returns the stream name.
func (c *StreamConsumer) Stream() string {
	return c.stream
}

// EnsureGroup creates the stream and consumer group if they do not exist.
func (c *StreamConsumer) EnsureGroup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("create group %s on %s: %w", c.group, c.stream, err)
	}
	return nil
}

// Read returns the next batch of messages. It returns no messages and no
// error when the block timeout passes.
func (c *StreamConsumer) Read(ctx context.Context) ([]streamworker.Message, error) {
	if !c.drained {
		messages, err := c.readPending(ctx)
		if err != nil || len(messages) > 0 {
			return messages, err
		}
		c.drained = true
	}

	if c.now().Sub(c.lastClaim) >= c.minIdle {
		messages, err := c.claimStale(ctx)
		if err != nil || len(messages) > 0 {
			return messages, err
		}
	}

	return c.readNew(ctx)
}

// readPending walks the entries already delivered to this consumer name, for
// example before a restart.
func (c *StreamConsumer) readPending(ctx context.Context) ([]streamworker.Message, error) {
	streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.group,
		Consumer: c.consumer,
		Streams:  []string{c.stream, c.pendingFrom},
		Count:    c.count,
		Block:    -1,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("xreadgroup pending %s: %w", c.stream, err)
	}

	messages := toMessages(streams)
	if len(messages) > 0 {
		c.pendingFrom = messages[len(messages)-1].ID
	}
	return messages, nil
}

// claimStale takes over entries idle for at least minIdle. A scan that stops
// mid-list resumes from the returned cursor on the next Read.
func (c *StreamConsumer) claimStale(ctx context.Context) ([]streamworker.Message, error) {
	claimed, next, err := c.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   c.stream,
		Group:    c.group,
		Consumer: c.consumer,
		MinIdle:  c.minIdle,
		Start:    c.claimFrom,
		Count:    c.count,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("xautoclaim %s: %w", c.stream, err)
	}

	c.claimFrom = next
	if next == "0-0" {
		c.lastClaim = c.now()
	}

	messages := make([]streamworker.Message, 0, len(claimed))
	for _, m := range claimed {
		messages = append(messages, streamworker.Message{ID: m.ID, Body: bodyOf(m.Values)})
	}
	return messages, nil
}

func (c *StreamConsumer) readNew(ctx context.Context) ([]streamworker.Message, error) {
	streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.group,
		Consumer: c.consumer,
		Streams:  []string{c.stream, ">"},
		Count:    c.count,
		Block:    c.block,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("xreadgroup %s: %w", c.stream, err)
	}

	return toMessages(streams), nil
}

func toMessages(streams []redis.XStream) []streamworker.Message {
	var messages []streamworker.Message
	for _, s := range streams {
		for _, m := range s.Messages {
			messages = append(messages, streamworker.Message{ID: m.ID, Body: bodyOf(m.Values)})
		}
	}
	return messages
}

// Ack acknowledges processed messages.
func (c *StreamConsumer) Ack(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := c.client.XAck(ctx, c.stream, c.group, ids...).Err(); err != nil {
		return fmt.Errorf("xack %s: %w", c.stream, err)
	}
	return nil
}

func bodyOf(values map[string]any) []byte {
	switch v := values[StreamField].(type) {
	case string:
		return []byte(v)
	case []byte:
		return v
	default:
		return nil
	}
}
