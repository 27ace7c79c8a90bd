package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

func TestStreamQueueSend(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	queue := NewStreamQueue(client, "rows", 0)
	ctx := context.Background()

	for _, body := range []string{`{"transaction_id":"t1"}`, `{"transaction_id":"t2"}`} {
		if err := queue.Send(ctx, []byte(body)); err != nil {
			t.Fatalf("send failed: %v", err)
		}
	}

	entries, err := client.XRange(ctx, "rows", "-", "+").Result()
	if err != nil {
		t.Fatalf("xrange failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].Values[StreamField] != `{"transaction_id":"t2"}` {
		t.Fatalf("unexpected body %v", entries[1].Values)
	}
}

func TestStreamConsumerReadAndAck(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()
	consumer := NewStreamConsumer(client, ConsumerConfig{
		Stream:   "rows",
		Group:    "scorers",
		Consumer: "c1",
		Block:    50 * time.Millisecond,
	})

	if err := consumer.EnsureGroup(ctx); err != nil {
		t.Fatalf("ensure group failed: %v", err)
	}
	// A second call must tolerate the existing group.
	if err := consumer.EnsureGroup(ctx); err != nil {
		t.Fatalf("ensure group is not idempotent: %v", err)
	}

	queue := NewStreamQueue(client, "rows", 1000)
	if err := queue.Send(ctx, []byte("hello")); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	messages, err := consumer.Read(ctx)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(messages) != 1 || string(messages[0].Body) != "hello" {
		t.Fatalf("unexpected messages %+v", messages)
	}

	pending, err := client.XPending(ctx, "rows", "scorers").Result()
	if err != nil {
		t.Fatalf("xpending failed: %v", err)
	}
	if pending.Count != 1 {
		t.Fatalf("expected 1 pending message, got %d", pending.Count)
	}

	if err := consumer.Ack(ctx, messages[0].ID); err != nil {
		t.Fatalf("ack failed: %v", err)
	}

	pending, err = client.XPending(ctx, "rows", "scorers").Result()
	if err != nil {
		t.Fatalf("xpending failed: %v", err)
	}
	if pending.Count != 0 {
		t.Fatalf("expected no pending messages, got %d", pending.Count)
	}
}

func TestAlertPublisherPublish(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()
	sub := client.Subscribe(ctx, "fraud-alerts")
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	publisher := NewAlertPublisher(client, "fraud-alerts")
	if err := publisher.Publish(ctx, "fraud decision: block", []byte(`{"transaction_id":"t1"}`)); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	recvCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	msg, err := sub.ReceiveMessage(recvCtx)
	if err != nil {
		t.Fatalf("receive failed: %v", err)
	}

	var envelope AlertEnvelope
	if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if envelope.Subject != "fraud decision: block" {
		t.Fatalf("unexpected subject %q", envelope.Subject)
	}
	if string(envelope.Message) != `{"transaction_id":"t1"}` {
		t.Fatalf("unexpected message %s", envelope.Message)
	}
}

func TestStreamConsumerRedeliversUnacked(t *testing.T) {
	client, _ := newTestRedisClient(t)
	ctx := context.Background()

	cfg := ConsumerConfig{
		Stream:       "rows",
		Group:        "scorers",
		Consumer:     "w1",
		Block:        20 * time.Millisecond,
		ClaimMinIdle: 200 * time.Millisecond,
	}

	first := NewStreamConsumer(client, cfg)
	if err := first.EnsureGroup(ctx); err != nil {
		t.Fatalf("ensure group failed: %v", err)
	}
	if err := NewStreamQueue(client, "rows", 0).Send(ctx, []byte("row-1")); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	delivered, err := first.Read(ctx)
	if err != nil || len(delivered) != 1 {
		t.Fatalf("expected first delivery, got %+v (err %v)", delivered, err)
	}
	id := delivered[0].ID

	t.Run("same consumer after restart", func(t *testing.T) {
		restarted := NewStreamConsumer(client, cfg)
		messages, err := restarted.Read(ctx)
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if len(messages) != 1 || messages[0].ID != id || string(messages[0].Body) != "row-1" {
			t.Fatalf("expected pending entry %s, got %+v", id, messages)
		}
	})

	t.Run("fresh entries are not claimed", func(t *testing.T) {
		other := cfg
		other.Consumer = "w3"
		messages, err := NewStreamConsumer(client, other).Read(ctx)
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if len(messages) != 0 {
			t.Fatalf("expected nothing before the idle time, got %+v", messages)
		}
	})

	t.Run("another consumer claims idle entry", func(t *testing.T) {
		time.Sleep(300 * time.Millisecond)

		other := cfg
		other.Consumer = "w2"
		claimer := NewStreamConsumer(client, other)

		messages, err := claimer.Read(ctx)
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if len(messages) != 1 || messages[0].ID != id {
			t.Fatalf("expected claimed entry %s, got %+v", id, messages)
		}

		pending, err := client.XPendingExt(ctx, &redislib.XPendingExtArgs{
			Stream: "rows",
			Group:  "scorers",
			Start:  "-",
			End:    "+",
			Count:  10,
		}).Result()
		if err != nil {
			t.Fatalf("xpending failed: %v", err)
		}
		if len(pending) != 1 || pending[0].Consumer != "w2" {
			t.Fatalf("expected entry owned by w2, got %+v", pending)
		}

		if err := claimer.Ack(ctx, id); err != nil {
			t.Fatalf("ack failed: %v", err)
		}
		summary, err := client.XPending(ctx, "rows", "scorers").Result()
		if err != nil {
			t.Fatalf("xpending failed: %v", err)
		}
		if summary.Count != 0 {
			t.Fatalf("expected no pending entries, got %d", summary.Count)
		}
	})
}
