package notify

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Runs only when a redis server is available.
func TestRedisNotifier_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	key := "test:shift:requests:" + time.Now().Format("150405.000000")
	defer client.Del(context.Background(), key)

	n := NewRedisNotifier(client, key, zerolog.Nop())
	req := models.ShiftRequest{ID: "abc", Date: "2025-05-12", StaffName: "John Doe", Status: models.StatusPending}
	if err := n.ShiftRequestCreated(ctx, req); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got := make(chan Event, 1)
	consumeCtx, stop := context.WithCancel(ctx)
	go n.Consume(consumeCtx, func(_ context.Context, evt Event) error {
		got <- evt
		stop()
		return nil
	})

	select {
	case evt := <-got:
		if evt.Type != EventShiftRequestCreated || evt.ShiftRequest.ID != "abc" {
			t.Errorf("Unexpected event %+v", evt)
		}
	case <-ctx.Done():
		t.Fatal("Timed out waiting for event")
	}
}

func TestNewRedisNotifier_DefaultQueue(t *testing.T) {
	n := NewRedisNotifier(redis.NewClient(&redis.Options{Addr: "localhost:0"}), "", zerolog.Nop())
	if n.key != DefaultQueue {
		t.Errorf("Expected default queue %s, got %s", DefaultQueue, n.key)
	}
}
