package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DefaultQueue is the Redis list creation events are pushed to
const DefaultQueue = "shift:requests:created"

// RedisNotifier pushes creation events onto a Redis list for the worker
type RedisNotifier struct {
	client *redis.Client
	key    string
	logger zerolog.Logger
	now    func() time.Time
}

// NewRedisNotifier builds a notifier using LPUSH/BRPOP semantics
func NewRedisNotifier(client *redis.Client, key string, logger zerolog.Logger) *RedisNotifier {
	if key == "" {
		key = DefaultQueue
	}
	return &RedisNotifier{
		client: client,
		key:    key,
		logger: logger.With().Str("component", "notify").Str("queue", key).Logger(),
		now:    time.Now,
	}
}

func (n *RedisNotifier) ShiftRequestCreated(ctx context.Context, req models.ShiftRequest) error {
	body, err := json.Marshal(Event{
		Type:         EventShiftRequestCreated,
		ShiftRequest: req,
		OccurredAt:   n.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	if err := n.client.LPush(ctx, n.key, body).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	logEvent(n.logger, req).Msg("shift request event published")
	return nil
}

// Consume pops events until ctx is cancelled and passes each to handle.
// Undecodable messages are logged and dropped.
func (n *RedisNotifier) Consume(ctx context.Context, handle func(context.Context, Event) error) error {
	for {
		res, err := n.client.BRPop(ctx, 5*time.Second, n.key).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, redis.Nil) {
				continue
			}
			n.logger.Error().Err(err).Msg("queue pop failed")
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second):
			}
			continue
		}
		if len(res) != 2 {
			continue
		}

		var evt Event
		if err := json.Unmarshal([]byte(res[1]), &evt); err != nil {
			n.logger.Warn().Err(err).Msg("dropping undecodable event")
			continue
		}
		if err := handle(ctx, evt); err != nil {
			n.logger.Error().Err(err).Str("request_id", evt.ShiftRequest.ID).Msg("event handler failed")
		}
	}
}
