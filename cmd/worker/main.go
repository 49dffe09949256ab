package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arnavshah/shift-admin-go/pkg/app"
	"github.com/arnavshah/shift-admin-go/pkg/config"
	"github.com/arnavshah/shift-admin-go/pkg/notify"
	"github.com/rs/zerolog/log"
)

// Worker consumes shift request creation events and notifies admins.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger := app.NewLogger(cfg, os.Stderr).With().Str("service", "worker").Logger()

	if cfg.RedisAddr == "" {
		logger.Fatal().Msg("REDIS_ADDR is required for the worker")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info().Msg("shutdown signal received")
		cancel()
	}()

	rdb := app.NewRedis(cfg.RedisAddr)
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis not reachable yet, will keep retrying")
	}

	consumer := notify.NewRedisNotifier(rdb, cfg.NotifyQueue, logger)
	admin := notify.NewLogNotifier(logger)

	logger.Info().Str("queue", cfg.NotifyQueue).Msg("worker started, waiting for events")
	err = consumer.Consume(ctx, func(ctx context.Context, evt notify.Event) error {
		if evt.Type != notify.EventShiftRequestCreated {
			logger.Debug().Str("type", evt.Type).Msg("ignoring event")
			return nil
		}
		return admin.ShiftRequestCreated(ctx, evt.ShiftRequest)
	})
	if err != nil {
		logger.Error().Err(err).Msg("worker stopped with error")
	}
	logger.Info().Msg("worker stopped")
}
