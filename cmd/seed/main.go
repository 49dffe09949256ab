package main

import (
	"context"
	"os"
	"time"

	"github.com/arnavshah/shift-admin-go/pkg/app"
	"github.com/arnavshah/shift-admin-go/pkg/config"
	"github.com/arnavshah/shift-admin-go/pkg/seed"
	"github.com/rs/zerolog/log"
)

// Loads the demo roster and shift requests into the configured store.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger := app.NewLogger(cfg, os.Stderr)

	if cfg.StoreBackend == config.BackendMemory {
		logger.Fatal().Msg("seeding the memory backend has no effect, use sql or firestore")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open store")
	}
	defer store.Close()

	if _, err := seed.Load(ctx, store, logger); err != nil {
		logger.Fatal().Err(err).Msg("seeding failed")
	}
}
