package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/arnavshah/shift-admin-go/pkg/config"
	"github.com/arnavshah/shift-admin-go/pkg/database"
	"github.com/arnavshah/shift-admin-go/pkg/firestoredb"
	"github.com/arnavshah/shift-admin-go/pkg/handlers"
	"github.com/arnavshah/shift-admin-go/pkg/notify"
	"github.com/arnavshah/shift-admin-go/pkg/repository"
	"github.com/arnavshah/shift-admin-go/pkg/staffing"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewLogger builds the process logger: human readable outside production,
// JSON in production. Both use RFC3339 timestamps. Unknown levels fall back
// to info.
func NewLogger(cfg *config.Config, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if !cfg.IsProduction() {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).With().Timestamp().Logger()
}

// OpenStore opens the record store selected by cfg.StoreBackend
func OpenStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (repository.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		logger.Warn().Msg("using in-memory store, data is lost on restart")
		return repository.NewMemoryStore(), nil
	case config.BackendFirestore:
		fs, err := firestoredb.New(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath, logger)
		if err != nil {
			return nil, err
		}
		return fs, nil
	case config.BackendSQL, "":
		db, err := database.Open(cfg.DatabaseURL, cfg.DataPath, logger)
		if err != nil {
			return nil, err
		}
		return database.NewStore(db), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}

// NewRedis connects to redis with short timeouts. It returns nil when addr is empty.
func NewRedis(addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
}

// NewNotifier publishes to redis when a client is available and only logs otherwise
func NewNotifier(cfg *config.Config, client *redis.Client, logger zerolog.Logger) notify.Notifier {
	if client == nil {
		return notify.NewLogNotifier(logger)
	}
	return notify.NewRedisNotifier(client, cfg.NotifyQueue, logger)
}

// Services bundles everything the HTTP layer needs
type Services struct {
	Handler *handlers.Handler
	Store   repository.Store
	Redis   *redis.Client
}

// Close releases the store and redis connections
func (s *Services) Close() error {
	if s.Redis != nil {
		_ = s.Redis.Close()
	}
	return s.Store.Close()
}

// NewServices wires the store, engine, notifier and handler from cfg
func NewServices(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Services, error) {
	store, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	rdb := NewRedis(cfg.RedisAddr)

	h := &handlers.Handler{
		Store:    store,
		Engine:   staffing.NewEngine(cfg.Thresholds.Bands(), logger),
		Notifier: NewNotifier(cfg, rdb, logger),
		Defaults: cfg.Staffing(),
		Logger:   logger,
		Redis:    rdb,
	}
	return &Services{Handler: h, Store: store, Redis: rdb}, nil
}
