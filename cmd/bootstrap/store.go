package bootstrap

import (
	"context"
	"log/slog"

	"event-sync-service/internal/infra/kvstore"
	"event-sync-service/internal/pkg/config"
	"event-sync-service/internal/pkg/errs"
	"event-sync-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

var ErrUnknownStoreBackend = errs.New("unknown store backend")

// NewStore opens the configured backend and closes it on shutdown.
func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.KeyValueStore, error) {
	ctx := context.Background()
	logger = logger.With("component", "kvstore", "backend", cfg.Store.Backend)

	var (
		store   shared.KeyValueStore
		cleanup func() error
	)
	switch cfg.Store.Backend {
	case config.StoreBackendSQLite:
		s, err := kvstore.OpenSQLite(ctx, cfg.Store.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		store, cleanup = s, s.Close
	case config.StoreBackendPostgres:
		s, err := kvstore.ConnectPostgres(ctx, cfg.DB.BuildDSN(), logger)
		if err != nil {
			return nil, err
		}
		store, cleanup = s, func() error { s.Close(); return nil }
	case config.StoreBackendRedis:
		s, err := kvstore.ConnectRedis(ctx, cfg.Redis.URL, logger)
		if err != nil {
			return nil, err
		}
		store, cleanup = s, s.Close
	case config.StoreBackendMemory:
		store = kvstore.NewMemoryStore(logger)
	default:
		return nil, errs.Wrapf(ErrUnknownStoreBackend, "%q", cfg.Store.Backend)
	}

	logger.Info("offline store ready")
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
	})
	return store, nil
}
