package components

import (
	"context"
	"fmt"
	"log/slog"

	"click-collect/internal/infra/db"
	"click-collect/internal/infra/memstore"
	"click-collect/internal/infra/mongostore"
	"click-collect/internal/infra/postgres"
	sqlc "click-collect/internal/infra/sqlc/generated"
	"click-collect/internal/pkg/config"
	"click-collect/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork opens the configured backend. The memory fallback is
// taken only when STORAGE_FALLBACK_MEMORY is set.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config) (shared.UnitOfWork, error) {
	uow, cleanup, err := openBackend(context.Background(), cfg)
	if err != nil {
		if !cfg.Storage.FallbackToMemory {
			return nil, err
		}
		slog.Warn("storage backend unreachable, serving from memory; data will not survive a restart",
			"backend", cfg.Storage.Backend, "error", err.Error())
		return memstore.NewUoW(memstore.New()), nil
	}
	if cleanup != nil {
		lc.Append(fx.StopHook(cleanup))
	}
	slog.Info("storage backend ready", "backend", cfg.Storage.Backend)
	return uow, nil
}

func openBackend(ctx context.Context, cfg config.Config) (shared.UnitOfWork, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pool, cleanup, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewUoW(pool, sqlc.New()), cleanup, nil

	case config.BackendMongo:
		client, database, cleanup, err := mongostore.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		if err := mongostore.EnsureIndexes(ctx, database); err != nil {
			cleanup()
			return nil, nil, err
		}
		return mongostore.NewUoW(client, database), cleanup, nil

	case config.BackendMemory:
		return memstore.NewUoW(memstore.New()), nil, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Storage.Backend)
	}
}
