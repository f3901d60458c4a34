package bootstrap

import (
	"context"
	"log/slog"

	"appointment-scheduler/internal/infra/db"
	"appointment-scheduler/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.DB.AutoMigrate {
		if err := db.Migrate(cfg.DB); err != nil {
			return nil, err
		}
	} else {
		logger.Info("automatic migrations disabled")
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
