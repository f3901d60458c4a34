package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"appointment-scheduler/internal/infra/lock"
	"appointment-scheduler/internal/pkg/config"
	"appointment-scheduler/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewSlotLocker,
	),
)

// NewSlotLocker returns a no-op locker when REDIS_ADDR is empty. An unreachable
// Redis is only logged: the locker fails open and the database still rejects
// double bookings.
func NewSlotLocker(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.SlotLocker {
	if cfg.Redis.Addr == "" {
		logger.Info("slot lock disabled: REDIS_ADDR not set")
		return lock.NoopSlotLocker{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()
			if err := rdb.Ping(pingCtx).Err(); err != nil {
				logger.Warn("redis unreachable, slot lock will fail open", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return lock.NewRedisSlotLocker(rdb, cfg.Redis, logger)
}
