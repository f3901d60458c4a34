package bootstrap

import (
	"context"
	"log/slog"

	"appointment-scheduler/internal/infra/notify"
	"appointment-scheduler/internal/pkg/config"
	"appointment-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewNoticeDispatcher,
	),
)

// NewNoticeDispatcher drains in-flight notices on shutdown before the
// notifier's own resources are released.
func NewNoticeDispatcher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.NoticeDispatcher, error) {
	notifier, closeNotifier, err := notify.NewNotifier(cfg.Notify, logger)
	if err != nil {
		return nil, err
	}
	dispatcher := notify.NewAsyncDispatcher(notifier, cfg.Notify.Timeout, logger)
	logger.Info("owner notifications configured", "driver", cfg.Notify.Driver)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := dispatcher.Close(ctx); err != nil {
				logger.Warn("notices still in flight at shutdown", "error", err)
			}
			return closeNotifier()
		},
	})

	return dispatcher, nil
}
