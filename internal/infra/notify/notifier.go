package notify

import (
	"log/slog"

	"appointment-scheduler/internal/pkg/config"
	"appointment-scheduler/internal/pkg/errs"
	"appointment-scheduler/internal/usecase/shared"
)

const (
	DriverLog      = "log"
	DriverSendGrid = "sendgrid"
	DriverKafka    = "kafka"
)

// NewNotifier picks the delivery channel named by cfg.Driver. The returned
// close func releases driver resources.
func NewNotifier(cfg config.NotifyConfig, logger *slog.Logger) (shared.Notifier, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Driver {
	case "", DriverLog:
		return NewLogNotifier(logger), noop, nil
	case DriverSendGrid:
		if cfg.SendGridAPIKey == "" {
			return nil, nil, errs.New("notify: SENDGRID_API_KEY is required for the sendgrid driver")
		}
		return NewSendGridNotifier(cfg, logger), noop, nil
	case DriverKafka:
		if len(cfg.KafkaBrokers) == 0 {
			return nil, nil, errs.New("notify: KAFKA_BROKERS is required for the kafka driver")
		}
		k := NewKafkaNotifier(cfg)
		return k, k.Close, nil
	default:
		return nil, nil, errs.Newf("notify: unknown driver %q", cfg.Driver)
	}
}
