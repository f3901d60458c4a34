package bootstrap

import (
	"appointment-scheduler/internal/infra/metrics"
	"appointment-scheduler/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		NewBookingMetrics,
	),
)

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// NewBookingMetrics returns nil when metrics are disabled; a nil
// *BookingMetrics records nothing.
func NewBookingMetrics(cfg config.Config, reg *prometheus.Registry) *metrics.BookingMetrics {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.NewBookingMetrics(reg, cfg.Metrics.Namespace)
}
