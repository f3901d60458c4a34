package bootstrap

import (
	"fmt"

	"appointment-scheduler/internal/domain/calendar"
	"appointment-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBusinessCalendar,
	),
)

// NewBusinessCalendar validates the BUSINESS_* settings once at startup; a bad
// calendar stops the process before it serves a request.
func NewBusinessCalendar(cfg config.Config) (*calendar.BusinessCalendar, error) {
	b := cfg.Business
	breaks := make([]calendar.BreakSpec, 0, len(b.Breaks))
	for _, raw := range b.Breaks {
		if raw == "" {
			continue
		}
		spec, err := calendar.ParseBreak(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid BUSINESS_BREAKS: %w", err)
		}
		breaks = append(breaks, spec)
	}

	cal, err := calendar.New(calendar.Options{
		Open:            b.OpenTime,
		Close:           b.CloseTime,
		IntervalMinutes: b.IntervalMinutes,
		WorkingDays:     b.WorkingDays,
		Breaks:          breaks,
		TimeZone:        b.TimeZone,
		CloseInclusive:  b.CloseInclusive,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid business calendar: %w", err)
	}
	return cal, nil
}
