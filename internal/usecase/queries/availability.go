package queries

import (
	"context"
	"log/slog"

	"appointment-scheduler/internal/domain/calendar"
	"appointment-scheduler/internal/infra/metrics"
	"appointment-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var availabilityTracer = otel.Tracer("appointment-scheduler/availability")

type AvailabilityQueries interface {
	// AvailableSlots lists the free slots of d in generation order; empty on non-working days.
	AvailableSlots(ctx context.Context, d calendar.Date) ([]calendar.Slot, error)
	// ValidateSlot returns nil or an *errs.UnavailableError carrying the first failing reason.
	ValidateSlot(ctx context.Context, d calendar.Date, t calendar.TimeOfDay) error
	// ValidateReschedule is ValidateSlot with the appointment's own booking ignored.
	ValidateReschedule(ctx context.Context, d calendar.Date, t calendar.TimeOfDay, appointmentID uuid.UUID) error
	Calendar() CalendarView
}

type availabilityQueriesImpl struct {
	cal        *calendar.BusinessCalendar
	reconciler *Reconciler
	metrics    *metrics.BookingMetrics
	logger     *slog.Logger
}

func NewAvailabilityQueries(
	cal *calendar.BusinessCalendar,
	reconciler *Reconciler,
	m *metrics.BookingMetrics,
	logger *slog.Logger,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		cal:        cal,
		reconciler: reconciler,
		metrics:    m,
		logger:     logger,
	}
}

func (q *availabilityQueriesImpl) AvailableSlots(ctx context.Context, d calendar.Date) ([]calendar.Slot, error) {
	ctx, span := availabilityTracer.Start(ctx, "availability.slots")
	defer span.End()
	span.SetAttributes(attribute.String("appointment.date", d.String()))
	q.metrics.ObserveLookup("available_slots")

	if !q.cal.IsWorkingDay(d) {
		return []calendar.Slot{}, nil
	}

	occupied, err := q.reconciler.OccupiedSlots(ctx, d)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	all := q.cal.GenerateDaySlots()
	free := make([]calendar.Slot, 0, len(all))
	for _, s := range all {
		if _, taken := occupied[s]; !taken {
			free = append(free, s)
		}
	}
	return free, nil
}

func (q *availabilityQueriesImpl) ValidateSlot(ctx context.Context, d calendar.Date, t calendar.TimeOfDay) error {
	return q.validate(ctx, d, t, uuid.Nil)
}

func (q *availabilityQueriesImpl) ValidateReschedule(ctx context.Context, d calendar.Date, t calendar.TimeOfDay, appointmentID uuid.UUID) error {
	return q.validate(ctx, d, t, appointmentID)
}

// Checks run cheapest first and the first failure wins.
func (q *availabilityQueriesImpl) validate(ctx context.Context, d calendar.Date, t calendar.TimeOfDay, exclude uuid.UUID) error {
	ctx, span := availabilityTracer.Start(ctx, "availability.validate")
	defer span.End()
	span.SetAttributes(
		attribute.String("appointment.date", d.String()),
		attribute.String("appointment.time", t.String()),
	)
	q.metrics.ObserveLookup("validate")

	if !q.cal.IsWorkingDay(d) {
		return q.reject(ctx, d, t, errs.ReasonNonWorkingDay)
	}
	if !q.cal.IsWithinBusinessHours(t) {
		return q.reject(ctx, d, t, errs.ReasonOutsideHours)
	}
	if q.cal.IsDuringBreak(t) {
		return q.reject(ctx, d, t, errs.ReasonBreakPeriod)
	}

	occupied, err := q.reconciler.OccupiedSlotsExcluding(ctx, d, exclude)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if _, taken := occupied[t.Slot()]; taken {
		return q.reject(ctx, d, t, errs.ReasonAlreadyBooked)
	}
	return nil
}

func (q *availabilityQueriesImpl) reject(ctx context.Context, d calendar.Date, t calendar.TimeOfDay, reason errs.UnavailableReason) error {
	q.metrics.ObserveRejection(string(reason))
	q.logger.DebugContext(ctx, "slot rejected",
		slog.String("date", d.String()),
		slog.String("time", t.String()),
		slog.String("reason", string(reason)))
	return errs.NewUnavailable(reason)
}

func (q *availabilityQueriesImpl) Calendar() CalendarView {
	return DescribeCalendar(q.cal)
}
