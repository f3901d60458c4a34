package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"appointment-scheduler/internal/domain/appointment"
	"appointment-scheduler/internal/domain/calendar"
	"appointment-scheduler/internal/domain/user"
	"appointment-scheduler/internal/infra"
	"appointment-scheduler/internal/infra/metrics"
	"appointment-scheduler/internal/pkg/clock"
	"appointment-scheduler/internal/pkg/errs"
	"appointment-scheduler/internal/pkg/patch"
	"appointment-scheduler/internal/usecase/queries"
	"appointment-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var commandTracer = otel.Tracer("appointment-scheduler/commands")

type CreateAppointmentInput struct {
	Actor       user.Actor
	OwnerID     uuid.UUID
	ServiceName string
	Date        string
	Time        string
}

// CreateForOwnerInput books on behalf of the user registered under OwnerEmail.
type CreateForOwnerInput struct {
	OwnerEmail  string
	ServiceName string
	Date        string
	Time        string
}

// UpdateAppointmentInput changes only the supplied fields. A missing date or
// time keeps the one the appointment already holds.
type UpdateAppointmentInput struct {
	Actor       user.Actor
	ID          uuid.UUID
	ServiceName *string
	Date        *string
	Time        *string
}

type CancelResult struct {
	AppointmentID    uuid.UUID
	CancelledByAdmin bool
}

type AppointmentCommands interface {
	Create(ctx context.Context, in CreateAppointmentInput) (*queries.AppointmentView, error)
	CreateForOwner(ctx context.Context, actor user.Actor, in CreateForOwnerInput) (*queries.AppointmentView, error)
	Update(ctx context.Context, in UpdateAppointmentInput) (*queries.AppointmentView, error)
	Cancel(ctx context.Context, actor user.Actor, id uuid.UUID) (*CancelResult, error)
	Complete(ctx context.Context, actor user.Actor, id uuid.UUID) error
}

type appointmentCommandsImpl struct {
	uow          shared.UnitOfWork
	cal          *calendar.BusinessCalendar
	availability queries.AvailabilityQueries
	appointments queries.AppointmentQueries
	owners       shared.OwnerDirectory
	locker       shared.SlotLocker
	notices      shared.NoticeDispatcher
	factory      *appointment.Factory
	clock        clock.Clock
	metrics      *metrics.BookingMetrics
	logger       *slog.Logger
}

func NewAppointmentCommands(
	uow shared.UnitOfWork,
	cal *calendar.BusinessCalendar,
	availability queries.AvailabilityQueries,
	appointments queries.AppointmentQueries,
	owners shared.OwnerDirectory,
	locker shared.SlotLocker,
	notices shared.NoticeDispatcher,
	factory *appointment.Factory,
	clock clock.Clock,
	m *metrics.BookingMetrics,
	logger *slog.Logger,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		uow:          uow,
		cal:          cal,
		availability: availability,
		appointments: appointments,
		owners:       owners,
		locker:       locker,
		notices:      notices,
		factory:      factory,
		clock:        clock,
		metrics:      m,
		logger:       logger,
	}
}

type slotRequest struct {
	date calendar.Date
	time calendar.TimeOfDay
}

func (c *appointmentCommandsImpl) Create(ctx context.Context, in CreateAppointmentInput) (*queries.AppointmentView, error) {
	ctx, span := commandTracer.Start(ctx, "appointment.create")
	defer span.End()
	started := time.Now()

	if !in.Actor.CanManage(in.OwnerID) {
		return nil, errs.ErrForbidden
	}

	if _, err := appointment.NewServiceName(in.ServiceName); err != nil {
		return nil, errs.NewInputError(err.Error())
	}
	req, err := parseSlot(in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if err := c.requireOnGrid(req.time); err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("appointment.date", req.date.String()),
		attribute.String("appointment.time", req.time.String()),
	)

	c.logger.InfoContext(ctx, "appointment create requested",
		slog.String("actor_id", in.Actor.ID.String()),
		slog.String("owner_id", in.OwnerID.String()),
		slog.String("date", req.date.String()),
		slog.String("time", req.time.String()))

	if err := c.availability.ValidateSlot(ctx, req.date, req.time); err != nil {
		return nil, err
	}

	appt, err := c.factory.Create(in.OwnerID, in.ServiceName, c.cal.At(req.date, req.time))
	if err != nil {
		return nil, errs.NewInputError(err.Error())
	}

	key := shared.SlotKey{Date: req.date, Slot: req.time.Slot()}
	err = c.commitGuarded(ctx, appt, key, func(ctx context.Context, repo shared.AppointmentRepository) error {
		return repo.Create(ctx, appt, key)
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	c.metrics.ObserveMutation("create", started)
	c.logger.InfoContext(ctx, "appointment created",
		slog.String("appointment_id", appt.ID().String()),
		slog.String("owner_id", in.OwnerID.String()),
		slog.String("service", appt.ServiceName().Value()),
		slog.String("slot", key.String()))

	return c.readBack(ctx, appt)
}

func (c *appointmentCommandsImpl) CreateForOwner(ctx context.Context, actor user.Actor, in CreateForOwnerInput) (*queries.AppointmentView, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	email, err := user.NewEmail(in.OwnerEmail)
	if err != nil {
		return nil, errs.NewInputError("a valid owner email is required")
	}

	owner, err := c.owners.OwnerByEmail(ctx, email.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.logger.InfoContext(ctx, "booking for unknown owner",
				slog.String("actor_id", actor.ID.String()),
				slog.String("owner_email", email.Masked()))
			return nil, errs.ErrOwnerNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.Create(ctx, CreateAppointmentInput{
		Actor:       actor,
		OwnerID:     owner.ID,
		ServiceName: in.ServiceName,
		Date:        in.Date,
		Time:        in.Time,
	})
}

func (c *appointmentCommandsImpl) Update(ctx context.Context, in UpdateAppointmentInput) (*queries.AppointmentView, error) {
	ctx, span := commandTracer.Start(ctx, "appointment.update")
	defer span.End()
	started := time.Now()

	appt, err := c.load(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if !in.Actor.CanManage(appt.OwnerID()) {
		c.logger.WarnContext(ctx, "unauthorized appointment update",
			slog.String("appointment_id", in.ID.String()),
			slog.String("actor_id", in.Actor.ID.String()),
			slog.String("role", in.Actor.Role.String()))
		return nil, errs.ErrForbidden
	}

	held := slotRequest{date: c.cal.LocalDate(appt.StartAt()), time: c.cal.LocalTime(appt.StartAt())}
	target, err := c.resolveTarget(held, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	oldStart, oldService := appt.StartAt(), appt.ServiceName().Value()
	now := c.clock.Now()

	renamed := false
	if in.ServiceName != nil {
		name, err := appointment.NewServiceName(*in.ServiceName)
		if err != nil {
			return nil, errs.NewInputError(err.Error())
		}
		renamed = name != appt.ServiceName()
		appt.Rename(name, now)
	}

	// Re-submitting the held date and time is always legal and skips validation.
	moving := target != held
	switch {
	case moving:
		if err := c.requireOnGrid(target.time); err != nil {
			return nil, err
		}
		if err := c.availability.ValidateReschedule(ctx, target.date, target.time, appt.ID()); err != nil {
			return nil, err
		}
		appt.Reschedule(c.cal.At(target.date, target.time), now)
		key := shared.SlotKey{Date: target.date, Slot: target.time.Slot()}
		err = c.commitGuarded(ctx, appt, key, func(ctx context.Context, repo shared.AppointmentRepository) error {
			return repo.Reschedule(ctx, appt, key)
		})
	case renamed:
		err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Appointments().Rename(ctx, appt)
		})
		err = c.translateWriteErr(ctx, err, shared.SlotKey{Date: held.date, Slot: held.time.Slot()})
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if moving || renamed {
		c.metrics.ObserveMutation("update", started)
		c.logger.InfoContext(ctx, "appointment updated",
			slog.String("appointment_id", appt.ID().String()),
			slog.String("actor_id", in.Actor.ID.String()),
			slog.Time("old_start_at", oldStart),
			slog.Time("new_start_at", appt.StartAt()),
			slog.String("old_service", oldService),
			slog.String("new_service", appt.ServiceName().Value()))
	}

	return c.readBack(ctx, appt)
}

func (c *appointmentCommandsImpl) Cancel(ctx context.Context, actor user.Actor, id uuid.UUID) (*CancelResult, error) {
	ctx, span := commandTracer.Start(ctx, "appointment.cancel")
	defer span.End()
	started := time.Now()

	appt, err := c.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(appt.OwnerID()) {
		c.logger.WarnContext(ctx, "unauthorized appointment cancellation",
			slog.String("appointment_id", id.String()),
			slog.String("actor_id", actor.ID.String()))
		return nil, errs.ErrForbidden
	}

	if err := c.remove(ctx, id); err != nil {
		span.RecordError(err)
		return nil, err
	}

	byAdmin := !appt.IsOwnedBy(actor.ID)
	c.metrics.ObserveMutation("cancel", started)
	c.logger.InfoContext(ctx, "appointment cancelled",
		slog.String("appointment_id", id.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.Bool("cancelled_by_admin", byAdmin))

	if byAdmin {
		c.notifyOwner(ctx, appointment.OutcomeCancelled, appt)
	}

	return &CancelResult{AppointmentID: id, CancelledByAdmin: byAdmin}, nil
}

func (c *appointmentCommandsImpl) Complete(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	ctx, span := commandTracer.Start(ctx, "appointment.complete")
	defer span.End()
	started := time.Now()

	if !actor.IsAdmin() {
		c.logger.WarnContext(ctx, "non-admin tried to complete appointment",
			slog.String("appointment_id", id.String()),
			slog.String("actor_id", actor.ID.String()))
		return errs.ErrForbidden
	}

	appt, err := c.load(ctx, id)
	if err != nil {
		return err
	}
	if err := c.remove(ctx, id); err != nil {
		span.RecordError(err)
		return err
	}

	c.metrics.ObserveMutation("complete", started)
	c.logger.InfoContext(ctx, "appointment completed",
		slog.String("appointment_id", id.String()),
		slog.String("actor_id", actor.ID.String()))

	c.notifyOwner(ctx, appointment.OutcomeCompleted, appt)
	return nil
}

// commitGuarded runs the final, race-safe part of a booking: slot lock, window
// re-check and the write itself, all inside one transaction.
func (c *appointmentCommandsImpl) commitGuarded(
	ctx context.Context,
	appt *appointment.Appointment,
	key shared.SlotKey,
	write func(ctx context.Context, repo shared.AppointmentRepository) error,
) error {
	unlock, err := c.locker.Lock(ctx, key)
	if err != nil {
		if errs.Is(err, shared.ErrSlotLocked) {
			return c.alreadyBooked(ctx, key, "slot lock held elsewhere")
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer unlock()

	from, to := appt.Window(c.cal.Interval())
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, err := tx.Reads().WindowTaken(ctx, from, to, appt.ID())
		if err != nil {
			return err
		}
		if taken {
			return errs.NewUnavailable(errs.ReasonAlreadyBooked)
		}
		return write(ctx, tx.Appointments())
	})
	return c.translateWriteErr(ctx, err, key)
}

func (c *appointmentCommandsImpl) translateWriteErr(ctx context.Context, err error, key shared.SlotKey) error {
	if err == nil {
		return nil
	}
	if ue, ok := errs.AsUnavailable(err); ok {
		c.metrics.ObserveRejection(string(ue.Reason))
		c.logger.InfoContext(ctx, "slot taken during commit", slog.String("slot", key.String()))
		return ue
	}
	if infra.IsKind(err, infra.KindConflict) {
		return c.alreadyBooked(ctx, key, "unique slot constraint")
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.ErrAppointmentNotFound
	}
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return errs.ErrOwnerNotFound
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func (c *appointmentCommandsImpl) alreadyBooked(ctx context.Context, key shared.SlotKey, cause string) error {
	c.metrics.ObserveRejection(string(errs.ReasonAlreadyBooked))
	c.logger.InfoContext(ctx, "booking lost race",
		slog.String("slot", key.String()),
		slog.String("cause", cause))
	return errs.NewUnavailable(errs.ReasonAlreadyBooked)
}

func (c *appointmentCommandsImpl) remove(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Appointments().Delete(ctx, id)
	})
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.ErrAppointmentNotFound
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func (c *appointmentCommandsImpl) load(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	snap, err := c.uow.Reads().AppointmentByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap.ToDomain(), nil
}

// Read-after-write: the view carries owner details the write side does not hold.
// The write is already committed, so a failed read degrades to a view built
// from the aggregate instead of failing the request.
func (c *appointmentCommandsImpl) readBack(ctx context.Context, appt *appointment.Appointment) (*queries.AppointmentView, error) {
	view, err := c.appointments.GetByIDSystem(ctx, appt.ID())
	if err == nil {
		return view, nil
	}

	c.logger.WarnContext(ctx, "read-back after commit failed, returning partial view",
		slog.String("appointment_id", appt.ID().String()),
		slog.String("error", err.Error()))
	startAt := appt.StartAt().In(c.cal.Location())
	return &queries.AppointmentView{
		ID:          appt.ID(),
		OwnerID:     appt.OwnerID(),
		ServiceName: appt.ServiceName().Value(),
		StartAt:     startAt,
		Date:        c.cal.LocalDate(startAt).String(),
		Time:        c.cal.LocalTime(startAt).String(),
		CreatedAt:   appt.CreatedAt(),
		UpdatedAt:   appt.UpdatedAt(),
	}, nil
}

// notifyOwner never fails the mutation; a missing owner only skips the notice.
func (c *appointmentCommandsImpl) notifyOwner(ctx context.Context, outcome appointment.Outcome, appt *appointment.Appointment) {
	owner, err := c.owners.OwnerByID(ctx, appt.OwnerID())
	if err != nil {
		c.logger.WarnContext(ctx, "owner lookup failed, notice skipped",
			slog.String("appointment_id", appt.ID().String()),
			slog.String("outcome", outcome.String()),
			slog.String("error", err.Error()))
		return
	}

	c.notices.Dispatch(ctx, shared.Notice{
		Outcome:       outcome,
		AppointmentID: appt.ID(),
		OwnerEmail:    owner.Email,
		OwnerName:     owner.Name,
		ServiceName:   appt.ServiceName().Value(),
		StartAt:       appt.StartAt(),
		Date:          c.cal.LocalDate(appt.StartAt()).String(),
		Time:          c.cal.LocalTime(appt.StartAt()).String(),
	})
}

// resolveTarget fills an omitted date or time from the held slot.
func (c *appointmentCommandsImpl) resolveTarget(held slotRequest, date, tm *string) (slotRequest, error) {
	return parseSlot(
		patch.Coalesce(date, held.date.String()),
		patch.Coalesce(tm, held.time.String()),
	)
}

func (c *appointmentCommandsImpl) requireOnGrid(t calendar.TimeOfDay) error {
	if c.cal.IsOnGrid(t) {
		return nil
	}
	return errs.NewInputError(fmt.Sprintf(
		"time %s is not a slot start: slots start every %d minutes from %s",
		t, c.cal.IntervalMinutes(), c.cal.Open()))
}

func parseSlot(date, tm string) (slotRequest, error) {
	date, tm = strings.TrimSpace(date), strings.TrimSpace(tm)
	if date == "" || tm == "" {
		return slotRequest{}, errs.NewInputError("date and time are required")
	}
	d, err := calendar.ParseDate(date)
	if err != nil {
		return slotRequest{}, errs.NewInputError("invalid date, expected YYYY-MM-DD")
	}
	t, err := calendar.ParseTimeOfDay(tm)
	if err != nil {
		return slotRequest{}, errs.NewInputError("invalid time, expected HH:MM")
	}
	return slotRequest{date: d, time: t}, nil
}
