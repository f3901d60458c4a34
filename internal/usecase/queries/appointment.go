package queries

import (
	"context"
	"time"

	"appointment-scheduler/internal/domain/calendar"
	"appointment-scheduler/internal/domain/user"
	"appointment-scheduler/internal/infra"
	"appointment-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type AppointmentView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	OwnerEmail  string    `json:"owner_email"`
	OwnerName   string    `json:"owner_name"`
	ServiceName string    `json:"service_name"`
	StartAt     time.Time `json:"start_at"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BookedSlotView is what any signed-in user may see about someone else's booking.
type BookedSlotView struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	ServiceName   string    `json:"service_name"`
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*AppointmentView, error)
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListMine(ctx context.Context, actor user.Actor) ([]*AppointmentView, error)
	ListAll(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*AppointmentView, *Cursor, error)
	ListBookedOn(ctx context.Context, d calendar.Date) ([]*BookedSlotView, error)
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*AppointmentView, error)
	FindAllFirstPage(ctx context.Context, limit int32) ([]*AppointmentView, error)
	FindAllKeyset(ctx context.Context, lastStartAt time.Time, lastID uuid.UUID, limit int32) ([]*AppointmentView, error)
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	cal  *calendar.BusinessCalendar
	repo AppointmentReadStore
}

func NewAppointmentQueries(cal *calendar.BusinessCalendar, repo AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{cal: cal, repo: repo}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(view.OwnerID) {
		// Someone else's appointment looks the same as a missing one.
		return nil, errs.ErrAppointmentNotFound
	}
	return view, nil
}

func (q *appointmentQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return q.localize(view), nil
}

func (q *appointmentQueriesImpl) ListMine(ctx context.Context, actor user.Actor) ([]*AppointmentView, error) {
	rows, err := q.repo.FindByOwner(ctx, actor.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return q.localizeAll(rows), nil
}

func (q *appointmentQueriesImpl) ListAll(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*AppointmentView, *Cursor, error) {
	if !actor.IsAdmin() {
		return nil, nil, errs.ErrForbidden
	}

	limit = ValidateLimit(limit)
	var rows []*AppointmentView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindAllFirstPage(ctx, int32(limit+1))
	} else {
		lastStartAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindAllKeyset(ctx, lastStartAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.StartAt, last.ID)}
		rows = rows[:limit]
	}
	return q.localizeAll(rows), next, nil
}

func (q *appointmentQueriesImpl) ListBookedOn(ctx context.Context, d calendar.Date) ([]*BookedSlotView, error) {
	from, to := q.cal.DayBounds(d)
	rows, err := q.repo.FindStartingBetween(ctx, from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	booked := make([]*BookedSlotView, 0, len(rows))
	for _, row := range rows {
		_, slot := q.cal.SlotAt(row.StartAt)
		booked = append(booked, &BookedSlotView{
			AppointmentID: row.ID,
			Date:          d.String(),
			Time:          string(slot),
			ServiceName:   row.ServiceName,
		})
	}
	return booked, nil
}

// localize fills the business-local date and wall-clock time of the view.
func (q *appointmentQueriesImpl) localize(v *AppointmentView) *AppointmentView {
	v.StartAt = v.StartAt.In(q.cal.Location())
	v.Date = q.cal.LocalDate(v.StartAt).String()
	v.Time = q.cal.LocalTime(v.StartAt).String()
	return v
}

func (q *appointmentQueriesImpl) localizeAll(rows []*AppointmentView) []*AppointmentView {
	for _, r := range rows {
		q.localize(r)
	}
	if rows == nil {
		return []*AppointmentView{}
	}
	return rows
}
