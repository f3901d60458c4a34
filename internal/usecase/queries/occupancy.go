package queries

import (
	"context"

	"appointment-scheduler/internal/domain/calendar"
	"appointment-scheduler/internal/pkg/errs"
	"appointment-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// Reconciler maps stored appointment instants onto the slot grid of a day.
type Reconciler struct {
	cal   *calendar.BusinessCalendar
	reads shared.AppointmentReads
}

func NewReconciler(cal *calendar.BusinessCalendar, reads shared.AppointmentReads) *Reconciler {
	return &Reconciler{cal: cal, reads: reads}
}

// OccupiedSlots returns the slots of d holding at least one appointment.
// Off-grid legacy rows are floored into the slot they started in.
func (r *Reconciler) OccupiedSlots(ctx context.Context, d calendar.Date) (map[calendar.Slot]struct{}, error) {
	return r.occupied(ctx, d, uuid.Nil)
}

// OccupiedSlotsExcluding ignores one appointment, so a reschedule never collides with itself.
func (r *Reconciler) OccupiedSlotsExcluding(ctx context.Context, d calendar.Date, exclude uuid.UUID) (map[calendar.Slot]struct{}, error) {
	return r.occupied(ctx, d, exclude)
}

func (r *Reconciler) occupied(ctx context.Context, d calendar.Date, exclude uuid.UUID) (map[calendar.Slot]struct{}, error) {
	from, to := r.cal.DayBounds(d)

	starts, err := r.reads.StartsBetween(ctx, from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	occupied := make(map[calendar.Slot]struct{}, len(starts))
	for _, s := range starts {
		if exclude != uuid.Nil && s.ID == exclude {
			continue
		}
		occupied[r.cal.SlotOf(r.cal.LocalTime(s.StartAt))] = struct{}{}
	}
	return occupied, nil
}
