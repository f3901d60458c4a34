package repository

import (
	"context"

	"appointment-scheduler/internal/domain/appointment"
	"appointment-scheduler/internal/infra"
	"appointment-scheduler/internal/infra/db"
	"appointment-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	insertAppointmentSQL = `INSERT INTO appointments (id, owner_id, service_name, start_at, slot_date, slot_time, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5::date, $6, $7, $8)`

	rescheduleAppointmentSQL = `UPDATE appointments
SET service_name = $2, start_at = $3, slot_date = $4::date, slot_time = $5, updated_at = $6
WHERE id = $1`

	renameAppointmentSQL = `UPDATE appointments SET service_name = $2, updated_at = $3 WHERE id = $1`

	deleteAppointmentSQL = `DELETE FROM appointments WHERE id = $1`
)

// AppointmentRepository writes appointments. A taken (slot_date, slot_time)
// pair surfaces as infra.KindConflict.
type AppointmentRepository struct {
	db db.DBTX
}

func NewAppointmentRepository(db db.DBTX) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment, key shared.SlotKey) error {
	_, err := r.db.Exec(ctx, insertAppointmentSQL,
		a.ID(),
		a.OwnerID(),
		a.ServiceName().Value(),
		a.StartAt(),
		key.Date.String(),
		string(key.Slot),
		a.CreatedAt(),
		a.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) Reschedule(ctx context.Context, a *appointment.Appointment, key shared.SlotKey) error {
	tag, err := r.db.Exec(ctx, rescheduleAppointmentSQL,
		a.ID(),
		a.ServiceName().Value(),
		a.StartAt(),
		key.Date.String(),
		string(key.Slot),
		a.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "appointment not found")
	}
	return nil
}

func (r *AppointmentRepository) Rename(ctx context.Context, a *appointment.Appointment) error {
	tag, err := r.db.Exec(ctx, renameAppointmentSQL, a.ID(), a.ServiceName().Value(), a.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to rename appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "appointment not found")
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteAppointmentSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "appointment not found")
	}
	return nil
}
