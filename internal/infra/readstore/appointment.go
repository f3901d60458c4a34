package readstore

import (
	"context"
	"time"

	"appointment-scheduler/internal/infra"
	"appointment-scheduler/internal/infra/db"
	"appointment-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const appointmentViewColumns = `SELECT a.id, a.owner_id, COALESCE(u.email, ''), COALESCE(u.name, ''),
	a.service_name, a.start_at, a.created_at, a.updated_at
FROM appointments a
LEFT JOIN users u ON u.id = a.owner_id`

const (
	getAppointmentByIDSQL = appointmentViewColumns + `
WHERE a.id = $1`

	getAppointmentsByOwnerSQL = appointmentViewColumns + `
WHERE a.owner_id = $1
ORDER BY a.start_at, a.id`

	getAppointmentsFirstPageSQL = appointmentViewColumns + `
ORDER BY a.start_at, a.id
LIMIT $1`

	getAppointmentsKeysetSQL = appointmentViewColumns + `
WHERE (a.start_at, a.id) > ($1, $2)
ORDER BY a.start_at, a.id
LIMIT $3`

	getAppointmentsStartingBetweenSQL = appointmentViewColumns + `
WHERE a.start_at >= $1 AND a.start_at < $2
ORDER BY a.start_at, a.id`
)

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(db db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: db}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	view, err := scanAppointmentView(r.db.QueryRow(ctx, getAppointmentByIDSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}
	return view, nil
}

func (r *AppointmentReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.AppointmentView, error) {
	return r.list(ctx, "failed to find appointments by owner", getAppointmentsByOwnerSQL, ownerID)
}

func (r *AppointmentReadStore) FindAllFirstPage(ctx context.Context, limit int32) ([]*queries.AppointmentView, error) {
	return r.list(ctx, "failed to find appointments first page", getAppointmentsFirstPageSQL, limit)
}

func (r *AppointmentReadStore) FindAllKeyset(ctx context.Context, lastStartAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.AppointmentView, error) {
	return r.list(ctx, "failed to find appointments keyset page", getAppointmentsKeysetSQL, lastStartAt, lastID, limit)
}

func (r *AppointmentReadStore) FindStartingBetween(ctx context.Context, from, to time.Time) ([]*queries.AppointmentView, error) {
	return r.list(ctx, "failed to find appointments in range", getAppointmentsStartingBetweenSQL, from, to)
}

func (r *AppointmentReadStore) list(ctx context.Context, msg, sql string, args ...any) ([]*queries.AppointmentView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	defer rows.Close()

	result := make([]*queries.AppointmentView, 0)
	for rows.Next() {
		view, err := scanAppointmentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(msg, err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return result, nil
}

func scanAppointmentView(row pgx.Row) (*queries.AppointmentView, error) {
	var v queries.AppointmentView
	err := row.Scan(&v.ID, &v.OwnerID, &v.OwnerEmail, &v.OwnerName, &v.ServiceName, &v.StartAt, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
