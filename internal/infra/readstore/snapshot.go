package readstore

import (
	"context"
	"time"

	"appointment-scheduler/internal/infra"
	"appointment-scheduler/internal/infra/db"
	"appointment-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	getAppointmentSnapshotSQL = `SELECT id, owner_id, service_name, start_at, created_at, updated_at
FROM appointments WHERE id = $1`

	getStartsBetweenSQL = `SELECT id, start_at FROM appointments
WHERE start_at >= $1 AND start_at < $2
ORDER BY start_at`

	windowTakenSQL = `SELECT EXISTS (
	SELECT 1 FROM appointments
	WHERE start_at >= $1 AND start_at < $2 AND id <> $3
)`
)

// SnapshotReadStore serves the write path. It runs against the pool or an
// open transaction, whichever DBTX it was built with.
type SnapshotReadStore struct {
	db db.DBTX
}

var _ shared.AppointmentReads = (*SnapshotReadStore)(nil)

func NewSnapshotReadStore(db db.DBTX) *SnapshotReadStore {
	return &SnapshotReadStore{db: db}
}

func (r *SnapshotReadStore) AppointmentByID(ctx context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	var s shared.AppointmentSnapshot
	err := r.db.QueryRow(ctx, getAppointmentSnapshotSQL, id).
		Scan(&s.ID, &s.OwnerID, &s.ServiceName, &s.StartAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load appointment", err)
	}
	return &s, nil
}

func (r *SnapshotReadStore) StartsBetween(ctx context.Context, from, to time.Time) ([]shared.BookedStart, error) {
	rows, err := r.db.Query(ctx, getStartsBetweenSQL, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked starts", err)
	}
	defer rows.Close()

	var starts []shared.BookedStart
	for rows.Next() {
		var b shared.BookedStart
		if err := rows.Scan(&b.ID, &b.StartAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked start", err)
		}
		starts = append(starts, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list booked starts", err)
	}
	return starts, nil
}

// WindowTaken passes uuid.Nil as exclude when nothing should be skipped;
// no stored row carries the nil id.
func (r *SnapshotReadStore) WindowTaken(ctx context.Context, from, to time.Time, exclude uuid.UUID) (bool, error) {
	var taken bool
	if err := r.db.QueryRow(ctx, windowTakenSQL, from, to, exclude).Scan(&taken); err != nil {
		return false, infra.WrapRepoErr("failed to check slot window", err)
	}
	return taken, nil
}
