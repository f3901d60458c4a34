package readstore

import (
	"context"

	"appointment-scheduler/internal/infra"
	"appointment-scheduler/internal/infra/db"
	"appointment-scheduler/internal/usecase/queries"
)

const getActiveServicesSQL = `SELECT id, name, icon FROM services WHERE is_active ORDER BY name`

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(db db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: db}
}

func (r *ServiceReadStore) FindActive(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, getActiveServicesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	result := make([]*queries.ServiceView, 0)
	for rows.Next() {
		var s queries.ServiceView
		if err := rows.Scan(&s.ID, &s.Name, &s.Icon); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	return result, nil
}
