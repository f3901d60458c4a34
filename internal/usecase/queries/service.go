package queries

import (
	"context"

	"appointment-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

type ServiceView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Icon string    `json:"icon"`
}

// ServiceCatalog lists the offered services for selection. Booking does not
// check service names against it.
type ServiceCatalog interface {
	ListActive(ctx context.Context) ([]*ServiceView, error)
}

type ServiceReadStore interface {
	FindActive(ctx context.Context) ([]*ServiceView, error)
}

type serviceCatalogImpl struct {
	repo ServiceReadStore
}

func NewServiceCatalog(repo ServiceReadStore) ServiceCatalog {
	return &serviceCatalogImpl{repo: repo}
}

func (q *serviceCatalogImpl) ListActive(ctx context.Context) ([]*ServiceView, error) {
	rows, err := q.repo.FindActive(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if rows == nil {
		return []*ServiceView{}, nil
	}
	return rows, nil
}
