package readstore

import (
	"context"

	"appointment-scheduler/internal/domain/user"
	"appointment-scheduler/internal/infra"
	"appointment-scheduler/internal/infra/db"
	"appointment-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	getOwnerByIDSQL    = `SELECT id, email, name, role FROM users WHERE id = $1`
	getOwnerByEmailSQL = `SELECT id, email, name, role FROM users WHERE email = $1`
)

type OwnerReadStore struct {
	db db.DBTX
}

var _ shared.OwnerDirectory = (*OwnerReadStore)(nil)

func NewOwnerReadStore(db db.DBTX) *OwnerReadStore {
	return &OwnerReadStore{db: db}
}

func (r *OwnerReadStore) OwnerByID(ctx context.Context, id uuid.UUID) (*shared.OwnerSnapshot, error) {
	o, err := scanOwner(r.db.QueryRow(ctx, getOwnerByIDSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find owner by ID", err)
	}
	return o, nil
}

// OwnerByEmail expects an already normalized address.
func (r *OwnerReadStore) OwnerByEmail(ctx context.Context, email string) (*shared.OwnerSnapshot, error) {
	o, err := scanOwner(r.db.QueryRow(ctx, getOwnerByEmailSQL, email))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find owner by email", err)
	}
	return o, nil
}

// Rows are rebuilt as user.User so a corrupt email or role surfaces here
// instead of in a notification.
func scanOwner(row pgx.Row) (*shared.OwnerSnapshot, error) {
	var (
		id                 uuid.UUID
		email, name, roleS string
	)
	if err := row.Scan(&id, &email, &name, &roleS); err != nil {
		return nil, err
	}
	u, err := user.Reconstruct(id, email, name, user.Role(roleS))
	if err != nil {
		return nil, err
	}
	return &shared.OwnerSnapshot{
		ID:    u.ID(),
		Email: u.Email().Value(),
		Name:  u.DisplayName(),
	}, nil
}
