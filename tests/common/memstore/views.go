//go:build unit || e2e

package memstore

import (
	"context"
	"sort"
	"time"

	"appointment-scheduler/internal/infra"
	"appointment-scheduler/internal/usecase/queries"
	"appointment-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

func (s *Store) OwnerByID(_ context.Context, id uuid.UUID) (*shared.OwnerSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.owners[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "owner not found")
	}
	return &shared.OwnerSnapshot{ID: o.ID, Email: o.Email, Name: o.Name}, nil
}

func (s *Store) OwnerByEmail(_ context.Context, email string) (*shared.OwnerSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.owners {
		if o.Email == email {
			return &shared.OwnerSnapshot{ID: o.ID, Email: o.Email, Name: o.Name}, nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "owner not found")
}

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "appointment not found")
	}
	return s.view(r.snap), nil
}

func (s *Store) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*queries.AppointmentView, error) {
	return s.filter(func(a shared.AppointmentSnapshot) bool { return a.OwnerID == ownerID }, 0), nil
}

func (s *Store) FindAllFirstPage(_ context.Context, limit int32) ([]*queries.AppointmentView, error) {
	return s.filter(func(shared.AppointmentSnapshot) bool { return true }, int(limit)), nil
}

func (s *Store) FindAllKeyset(_ context.Context, lastStartAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.AppointmentView, error) {
	return s.filter(func(a shared.AppointmentSnapshot) bool {
		if a.StartAt.Equal(lastStartAt) {
			return a.ID.String() > lastID.String()
		}
		return a.StartAt.After(lastStartAt)
	}, int(limit)), nil
}

func (s *Store) FindStartingBetween(_ context.Context, from, to time.Time) ([]*queries.AppointmentView, error) {
	return s.filter(func(a shared.AppointmentSnapshot) bool {
		return !a.StartAt.Before(from) && a.StartAt.Before(to)
	}, 0), nil
}

// filter returns matches ordered by (start_at, id); limit 0 means all.
func (s *Store) filter(keep func(shared.AppointmentSnapshot) bool, limit int) []*queries.AppointmentView {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*queries.AppointmentView, 0)
	for _, r := range s.rows {
		if keep(r.snap) {
			out = append(out, s.view(r.snap))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartAt.Equal(out[j].StartAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].StartAt.Before(out[j].StartAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *Store) view(a shared.AppointmentSnapshot) *queries.AppointmentView {
	o := s.owners[a.OwnerID]
	return &queries.AppointmentView{
		ID:          a.ID,
		OwnerID:     a.OwnerID,
		OwnerEmail:  o.Email,
		OwnerName:   o.Name,
		ServiceName: a.ServiceName,
		StartAt:     a.StartAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
