//go:build unit || e2e

// Package memstore is an in-memory stand-in for the Postgres unit of work.
// Transactions are serialized and roll back on error; the slot key is unique
// exactly like the appointments_slot_unique constraint.
package memstore

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"appointment-scheduler/internal/domain/appointment"
	"appointment-scheduler/internal/infra"
	"appointment-scheduler/internal/usecase/queries"
	"appointment-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type row struct {
	snap shared.AppointmentSnapshot
	key  string
}

type Owner struct {
	ID    uuid.UUID
	Email string
	Name  string
}

type Store struct {
	mu     sync.Mutex
	rows   map[uuid.UUID]row
	keys   map[string]uuid.UUID
	owners map[uuid.UUID]Owner
}

var (
	_ shared.UnitOfWork            = (*Store)(nil)
	_ shared.OwnerDirectory        = (*Store)(nil)
	_ queries.AppointmentReadStore = (*Store)(nil)
)

func New() *Store {
	return &Store{
		rows:   make(map[uuid.UUID]row),
		keys:   make(map[string]uuid.UUID),
		owners: make(map[uuid.UUID]Owner),
	}
}

func (s *Store) AddOwner(o Owner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owners[o.ID] = o
}

// Seed stores an appointment directly, bypassing every check. Legacy off-grid
// rows are seeded this way.
func (s *Store) Seed(snap shared.AppointmentSnapshot, key shared.SlotKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[snap.ID] = row{snap: snap, key: key.String()}
	s.keys[key.String()] = snap.ID
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func (s *Store) Get(id uuid.UUID) (shared.AppointmentSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	return r.snap, ok
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, keys := maps.Clone(s.rows), maps.Clone(s.keys)
	if err := fn(ctx, &tx{s: s}); err != nil {
		s.rows, s.keys = rows, keys
		return err
	}
	return nil
}

func (s *Store) Reads() shared.AppointmentReads {
	return lockedReads{s: s}
}

type tx struct {
	s *Store
}

func (t *tx) Appointments() shared.AppointmentRepository { return repo{s: t.s} }
func (t *tx) Reads() shared.AppointmentReads             { return reads{s: t.s} }

// reads assumes the caller holds s.mu.
type reads struct {
	s *Store
}

func (r reads) AppointmentByID(_ context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	row, ok := r.s.rows[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "appointment not found")
	}
	snap := row.snap
	return &snap, nil
}

func (r reads) StartsBetween(_ context.Context, from, to time.Time) ([]shared.BookedStart, error) {
	var out []shared.BookedStart
	for _, row := range r.s.rows {
		if !row.snap.StartAt.Before(from) && row.snap.StartAt.Before(to) {
			out = append(out, shared.BookedStart{ID: row.snap.ID, StartAt: row.snap.StartAt})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartAt.Before(out[j].StartAt) })
	return out, nil
}

func (r reads) WindowTaken(_ context.Context, from, to time.Time, exclude uuid.UUID) (bool, error) {
	for _, row := range r.s.rows {
		if row.snap.ID != exclude && !row.snap.StartAt.Before(from) && row.snap.StartAt.Before(to) {
			return true, nil
		}
	}
	return false, nil
}

type lockedReads struct {
	s *Store
}

func (r lockedReads) AppointmentByID(ctx context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads(r).AppointmentByID(ctx, id)
}

func (r lockedReads) StartsBetween(ctx context.Context, from, to time.Time) ([]shared.BookedStart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads(r).StartsBetween(ctx, from, to)
}

func (r lockedReads) WindowTaken(ctx context.Context, from, to time.Time, exclude uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return reads(r).WindowTaken(ctx, from, to, exclude)
}

type repo struct {
	s *Store
}

func (r repo) Create(_ context.Context, a *appointment.Appointment, key shared.SlotKey) error {
	if _, ok := r.s.rows[a.ID()]; ok {
		return infra.NewRepoErr(infra.KindConflict, "duplicate appointment id")
	}
	if _, taken := r.s.keys[key.String()]; taken {
		return infra.NewRepoErr(infra.KindConflict, "slot already taken")
	}
	if len(r.s.owners) > 0 {
		if _, ok := r.s.owners[a.OwnerID()]; !ok {
			return infra.NewRepoErr(infra.KindForeignKeyViolated, "owner does not exist")
		}
	}
	r.s.rows[a.ID()] = row{snap: snapshotOf(a), key: key.String()}
	r.s.keys[key.String()] = a.ID()
	return nil
}

func (r repo) Reschedule(_ context.Context, a *appointment.Appointment, key shared.SlotKey) error {
	old, ok := r.s.rows[a.ID()]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "appointment not found")
	}
	if holder, taken := r.s.keys[key.String()]; taken && holder != a.ID() {
		return infra.NewRepoErr(infra.KindConflict, "slot already taken")
	}
	delete(r.s.keys, old.key)
	r.s.rows[a.ID()] = row{snap: snapshotOf(a), key: key.String()}
	r.s.keys[key.String()] = a.ID()
	return nil
}

func (r repo) Rename(_ context.Context, a *appointment.Appointment) error {
	old, ok := r.s.rows[a.ID()]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "appointment not found")
	}
	old.snap.ServiceName = a.ServiceName().Value()
	old.snap.UpdatedAt = a.UpdatedAt()
	r.s.rows[a.ID()] = old
	return nil
}

func (r repo) Delete(_ context.Context, id uuid.UUID) error {
	old, ok := r.s.rows[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "appointment not found")
	}
	delete(r.s.rows, id)
	delete(r.s.keys, old.key)
	return nil
}

func snapshotOf(a *appointment.Appointment) shared.AppointmentSnapshot {
	return shared.AppointmentSnapshot{
		ID:          a.ID(),
		OwnerID:     a.OwnerID(),
		ServiceName: a.ServiceName().Value(),
		StartAt:     a.StartAt(),
		CreatedAt:   a.CreatedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}
}
