package shared

import (
	"context"
	"time"

	"appointment-scheduler/internal/domain/appointment"
	"appointment-scheduler/internal/domain/calendar"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic on serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: Direct access to command reads for validation outside transactions
	Reads() AppointmentReads
}

type Tx interface {
	Appointments() AppointmentRepository
	Reads() AppointmentReads
}

// AppointmentReads are the lookups the write path and the reconciler need.
// Results are never cached; every call hits storage.
type AppointmentReads interface {
	AppointmentByID(ctx context.Context, id uuid.UUID) (*AppointmentSnapshot, error)
	// StartsBetween lists appointments with from <= start_at < to.
	StartsBetween(ctx context.Context, from, to time.Time) ([]BookedStart, error)
	// WindowTaken reports whether any appointment other than exclude starts in [from, to).
	WindowTaken(ctx context.Context, from, to time.Time, exclude uuid.UUID) (bool, error)
}

// AppointmentRepository persists appointments under the (slot date, slot) uniqueness rule.
// Create and Reschedule return an infra.KindConflict error when the key is held
// by another appointment.
type AppointmentRepository interface {
	Create(ctx context.Context, a *appointment.Appointment, key SlotKey) error
	Reschedule(ctx context.Context, a *appointment.Appointment, key SlotKey) error
	// Rename updates the service name only; the slot key is left untouched.
	Rename(ctx context.Context, a *appointment.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SlotKey is the storage-level identity of a booked slot.
type SlotKey struct {
	Date calendar.Date
	Slot calendar.Slot
}

func (k SlotKey) String() string {
	return k.Date.String() + "T" + string(k.Slot)
}
