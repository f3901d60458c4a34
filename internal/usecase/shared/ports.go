package shared

import (
	"context"
	"time"

	"appointment-scheduler/internal/domain/appointment"
	"appointment-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSlotLocked = errs.New("slot is being booked by another request")

// OwnerDirectory resolves appointment owners. Accounts live in the identity service.
type OwnerDirectory interface {
	OwnerByID(ctx context.Context, id uuid.UUID) (*OwnerSnapshot, error)
	OwnerByEmail(ctx context.Context, email string) (*OwnerSnapshot, error)
}

// SlotLocker serializes bookings of one slot across processes. Lock returns
// ErrSlotLocked when the slot stays held past the wait budget.
type SlotLocker interface {
	Lock(ctx context.Context, key SlotKey) (unlock func(), err error)
}

// Notice is what the owner is told when an appointment leaves the schedule.
type Notice struct {
	Outcome       appointment.Outcome
	AppointmentID uuid.UUID
	OwnerEmail    string
	OwnerName     string
	ServiceName   string
	StartAt       time.Time
	Date          string
	Time          string
}

type Notifier interface {
	Notify(ctx context.Context, n Notice) error
}

// NoticeDispatcher delivers notices without blocking the caller; delivery
// failures are logged and never surface to the mutation that caused them.
type NoticeDispatcher interface {
	Dispatch(ctx context.Context, n Notice)
}
