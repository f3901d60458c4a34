package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrMissingOwner = errors.New("appointment owner is required")

// Appointment is a confirmed booking. startAt is the absolute instant; the
// business-local date and slot are derived from it through the calendar.
type Appointment struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	serviceName ServiceName
	startAt     time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewAppointment(ownerID uuid.UUID, serviceName ServiceName, startAt, now time.Time) (*Appointment, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if serviceName.Value() == "" {
		return nil, ErrEmptyServiceName
	}
	return &Appointment{
		id:          uuid.New(),
		ownerID:     ownerID,
		serviceName: serviceName,
		startAt:     startAt,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(id, ownerID uuid.UUID, serviceName string, startAt, createdAt, updatedAt time.Time) *Appointment {
	return &Appointment{
		id:          id,
		ownerID:     ownerID,
		serviceName: ServiceName{value: serviceName},
		startAt:     startAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (a *Appointment) ID() uuid.UUID            { return a.id }
func (a *Appointment) OwnerID() uuid.UUID       { return a.ownerID }
func (a *Appointment) ServiceName() ServiceName { return a.serviceName }
func (a *Appointment) StartAt() time.Time       { return a.startAt }
func (a *Appointment) CreatedAt() time.Time     { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time     { return a.updatedAt }

func (a *Appointment) IsOwnedBy(userID uuid.UUID) bool {
	return a.ownerID == userID
}

// Window is the half-open interval the appointment occupies.
func (a *Appointment) Window(length time.Duration) (time.Time, time.Time) {
	return a.startAt, a.startAt.Add(length)
}

func (a *Appointment) Reschedule(startAt, now time.Time) {
	a.startAt = startAt
	a.updatedAt = now
}

func (a *Appointment) Rename(serviceName ServiceName, now time.Time) {
	a.serviceName = serviceName
	a.updatedAt = now
}
