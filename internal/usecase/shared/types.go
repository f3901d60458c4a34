package shared

import (
	"time"

	"appointment-scheduler/internal/domain/appointment"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type AppointmentSnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	ServiceName string
	StartAt     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s *AppointmentSnapshot) ToDomain() *appointment.Appointment {
	return appointment.Reconstruct(s.ID, s.OwnerID, s.ServiceName, s.StartAt, s.CreatedAt, s.UpdatedAt)
}

type BookedStart struct {
	ID      uuid.UUID
	StartAt time.Time
}

type OwnerSnapshot struct {
	ID    uuid.UUID
	Email string
	Name  string
}
