package appointment

import (
	"time"

	"appointment-scheduler/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

func (f *Factory) Create(ownerID uuid.UUID, serviceName string, startAt time.Time) (*Appointment, error) {
	name, err := NewServiceName(serviceName)
	if err != nil {
		return nil, err
	}
	return NewAppointment(ownerID, name, startAt, f.Clock.Now())
}
