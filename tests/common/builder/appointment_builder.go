//go:build unit || e2e

package builder

import (
	"time"

	"appointment-scheduler/internal/handler/dto/request"
	"appointment-scheduler/internal/usecase/queries"
	"appointment-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	OwnerEmail  string
	OwnerName   string
	ServiceName string
	Date        string
	Time        string
	StartAt     time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		OwnerEmail:  "ana@example.com",
		OwnerName:   "Ana",
		ServiceName: "Haircut",
		Date:        "2024-03-15",
		Time:        "10:00",
		StartAt:     time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	created := b.StartAt.Add(-48 * time.Hour)
	return &queries.AppointmentView{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		OwnerEmail:  b.OwnerEmail,
		OwnerName:   b.OwnerName,
		ServiceName: b.ServiceName,
		StartAt:     b.StartAt,
		Date:        b.Date,
		Time:        b.Time,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func (b *AppointmentBuilder) BuildSnapshot() *shared.AppointmentSnapshot {
	created := b.StartAt.Add(-48 * time.Hour)
	return &shared.AppointmentSnapshot{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		ServiceName: b.ServiceName,
		StartAt:     b.StartAt,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() request.CreateAppointmentRequest {
	return request.CreateAppointmentRequest{
		ServiceName: b.ServiceName,
		Date:        b.Date,
		Time:        b.Time,
	}
}
