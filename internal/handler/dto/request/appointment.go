package request

import (
	"appointment-scheduler/internal/domain/user"
	"appointment-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

// Dates are YYYY-MM-DD and times HH:MM, both in the business time zone.
type CreateAppointmentRequest struct {
	ServiceName string `json:"service_name" binding:"required,max=100"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
}

func (r CreateAppointmentRequest) ToInput(actor user.Actor) commands.CreateAppointmentInput {
	return commands.CreateAppointmentInput{
		Actor:       actor,
		OwnerID:     actor.ID,
		ServiceName: r.ServiceName,
		Date:        r.Date,
		Time:        r.Time,
	}
}

type CreateForOwnerRequest struct {
	OwnerEmail  string `json:"owner_email" binding:"required,email"`
	ServiceName string `json:"service_name" binding:"required,max=100"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
}

func (r CreateForOwnerRequest) ToInput() commands.CreateForOwnerInput {
	return commands.CreateForOwnerInput{
		OwnerEmail:  r.OwnerEmail,
		ServiceName: r.ServiceName,
		Date:        r.Date,
		Time:        r.Time,
	}
}

// UpdateAppointmentRequest is a partial update; omitted fields keep their value.
type UpdateAppointmentRequest struct {
	ServiceName *string `json:"service_name" binding:"omitempty,max=100"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
}

func (r UpdateAppointmentRequest) IsEmpty() bool {
	return r.ServiceName == nil && r.Date == nil && r.Time == nil
}

func (r UpdateAppointmentRequest) ToInput(actor user.Actor, id uuid.UUID) commands.UpdateAppointmentInput {
	return commands.UpdateAppointmentInput{
		Actor:       actor,
		ID:          id,
		ServiceName: r.ServiceName,
		Date:        r.Date,
		Time:        r.Time,
	}
}

type DateQuery struct {
	Date string `form:"date" binding:"required"`
}

type SlotQuery struct {
	Date string `form:"date" binding:"required"`
	Time string `form:"time" binding:"required"`
}

type ListQuery struct {
	Limit *int   `form:"limit"`
	After string `form:"after"`
}
