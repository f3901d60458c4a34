package response

import (
	"time"

	"appointment-scheduler/internal/domain/calendar"
	"appointment-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	OwnerEmail  string    `json:"owner_email,omitempty"`
	OwnerName   string    `json:"owner_name,omitempty"`
	ServiceName string    `json:"service_name"`
	StartAt     time.Time `json:"start_at"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	NextCursor   string                 `json:"next_cursor,omitempty"`
}

func FromAppointmentView(v *queries.AppointmentView) (*AppointmentResponse, error) {
	var res AppointmentResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromAppointmentViews(views []*queries.AppointmentView) ([]*AppointmentResponse, error) {
	res := make([]*AppointmentResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}

type BookedSlotResponse struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	ServiceName   string    `json:"service_name"`
}

type BookedSlotsResponse struct {
	Date   string                `json:"date"`
	Booked []*BookedSlotResponse `json:"booked"`
}

func FromBookedSlots(date string, views []*queries.BookedSlotView) (*BookedSlotsResponse, error) {
	booked := make([]*BookedSlotResponse, 0, len(views))
	if err := copier.Copy(&booked, &views); err != nil {
		return nil, err
	}
	return &BookedSlotsResponse{Date: date, Booked: booked}, nil
}

type BusinessHoursResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type BreakResponse struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type AvailableSlotsResponse struct {
	Date           string                `json:"date"`
	AvailableSlots []string              `json:"available_slots"`
	BusinessHours  BusinessHoursResponse `json:"business_hours"`
	Breaks         []BreakResponse       `json:"breaks"`
	TimeZone       string                `json:"time_zone"`
}

func NewAvailableSlotsResponse(date string, slots []calendar.Slot, cal queries.CalendarView) *AvailableSlotsResponse {
	available := make([]string, len(slots))
	for i, s := range slots {
		available[i] = s.String()
	}
	return &AvailableSlotsResponse{
		Date:           date,
		AvailableSlots: available,
		BusinessHours:  BusinessHoursResponse{Start: cal.Open, End: cal.Close},
		Breaks:         breaksOf(cal),
		TimeZone:       cal.TimeZone,
	}
}

type SlotValidationResponse struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type CalendarResponse struct {
	BusinessHours   BusinessHoursResponse `json:"business_hours"`
	IntervalMinutes int                   `json:"interval_minutes"`
	WorkingDays     []int                 `json:"working_days"`
	WorkingDayNames string                `json:"working_day_names"`
	Breaks          []BreakResponse       `json:"breaks"`
	TimeZone        string                `json:"time_zone"`
	CloseInclusive  bool                  `json:"close_inclusive"`
}

func FromCalendarView(cal queries.CalendarView) *CalendarResponse {
	return &CalendarResponse{
		BusinessHours:   BusinessHoursResponse{Start: cal.Open, End: cal.Close},
		IntervalMinutes: cal.IntervalMinutes,
		WorkingDays:     cal.WorkingDays,
		WorkingDayNames: cal.WorkingDayNames,
		Breaks:          breaksOf(cal),
		TimeZone:        cal.TimeZone,
		CloseInclusive:  cal.CloseInclusive,
	}
}

func breaksOf(cal queries.CalendarView) []BreakResponse {
	breaks := make([]BreakResponse, 0, len(cal.Breaks))
	_ = copier.Copy(&breaks, &cal.Breaks)
	return breaks
}

type ServiceResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Icon string    `json:"icon,omitempty"`
}

func FromServiceViews(views []*queries.ServiceView) ([]*ServiceResponse, error) {
	res := make([]*ServiceResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}
