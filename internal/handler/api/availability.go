package api

import (
	"net/http"
	"strings"

	"appointment-scheduler/internal/domain/calendar"
	reqdto "appointment-scheduler/internal/handler/dto/request"
	resdto "appointment-scheduler/internal/handler/dto/response"
	"appointment-scheduler/internal/handler/httperr"
	"appointment-scheduler/internal/pkg/errs"
	"appointment-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
	appointments queries.AppointmentQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries, appointments queries.AppointmentQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability, appointments: appointments}
}

// @Summary Available slots
// @Description Free slots of a business day in chronological order, with the business hours and breaks
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailableSlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/appointments/available-slots [get]
func (h *AvailabilityHandler) AvailableSlots(c *gin.Context) {
	var query reqdto.DateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Date is required", nil)
		return
	}
	d, err := calendar.ParseDate(strings.TrimSpace(query.Date))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	slots, err := h.availability.AvailableSlots(c.Request.Context(), d)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewAvailableSlotsResponse(d.String(), slots, h.availability.Calendar()))
}

// @Summary Validate slot
// @Description Reports whether a slot can be booked and, if not, the first check it fails
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Time (HH:MM)"
// @Success 200 {object} resdto.SlotValidationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/appointments/validate [get]
func (h *AvailabilityHandler) Validate(c *gin.Context) {
	var query reqdto.SlotQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Date and time are required", nil)
		return
	}
	d, err := calendar.ParseDate(strings.TrimSpace(query.Date))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}
	t, err := calendar.ParseTimeOfDay(strings.TrimSpace(query.Time))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time, expected HH:MM", nil)
		return
	}

	res := resdto.SlotValidationResponse{Date: d.String(), Time: t.String(), Available: true}
	if err := h.availability.ValidateSlot(c.Request.Context(), d, t); err != nil {
		ue, ok := errs.AsUnavailable(err)
		if !ok {
			httperr.AbortWithUsecaseError(c, err)
			return
		}
		res.Available = false
		res.Reason = string(ue.Reason)
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Booked slots
// @Description Appointments on a date, without owner details
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.BookedSlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/appointments/booked [get]
func (h *AvailabilityHandler) Booked(c *gin.Context) {
	var query reqdto.DateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Date is required", nil)
		return
	}
	d, err := calendar.ParseDate(strings.TrimSpace(query.Date))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	views, err := h.appointments.ListBookedOn(c.Request.Context(), d)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromBookedSlots(d.String(), views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Business calendar
// @Tags availability
// @Produce json
// @Success 200 {object} resdto.CalendarResponse
// @Router /api/calendar [get]
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromCalendarView(h.availability.Calendar()))
}
