package api

import (
	"net/http"

	reqdto "appointment-scheduler/internal/handler/dto/request"
	resdto "appointment-scheduler/internal/handler/dto/response"
	"appointment-scheduler/internal/handler/httperr"
	"appointment-scheduler/internal/handler/middleware"
	"appointment-scheduler/internal/pkg/errs"
	"appointment-scheduler/internal/pkg/patch"
	"appointment-scheduler/internal/usecase/commands"
	"appointment-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoActor = errs.New("authenticated actor missing from context")

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary Book appointment
// @Description Book a slot for the authenticated user
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAppointmentRequest true "Slot and service"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req.ToInput(actor))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	h.respondCreated(c, view)
}

// @Summary Book appointment for a user
// @Description Admin books a slot on behalf of the user registered under owner_email
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateForOwnerRequest true "Owner, slot and service"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments/admin [post]
func (h *AppointmentHandler) CreateForOwner(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateForOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.CreateForOwner(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	h.respondCreated(c, view)
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary List own appointments
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 401 {object} httperr.Response
// @Router /api/appointments [get]
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListMine(c.Request.Context(), actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromAppointmentViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List all appointments
// @Description Admin listing ordered by start time, with keyset pagination
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 50, max 200)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.AppointmentListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/appointments/all [get]
func (h *AppointmentHandler) ListAll(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}
	var query reqdto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	limit := queries.ValidateLimit(patch.Coalesce(query.Limit, queries.DefaultListLimit))
	var cursor *queries.Cursor
	if query.After != "" {
		cursor = &queries.Cursor{After: query.After}
	}

	views, next, err := h.q.ListAll(c.Request.Context(), actor, cursor, limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	items, err := resdto.FromAppointmentViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	res := resdto.AppointmentListResponse{Appointments: items}
	if next != nil {
		res.NextCursor = next.After
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update appointment
// @Description Rename and/or move an appointment. Omitted fields keep their value.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateAppointmentRequest true "Fields to change"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments/{id} [put]
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if req.IsEmpty() {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrInvalidInput, "Nothing to update", nil)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), req.ToInput(actor, id))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary Cancel appointment
// @Description Owner or admin frees the slot. Admin cancellations notify the owner.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id} [delete]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}

	result, err := h.cmds.Cancel(c.Request.Context(), actor, id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":            "Appointment cancelled",
		"appointment_id":     result.AppointmentID,
		"cancelled_by_admin": result.CancelledByAdmin,
	})
}

// @Summary Complete appointment
// @Description Admin marks the service as done; the slot is freed and the owner notified.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id}/complete [delete]
func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}

	if err := h.cmds.Complete(c.Request.Context(), actor, id); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Appointment completed",
		"appointment_id": id,
	})
}

func (h *AppointmentHandler) respondCreated(c *gin.Context, view *queries.AppointmentView) {
	c.Header("Location", "/api/appointments/"+view.ID.String())
	h.respond(c, http.StatusCreated, view)
}

func (h *AppointmentHandler) respond(c *gin.Context, status int, view *queries.AppointmentView) {
	res, err := resdto.FromAppointmentView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}
