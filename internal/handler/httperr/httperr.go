package httperr

import (
	"net/http"

	"appointment-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// UnavailableDetail names the first check a rejected slot failed.
type UnavailableDetail struct {
	Reason string `json:"reason"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithUsecaseError maps a command or query failure onto its HTTP status.
// Anything unrecognised is a 500 with a generic message; the cause stays on
// the gin context for the logging middleware.
func AbortWithUsecaseError(c *gin.Context, err error) {
	if ue, ok := errs.AsUnavailable(err); ok {
		AbortWithError(c, http.StatusConflict, err, "Slot unavailable", UnavailableDetail{Reason: string(ue.Reason)})
		return
	}
	if ie, ok := errs.AsInputError(err); ok {
		AbortWithError(c, http.StatusBadRequest, err, ie.Msg, nil)
		return
	}

	switch {
	case errs.Is(err, errs.ErrInvalidInput):
		AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	case errs.Is(err, errs.ErrSlotUnavailable):
		AbortWithError(c, http.StatusConflict, err, "Slot unavailable", nil)
	case errs.Is(err, errs.ErrAppointmentNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
	case errs.Is(err, errs.ErrOwnerNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Owner not found", nil)
	case errs.Is(err, errs.ErrForbidden):
		AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
