package api

import (
	"net/http"

	resdto "appointment-scheduler/internal/handler/dto/response"
	"appointment-scheduler/internal/handler/httperr"
	"appointment-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	catalog queries.ServiceCatalog
}

func NewServiceHandler(catalog queries.ServiceCatalog) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

// @Summary List services
// @Description Active services offered for booking
// @Tags services
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Failure 500 {object} httperr.Response
// @Router /api/services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	views, err := h.catalog.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromServiceViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
