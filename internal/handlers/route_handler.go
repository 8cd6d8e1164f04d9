package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SweepOpsFR/sweep-scheduler/internal/config"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
	"github.com/SweepOpsFR/sweep-scheduler/internal/timezone"
	ucRoute "github.com/SweepOpsFR/sweep-scheduler/internal/usecase/route"
)

type RouteHandler struct {
	buildUC *ucRoute.BuildRoute
	loc     *time.Location
}

func NewRouteHandler(buildUC *ucRoute.BuildRoute, cfg *config.Config) *RouteHandler {
	return &RouteHandler{
		buildUC: buildUC,
		loc:     timezone.Location(cfg.Timezone),
	}
}

func (h *RouteHandler) Get(c *gin.Context) {
	technicianID, err := strconv.ParseUint(c.Param("technicianId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_technician_id", "Identifiant invalide.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date obligatoire.")
		return
	}

	date, err := parseDateIn(h.loc, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date invalide.")
		return
	}

	route, err := h.buildUC.Execute(c.Request.Context(), uint(technicianID), date)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, route)
}
