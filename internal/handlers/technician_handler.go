package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SweepOpsFR/sweep-scheduler/internal/audit"
	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/geo"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httpresp"
	"github.com/SweepOpsFR/sweep-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// TechnicianHandler is back-office administration of the worker roster.
// The routing core reads technicians; it never mutates them.
type TechnicianHandler struct {
	techs    domain.TechnicianRepository
	geocoder geo.Geocoder
	audit    *audit.Dispatcher
}

func NewTechnicianHandler(
	techs domain.TechnicianRepository,
	geocoder geo.Geocoder,
	auditor *audit.Dispatcher,
) *TechnicianHandler {
	return &TechnicianHandler{
		techs:    techs,
		geocoder: geocoder,
		audit:    auditor,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type TechnicianRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	Color        string `json:"color"`
	StartAddress string `json:"start_address" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *TechnicianHandler) List(c *gin.Context) {
	techs, err := h.techs.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_technicians", "Erreur lors du chargement.")
		return
	}

	httpresp.List(c, techs)
}

func (h *TechnicianHandler) Create(c *gin.Context) {
	var req TechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	t := models.Technician{
		Name:   req.Name,
		Phone:  req.Phone,
		Color:  req.Color,
		Active: true,
	}

	if err := h.applyStartAddress(c.Request.Context(), &t, req.StartAddress); err != nil {
		mapBusinessError(c, err)
		return
	}

	if err := h.techs.Create(c.Request.Context(), &t); err != nil {
		httperr.Internal(c, "failed_to_create_technician", "Erreur lors de la création.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   operatorID(c),
		Action:   "technician_created",
		Entity:   "technician",
		EntityID: &t.ID,
	})

	c.JSON(http.StatusCreated, t)
}

func (h *TechnicianHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	var req TechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	t, err := h.techs.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "technician_not_found", "Technicien introuvable.")
		return
	}

	t.Name = req.Name
	t.Phone = req.Phone
	t.Color = req.Color

	if req.StartAddress != t.StartAddress {
		if err := h.applyStartAddress(c.Request.Context(), t, req.StartAddress); err != nil {
			mapBusinessError(c, err)
			return
		}
	}

	if err := h.techs.Update(c.Request.Context(), t); err != nil {
		httperr.Internal(c, "failed_to_update_technician", "Erreur lors de la mise à jour.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   operatorID(c),
		Action:   "technician_updated",
		Entity:   "technician",
		EntityID: &t.ID,
	})

	c.JSON(http.StatusOK, t)
}

// applyStartAddress geocodes the route anchor once, at write time, so
// route building never depends on resolving the technician's own address.
func (h *TechnicianHandler) applyStartAddress(
	ctx context.Context,
	t *models.Technician,
	address string,
) error {

	loc, err := h.geocoder.Resolve(ctx, address)
	if err != nil {
		return err
	}

	t.StartAddress = loc.Label
	t.StartLat = loc.Lat
	t.StartLng = loc.Lng
	return nil
}
