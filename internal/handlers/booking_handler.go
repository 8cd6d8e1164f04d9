package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SweepOpsFR/sweep-scheduler/internal/config"
	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httpresp"
	"github.com/SweepOpsFR/sweep-scheduler/internal/timezone"
	ucBooking "github.com/SweepOpsFR/sweep-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	availabilityUC *ucBooking.GetAvailability
	listByDateUC   *ucBooking.ListBookingsByDate
	listByMonthUC  *ucBooking.ListBookingsByMonth
	transitionUC   *ucBooking.TransitionBooking
	assignUC       *ucBooking.AssignTechnician

	loc *time.Location
}

func NewBookingHandler(
	availabilityUC *ucBooking.GetAvailability,
	listByDateUC *ucBooking.ListBookingsByDate,
	listByMonthUC *ucBooking.ListBookingsByMonth,
	transitionUC *ucBooking.TransitionBooking,
	assignUC *ucBooking.AssignTechnician,
	cfg *config.Config,
) *BookingHandler {
	return &BookingHandler{
		availabilityUC: availabilityUC,
		listByDateUC:   listByDateUC,
		listByMonthUC:  listByMonthUC,
		transitionUC:   transitionUC,
		assignUC:       assignUC,
		loc:            timezone.Location(cfg.Timezone),
	}
}

// ======================================================
// REQUESTS
// ======================================================

type TransitionRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed rejected cancelled"`
}

type AssignTechnicianRequest struct {
	TechnicianID uint `json:"technician_id" binding:"required"`
}

// ======================================================
// AVAILABILITY (control panel: same engine, no zone gate)
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	days, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{Year: year, Month: month},
	)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": int(month),
		"days":  days,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
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

	bookings, err := h.listByDateUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erreur lors du chargement.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	bookings, err := h.listByMonthUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erreur lors du chargement.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":     year,
		"month":    int(month),
		"bookings": bookings,
	})
}

// ======================================================
// TRANSITION
// ======================================================

func (h *BookingHandler) Transition(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	b, err := h.transitionUC.Execute(
		c.Request.Context(),
		operatorID(c),
		uint(id),
		domain.Status(req.Status),
	)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// ======================================================
// ASSIGN TECHNICIAN
// ======================================================

func (h *BookingHandler) AssignTechnician(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	var req AssignTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	b, err := h.assignUC.Execute(
		c.Request.Context(),
		operatorID(c),
		uint(id),
		req.TechnicianID,
	)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// ======================================================
// HELPERS
// ======================================================

func parseYearMonth(c *gin.Context) (int, time.Month, bool) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Année et mois obligatoires.")
		return 0, 0, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Année invalide.")
		return 0, 0, false
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mois invalide.")
		return 0, 0, false
	}

	return year, time.Month(month), true
}
