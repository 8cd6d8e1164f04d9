package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SweepOpsFR/sweep-scheduler/internal/config"
	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
	"github.com/SweepOpsFR/sweep-scheduler/internal/timezone"
	ucBooking "github.com/SweepOpsFR/sweep-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	availabilityUC *ucBooking.GetAvailability
	createUC       *ucBooking.CreateBooking
	cancelUC       *ucBooking.CancelPublicBooking
	getByRefUC     *ucBooking.GetBookingByRef

	loc *time.Location
}

func NewPublicHandler(
	availabilityUC *ucBooking.GetAvailability,
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelPublicBooking,
	getByRefUC *ucBooking.GetBookingByRef,
	cfg *config.Config,
) *PublicHandler {
	return &PublicHandler{
		availabilityUC: availabilityUC,
		createUC:       createUC,
		cancelUC:       cancelUC,
		getByRefUC:     getByRefUC,
		loc:            timezone.Location(cfg.Timezone),
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Slot string `json:"slot" binding:"required,oneof=morning afternoon"`

	ServiceType   string `json:"service_type" binding:"required"`
	EquipmentType string `json:"equipment_type"`
	BrandModel    string `json:"brand_model"`
	ExhaustType   string `json:"exhaust_type"`

	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`

	Address    string `json:"address" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	City       string `json:"city" binding:"required"`

	Notes string `json:"notes"`
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	postalCode := c.Query("postal_code")
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if postalCode == "" || yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_params", "Code postal, année et mois obligatoires.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Année invalide.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mois invalide.")
		return
	}

	days, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			Year:       year,
			Month:      time.Month(month),
			PostalCode: postalCode,
		},
	)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"days":  days,
	})
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			Date: req.Date,
			Slot: req.Slot,

			ServiceType:   req.ServiceType,
			EquipmentType: req.EquipmentType,
			BrandModel:    req.BrandModel,
			ExhaustType:   req.ExhaustType,

			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ClientEmail: req.ClientEmail,

			Address:    req.Address,
			PostalCode: req.PostalCode,
			City:       req.City,

			Notes: req.Notes,
		},
	)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

////////////////////////////////////////////////////////
// LOOKUP / CANCEL BY PUBLIC REF
////////////////////////////////////////////////////////

func (h *PublicHandler) GetBooking(c *gin.Context) {
	ref := c.Param("ref")

	b, err := h.getByRefUC.Execute(c.Request.Context(), ref)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *PublicHandler) CancelBooking(c *gin.Context) {
	ref := c.Param("ref")

	b, err := h.cancelUC.Execute(c.Request.Context(), ref)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}
