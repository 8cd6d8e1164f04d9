package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
	"github.com/SweepOpsFR/sweep-scheduler/internal/middleware"
)

func parseDateIn(loc *time.Location, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

// operatorID reads the authenticated operator from the gin context, nil on
// public routes.
func operatorID(c *gin.Context) *uint {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}

// mapBusinessError translates core business errors into HTTP responses.
func mapBusinessError(c *gin.Context, err error) {
	code, ok := httperr.IsAnyBusiness(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Une erreur interne est survenue.")
		return
	}

	switch code {
	case httperr.CodeCapacityExceeded:
		httperr.Conflict(c, code, "Ce créneau est complet. Merci de choisir un autre créneau.")
	case httperr.CodeZoneRejected:
		httperr.BadRequest(c, code, "Ce code postal n'est pas desservi.")
	case httperr.CodePastDate:
		httperr.BadRequest(c, code, "Cette date est déjà passée.")
	case httperr.CodeTooSoon:
		httperr.BadRequest(c, code, "Le délai minimum de réservation n'est pas respecté.")
	case httperr.CodeInvalidTransition:
		httperr.BadRequest(c, code, "Changement de statut impossible.")
	case httperr.CodeAddressUnresolved:
		httperr.BadRequest(c, code, "Adresse introuvable.")
	case httperr.CodeNotFound:
		httperr.NotFound(c, code, "Ressource introuvable.")
	default:
		httperr.BadRequest(c, code, "Requête invalide.")
	}
}
