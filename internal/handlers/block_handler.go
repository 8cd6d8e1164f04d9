package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SweepOpsFR/sweep-scheduler/internal/config"
	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httpresp"
	"github.com/SweepOpsFR/sweep-scheduler/internal/timezone"
	ucBlock "github.com/SweepOpsFR/sweep-scheduler/internal/usecase/block"
)

// ======================================================
// HANDLER
// ======================================================

type BlockHandler struct {
	blockUC   *ucBlock.BlockDay
	unblockUC *ucBlock.Unblock
	listUC    *ucBlock.ListBlocks

	loc *time.Location
}

func NewBlockHandler(
	blockUC *ucBlock.BlockDay,
	unblockUC *ucBlock.Unblock,
	listUC *ucBlock.ListBlocks,
	cfg *config.Config,
) *BlockHandler {
	return &BlockHandler{
		blockUC:   blockUC,
		unblockUC: unblockUC,
		listUC:    listUC,
		loc:       timezone.Location(cfg.Timezone),
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BlockRequest struct {
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Scope  string `json:"scope" binding:"required,oneof=day morning afternoon"`
	Reason string `json:"reason"`
}

type UnblockRequest struct {
	Date  string `json:"date" binding:"required"`
	Scope string `json:"scope" binding:"required,oneof=day morning afternoon"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BlockHandler) List(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	blocks, err := h.listUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_blocks", "Erreur lors du chargement.")
		return
	}

	httpresp.List(c, blocks)
}

func (h *BlockHandler) Create(c *gin.Context) {
	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	date, err := parseDateIn(h.loc, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date invalide.")
		return
	}

	if err := h.blockUC.Execute(
		c.Request.Context(),
		operatorID(c),
		date,
		domain.BlockScope(req.Scope),
		req.Reason,
	); err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "blocked"})
}

func (h *BlockHandler) Delete(c *gin.Context) {
	var req UnblockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	date, err := parseDateIn(h.loc, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date invalide.")
		return
	}

	if err := h.unblockUC.Execute(
		c.Request.Context(),
		operatorID(c),
		date,
		domain.BlockScope(req.Scope),
	); err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "unblocked"})
}
