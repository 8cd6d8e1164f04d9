package block

import (
	"context"
	"time"

	"github.com/SweepOpsFR/sweep-scheduler/internal/audit"
	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
	"github.com/SweepOpsFR/sweep-scheduler/internal/models"
)

// ======================================================
// BLOCK
// ======================================================

// BlockDay creates (or refreshes) an operator block on a date. A whole-day
// block supersedes any slot block for that date; a slot block under an
// existing whole-day block is a no-op. Pre-existing bookings on the date
// are never touched: blocking affects future bookability only.
type BlockDay struct {
	blocks domain.BlockRepository
	audit  *audit.Dispatcher
}

func NewBlockDay(
	blocks domain.BlockRepository,
	auditor *audit.Dispatcher,
) *BlockDay {
	return &BlockDay{
		blocks: blocks,
		audit:  auditor,
	}
}

func (uc *BlockDay) Execute(
	ctx context.Context,
	operatorID *uint,
	date time.Time,
	scope domain.BlockScope,
	reason string,
) error {

	if !scope.Valid() {
		return httperr.ErrBusiness("invalid_scope")
	}

	b := &models.Block{
		Date:      date,
		Slot:      scope.SlotValue(),
		Reason:    reason,
		CreatedBy: operatorID,
	}

	if scope == domain.ScopeDay {
		if err := uc.blocks.SetDayBlock(ctx, b); err != nil {
			return err
		}
	} else {
		dayBlock, err := uc.blocks.GetDayBlock(ctx, date)
		if err != nil {
			return err
		}
		if dayBlock != nil {
			// the whole day is already blocked, nothing to add
			return nil
		}
		if err := uc.blocks.SetSlotBlock(ctx, b); err != nil {
			return err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID: operatorID,
		Action: "block_created",
		Entity: "block",
		Metadata: map[string]any{
			"date":  date.Format("2006-01-02"),
			"scope": string(scope),
		},
	})

	return nil
}
