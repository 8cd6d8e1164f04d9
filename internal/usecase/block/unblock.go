package block

import (
	"context"
	"time"

	"github.com/SweepOpsFR/sweep-scheduler/internal/audit"
	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
)

// ======================================================
// UNBLOCK
// ======================================================

// Unblock removes an operator block. When the date carries a whole-day
// block, removal is total regardless of the requested scope: there is no
// partial unblock of a whole-day block; re-block a single slot afterward
// if that asymmetry is wanted.
type Unblock struct {
	blocks domain.BlockRepository
	audit  *audit.Dispatcher
}

func NewUnblock(
	blocks domain.BlockRepository,
	auditor *audit.Dispatcher,
) *Unblock {
	return &Unblock{
		blocks: blocks,
		audit:  auditor,
	}
}

func (uc *Unblock) Execute(
	ctx context.Context,
	operatorID *uint,
	date time.Time,
	scope domain.BlockScope,
) error {

	if !scope.Valid() {
		return httperr.ErrBusiness("invalid_scope")
	}

	dayBlock, err := uc.blocks.GetDayBlock(ctx, date)
	if err != nil {
		return err
	}

	switch {
	case dayBlock != nil, scope == domain.ScopeDay:
		if err := uc.blocks.DeleteForDate(ctx, date); err != nil {
			return err
		}
	default:
		if err := uc.blocks.DeleteSlotBlock(ctx, date, domain.Slot(scope)); err != nil {
			return err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID: operatorID,
		Action: "block_removed",
		Entity: "block",
		Metadata: map[string]any{
			"date":  date.Format("2006-01-02"),
			"scope": string(scope),
		},
	})

	return nil
}
