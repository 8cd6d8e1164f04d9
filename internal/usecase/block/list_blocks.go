package block

import (
	"context"
	"time"

	"github.com/SweepOpsFR/sweep-scheduler/internal/config"
	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/models"
	"github.com/SweepOpsFR/sweep-scheduler/internal/timezone"
)

type ListBlocks struct {
	blocks domain.BlockRepository
	loc    *time.Location
}

func NewListBlocks(
	blocks domain.BlockRepository,
	cfg *config.Config,
) *ListBlocks {
	return &ListBlocks{
		blocks: blocks,
		loc:    timezone.Location(cfg.Timezone),
	}
}

func (uc *ListBlocks) Execute(
	ctx context.Context,
	year int,
	month time.Month,
) ([]models.Block, error) {

	start := time.Date(year, month, 1, 0, 0, 0, 0, uc.loc)
	end := start.AddDate(0, 1, 0)

	return uc.blocks.ListForPeriod(ctx, start, end)
}
