package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
	"github.com/SweepOpsFR/sweep-scheduler/internal/models"
)

type BlockGormRepository struct {
	db *gorm.DB
}

func NewBlockGormRepository(db *gorm.DB) *BlockGormRepository {
	return &BlockGormRepository{db: db}
}

func (r *BlockGormRepository) ListForPeriod(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Block, error) {

	var blocks []models.Block
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC, slot ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *BlockGormRepository) GetDayBlock(
	ctx context.Context,
	date time.Time,
) (*models.Block, error) {

	var block models.Block
	err := r.db.WithContext(ctx).
		Where("date = ? AND slot = ''", date).
		First(&block).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *BlockGormRepository) GetSlotBlock(
	ctx context.Context,
	date time.Time,
	slot domain.Slot,
) (*models.Block, error) {

	var block models.Block
	err := r.db.WithContext(ctx).
		Where("date = ? AND slot = ?", date, string(slot)).
		First(&block).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &block, nil
}

// SetDayBlock deletes any slot blocks for the date and writes the whole-day
// record atomically: a whole-day block subsumes slot blocks, the two never
// coexist for one date.
func (r *BlockGormRepository) SetDayBlock(
	ctx context.Context,
	block *models.Block,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("date = ? AND slot <> ''", block.Date).
			Delete(&models.Block{}).Error; err != nil {
			return err
		}

		if err := tx.Create(block).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				// day already blocked: refresh the reason
				return tx.Model(&models.Block{}).
					Where("date = ? AND slot = ''", block.Date).
					Update("reason", block.Reason).Error
			}
			return err
		}
		return nil
	})
}

func (r *BlockGormRepository) SetSlotBlock(
	ctx context.Context,
	block *models.Block,
) error {

	if err := r.db.WithContext(ctx).Create(block).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return r.db.WithContext(ctx).
				Model(&models.Block{}).
				Where("date = ? AND slot = ?", block.Date, block.Slot).
				Update("reason", block.Reason).Error
		}
		return err
	}
	return nil
}

func (r *BlockGormRepository) DeleteForDate(
	ctx context.Context,
	date time.Time,
) error {
	return r.db.WithContext(ctx).
		Where("date = ?", date).
		Delete(&models.Block{}).Error
}

func (r *BlockGormRepository) DeleteSlotBlock(
	ctx context.Context,
	date time.Time,
	slot domain.Slot,
) error {
	return r.db.WithContext(ctx).
		Where("date = ? AND slot = ?", date, string(slot)).
		Delete(&models.Block{}).Error
}

// Compile-time check
var _ domain.BlockRepository = (*BlockGormRepository)(nil)
