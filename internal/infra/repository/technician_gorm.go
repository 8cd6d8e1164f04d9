package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/SweepOpsFR/sweep-scheduler/internal/domain/booking"
	"github.com/SweepOpsFR/sweep-scheduler/internal/models"
)

type TechnicianGormRepository struct {
	db *gorm.DB
}

func NewTechnicianGormRepository(db *gorm.DB) *TechnicianGormRepository {
	return &TechnicianGormRepository{db: db}
}

func (r *TechnicianGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Technician, error) {

	var t models.Technician
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TechnicianGormRepository) List(
	ctx context.Context,
) ([]models.Technician, error) {

	var techs []models.Technician
	if err := r.db.WithContext(ctx).
		Where("active = true").
		Order("id ASC").
		Find(&techs).Error; err != nil {
		return nil, err
	}
	return techs, nil
}

func (r *TechnicianGormRepository) Create(
	ctx context.Context,
	t *models.Technician,
) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TechnicianGormRepository) Update(
	ctx context.Context,
	t *models.Technician,
) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// Compile-time check
var _ domain.TechnicianRepository = (*TechnicianGormRepository)(nil)
