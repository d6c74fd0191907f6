package repository

import (
	"context"

	"gorm.io/gorm"

	"fleetms/internal/domain"
)

type MaintenanceJobRepository struct {
	db *gorm.DB
}

func NewMaintenanceJobRepository(db *gorm.DB) *MaintenanceJobRepository {
	return &MaintenanceJobRepository{db: db}
}

// List returns jobs oldest-performed first, the natural PMS review order.
func (r *MaintenanceJobRepository) List(ctx context.Context) ([]domain.MaintenanceJob, error) {
	var jobs []domain.MaintenanceJob
	err := r.db.WithContext(ctx).
		Preload("Equipment").
		Preload("Equipment.Vessel").
		Order("last_performed").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *MaintenanceJobRepository) GetByID(ctx context.Context, id int64) (*domain.MaintenanceJob, error) {
	var job domain.MaintenanceJob
	err := r.db.WithContext(ctx).
		Preload("Equipment").
		Preload("Equipment.Vessel").
		First(&job, id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *MaintenanceJobRepository) Create(ctx context.Context, j *domain.MaintenanceJob) error {
	return r.db.WithContext(ctx).Omit("Equipment").Create(j).Error
}

func (r *MaintenanceJobRepository) Update(ctx context.Context, j *domain.MaintenanceJob) error {
	return r.db.WithContext(ctx).Omit("Equipment").Save(j).Error
}

func (r *MaintenanceJobRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.MaintenanceJob{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
