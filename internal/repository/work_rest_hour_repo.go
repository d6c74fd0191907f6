package repository

import (
	"context"

	"gorm.io/gorm"

	"fleetms/internal/domain"
)

type WorkRestHourRepository struct {
	db *gorm.DB
}

func NewWorkRestHourRepository(db *gorm.DB) *WorkRestHourRepository {
	return &WorkRestHourRepository{db: db}
}

// List returns entries newest-first.
func (r *WorkRestHourRepository) List(ctx context.Context) ([]domain.WorkRestHour, error) {
	var entries []domain.WorkRestHour
	err := r.db.WithContext(ctx).
		Preload("Seafarer").
		Order("date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *WorkRestHourRepository) GetByID(ctx context.Context, id int64) (*domain.WorkRestHour, error) {
	var entry domain.WorkRestHour
	if err := r.db.WithContext(ctx).Preload("Seafarer").First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *WorkRestHourRepository) Create(ctx context.Context, w *domain.WorkRestHour) error {
	return r.db.WithContext(ctx).Omit("Seafarer").Create(w).Error
}

func (r *WorkRestHourRepository) Update(ctx context.Context, w *domain.WorkRestHour) error {
	return r.db.WithContext(ctx).Omit("Seafarer").Save(w).Error
}

func (r *WorkRestHourRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.WorkRestHour{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
