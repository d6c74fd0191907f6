package repository

import (
	"context"

	"gorm.io/gorm"

	"fleetms/internal/domain"
)

type SeafarerRepository struct {
	db *gorm.DB
}

func NewSeafarerRepository(db *gorm.DB) *SeafarerRepository {
	return &SeafarerRepository{db: db}
}

// List returns seafarers ordered by rank.
func (r *SeafarerRepository) List(ctx context.Context) ([]domain.Seafarer, error) {
	var seafarers []domain.Seafarer
	err := r.db.WithContext(ctx).
		Preload("Vessel").
		Order("rank").
		Find(&seafarers).Error
	if err != nil {
		return nil, err
	}
	return seafarers, nil
}

func (r *SeafarerRepository) GetByID(ctx context.Context, id int64) (*domain.Seafarer, error) {
	var seafarer domain.Seafarer
	if err := r.db.WithContext(ctx).Preload("Vessel").First(&seafarer, id).Error; err != nil {
		return nil, err
	}
	return &seafarer, nil
}

func (r *SeafarerRepository) Create(ctx context.Context, s *domain.Seafarer) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SeafarerRepository) Update(ctx context.Context, s *domain.Seafarer) error {
	// Save skips nil associations but not nil columns, so a cleared
	// vessel_id is written out.
	return r.db.WithContext(ctx).Omit("Vessel").Save(s).Error
}

// Delete removes the seafarer and their work/rest records.
func (r *SeafarerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("seafarer_id = ?", id).Delete(&domain.WorkRestHour{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Seafarer{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
