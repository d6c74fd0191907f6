package repository

import (
	"context"

	"gorm.io/gorm"

	"fleetms/internal/domain"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	var equipments []domain.Equipment
	err := r.db.WithContext(ctx).
		Preload("Vessel").
		Find(&equipments).Error
	if err != nil {
		return nil, err
	}
	return equipments, nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var equipment domain.Equipment
	if err := r.db.WithContext(ctx).Preload("Vessel").First(&equipment, id).Error; err != nil {
		return nil, err
	}
	return &equipment, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	return r.db.WithContext(ctx).Omit("Vessel").Create(e).Error
}

func (r *EquipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	return r.db.WithContext(ctx).Omit("Vessel").Save(e).Error
}

// Delete removes the equipment and its maintenance jobs.
func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("equipment_id = ?", id).Delete(&domain.MaintenanceJob{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Equipment{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
