package repository

import (
	"context"

	"gorm.io/gorm"

	"fleetms/internal/domain"
)

type VesselRepository struct {
	db *gorm.DB
}

func NewVesselRepository(db *gorm.DB) *VesselRepository {
	return &VesselRepository{db: db}
}

// List returns vessels newest-first.
func (r *VesselRepository) List(ctx context.Context) ([]domain.Vessel, error) {
	var vessels []domain.Vessel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&vessels).Error
	if err != nil {
		return nil, err
	}
	return vessels, nil
}

func (r *VesselRepository) GetByID(ctx context.Context, id int64) (*domain.Vessel, error) {
	var vessel domain.Vessel
	if err := r.db.WithContext(ctx).First(&vessel, id).Error; err != nil {
		return nil, err
	}
	return &vessel, nil
}

func (r *VesselRepository) Create(ctx context.Context, v *domain.Vessel) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VesselRepository) Update(ctx context.Context, v *domain.Vessel) error {
	return r.db.WithContext(ctx).Save(v).Error
}

// UpdatePosition writes only the current-position pair, used by the
// noon-report position sync.
func (r *VesselRepository) UpdatePosition(ctx context.Context, id int64, lat, lon float64) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Vessel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"latitude": lat, "longitude": lon})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the vessel together with its equipment (and their
// maintenance jobs), certificates and noon reports, and clears the vessel
// assignment on crew. One transaction so a half-deleted vessel can't be seen.
func (r *VesselRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		equipIDs := tx.Model(&domain.Equipment{}).Select("id").Where("vessel_id = ?", id)
		if err := tx.Where("equipment_id IN (?)", equipIDs).Delete(&domain.MaintenanceJob{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vessel_id = ?", id).Delete(&domain.Equipment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vessel_id = ?", id).Delete(&domain.Certificate{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vessel_id = ?", id).Delete(&domain.NoonReport{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Seafarer{}).Where("vessel_id = ?", id).Update("vessel_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Vessel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *VesselRepository) ExistsByIMO(ctx context.Context, imo string, excludeID int64) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).
		Model(&domain.Vessel{}).
		Where("imo_number = ?", imo)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CrewCounts returns the number of assigned seafarers per vessel.
func (r *VesselRepository) CrewCounts(ctx context.Context) (map[int64]int64, error) {
	var rows []struct {
		VesselID int64
		Total    int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Seafarer{}).
		Select("vessel_id, COUNT(*) AS total").
		Where("vessel_id IS NOT NULL").
		Group("vessel_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[int64]int64, len(rows))
	for _, row := range rows {
		counts[row.VesselID] = row.Total
	}
	return counts, nil
}
