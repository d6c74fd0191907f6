package repository

import (
	"context"

	"gorm.io/gorm"

	"fleetms/internal/domain"
)

type NoonReportRepository struct {
	db *gorm.DB
}

func NewNoonReportRepository(db *gorm.DB) *NoonReportRepository {
	return &NoonReportRepository{db: db}
}

// List returns reports newest-first.
func (r *NoonReportRepository) List(ctx context.Context) ([]domain.NoonReport, error) {
	var reports []domain.NoonReport
	err := r.db.WithContext(ctx).
		Preload("Vessel").
		Order("report_date DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *NoonReportRepository) GetByID(ctx context.Context, id int64) (*domain.NoonReport, error) {
	var report domain.NoonReport
	if err := r.db.WithContext(ctx).Preload("Vessel").First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *NoonReportRepository) Create(ctx context.Context, n *domain.NoonReport) error {
	return r.db.WithContext(ctx).Omit("Vessel").Create(n).Error
}

func (r *NoonReportRepository) Update(ctx context.Context, n *domain.NoonReport) error {
	return r.db.WithContext(ctx).Omit("Vessel").Save(n).Error
}

func (r *NoonReportRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.NoonReport{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
