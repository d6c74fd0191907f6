package repository

import (
	"context"

	"gorm.io/gorm"

	"fleetms/internal/domain"
)

type CertificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

// List returns certificates soonest-expiring first.
func (r *CertificateRepository) List(ctx context.Context) ([]domain.Certificate, error) {
	var certs []domain.Certificate
	err := r.db.WithContext(ctx).
		Preload("Vessel").
		Order("expiry_date").
		Find(&certs).Error
	if err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *CertificateRepository) GetByID(ctx context.Context, id int64) (*domain.Certificate, error) {
	var cert domain.Certificate
	if err := r.db.WithContext(ctx).Preload("Vessel").First(&cert, id).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *CertificateRepository) Create(ctx context.Context, c *domain.Certificate) error {
	return r.db.WithContext(ctx).Omit("Vessel").Create(c).Error
}

func (r *CertificateRepository) Update(ctx context.Context, c *domain.Certificate) error {
	return r.db.WithContext(ctx).Omit("Vessel").Save(c).Error
}

func (r *CertificateRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Certificate{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
