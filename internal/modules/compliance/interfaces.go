package compliance

import (
	"context"

	"fleetms/internal/domain"
)

type CertificateRepo interface {
	List(ctx context.Context) ([]domain.Certificate, error)
	GetByID(ctx context.Context, id int64) (*domain.Certificate, error)
	Create(ctx context.Context, c *domain.Certificate) error
	Update(ctx context.Context, c *domain.Certificate) error
	Delete(ctx context.Context, id int64) error
}

type WorkRestHourRepo interface {
	List(ctx context.Context) ([]domain.WorkRestHour, error)
	GetByID(ctx context.Context, id int64) (*domain.WorkRestHour, error)
	Create(ctx context.Context, w *domain.WorkRestHour) error
	Update(ctx context.Context, w *domain.WorkRestHour) error
	Delete(ctx context.Context, id int64) error
}

type VesselRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Vessel, error)
}

type SeafarerRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Seafarer, error)
}
