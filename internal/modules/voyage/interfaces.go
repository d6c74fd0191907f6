package voyage

import (
	"context"

	"fleetms/internal/domain"
)

type NoonReportRepo interface {
	List(ctx context.Context) ([]domain.NoonReport, error)
	GetByID(ctx context.Context, id int64) (*domain.NoonReport, error)
	Create(ctx context.Context, n *domain.NoonReport) error
	Update(ctx context.Context, n *domain.NoonReport) error
	Delete(ctx context.Context, id int64) error
}

type VesselRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Vessel, error)
	UpdatePosition(ctx context.Context, id int64, lat, lon float64) error
}
