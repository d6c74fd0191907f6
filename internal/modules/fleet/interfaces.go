package fleet

import (
	"context"

	"fleetms/internal/domain"
)

type VesselRepo interface {
	List(ctx context.Context) ([]domain.Vessel, error)
	GetByID(ctx context.Context, id int64) (*domain.Vessel, error)
	Create(ctx context.Context, v *domain.Vessel) error
	Update(ctx context.Context, v *domain.Vessel) error
	Delete(ctx context.Context, id int64) error
	ExistsByIMO(ctx context.Context, imo string, excludeID int64) (bool, error)
	CrewCounts(ctx context.Context) (map[int64]int64, error)
}

type SeafarerRepo interface {
	List(ctx context.Context) ([]domain.Seafarer, error)
	GetByID(ctx context.Context, id int64) (*domain.Seafarer, error)
	Create(ctx context.Context, s *domain.Seafarer) error
	Update(ctx context.Context, s *domain.Seafarer) error
	Delete(ctx context.Context, id int64) error
}
