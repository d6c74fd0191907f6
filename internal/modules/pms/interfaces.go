package pms

import (
	"context"

	"fleetms/internal/domain"
)

type EquipmentRepo interface {
	List(ctx context.Context) ([]domain.Equipment, error)
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Create(ctx context.Context, e *domain.Equipment) error
	Update(ctx context.Context, e *domain.Equipment) error
	Delete(ctx context.Context, id int64) error
}

type MaintenanceJobRepo interface {
	List(ctx context.Context) ([]domain.MaintenanceJob, error)
	GetByID(ctx context.Context, id int64) (*domain.MaintenanceJob, error)
	Create(ctx context.Context, j *domain.MaintenanceJob) error
	Update(ctx context.Context, j *domain.MaintenanceJob) error
	Delete(ctx context.Context, id int64) error
}

type VesselRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Vessel, error)
}
