package pms

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fleetms/internal/domain"
)

type Service struct {
	equipments EquipmentRepo
	jobs       MaintenanceJobRepo
	vessels    VesselRepo
}

func NewService(equipments EquipmentRepo, jobs MaintenanceJobRepo, vessels VesselRepo) *Service {
	return &Service{equipments: equipments, jobs: jobs, vessels: vessels}
}

/* ---------- EQUIPMENT ---------- */

func (s *Service) ListEquipments(ctx context.Context) ([]EquipmentResponse, error) {
	equipments, err := s.equipments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list equipments: %w", err)
	}
	out := make([]EquipmentResponse, 0, len(equipments))
	for i := range equipments {
		out = append(out, toEquipmentResponse(&equipments[i]))
	}
	return out, nil
}

func (s *Service) GetEquipment(ctx context.Context, id int64) (*EquipmentResponse, error) {
	equipment, err := s.equipments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := toEquipmentResponse(equipment)
	return &resp, nil
}

func (s *Service) CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*EquipmentResponse, error) {
	if err := s.checkVessel(ctx, req.VesselID); err != nil {
		return nil, err
	}
	equipment := domain.Equipment{
		VesselID: req.VesselID,
		Name:     req.Name,
		Maker:    req.Maker,
	}
	if err := s.equipments.Create(ctx, &equipment); err != nil {
		return nil, fmt.Errorf("create equipment: %w", err)
	}
	return s.GetEquipment(ctx, equipment.ID)
}

func (s *Service) UpdateEquipment(ctx context.Context, id int64, req CreateEquipmentRequest) (*EquipmentResponse, error) {
	equipment, err := s.equipments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.checkVessel(ctx, req.VesselID); err != nil {
		return nil, err
	}

	equipment.VesselID = req.VesselID
	equipment.Name = req.Name
	equipment.Maker = req.Maker
	equipment.Vessel = nil

	if err := s.equipments.Update(ctx, equipment); err != nil {
		return nil, fmt.Errorf("update equipment: %w", err)
	}
	return s.GetEquipment(ctx, id)
}

func (s *Service) PatchEquipment(ctx context.Context, id int64, req PatchEquipmentRequest) (*EquipmentResponse, error) {
	equipment, err := s.equipments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.VesselID != nil {
		if err := s.checkVessel(ctx, *req.VesselID); err != nil {
			return nil, err
		}
		equipment.VesselID = *req.VesselID
	}
	if req.Name != nil {
		equipment.Name = *req.Name
	}
	if req.Maker != nil {
		equipment.Maker = *req.Maker
	}
	equipment.Vessel = nil

	if err := s.equipments.Update(ctx, equipment); err != nil {
		return nil, fmt.Errorf("patch equipment: %w", err)
	}
	return s.GetEquipment(ctx, id)
}

func (s *Service) DeleteEquipment(ctx context.Context, id int64) error {
	if err := s.equipments.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete equipment: %w", err)
	}
	return nil
}

/* ---------- MAINTENANCE JOBS ---------- */

func (s *Service) ListJobs(ctx context.Context) ([]MaintenanceJobResponse, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list maintenance jobs: %w", err)
	}
	today := domain.Today()
	out := make([]MaintenanceJobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, toMaintenanceJobResponse(&jobs[i], today))
	}
	return out, nil
}

func (s *Service) GetJob(ctx context.Context, id int64) (*MaintenanceJobResponse, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := toMaintenanceJobResponse(job, domain.Today())
	return &resp, nil
}

func (s *Service) CreateJob(ctx context.Context, req CreateMaintenanceJobRequest) (*MaintenanceJobResponse, error) {
	if err := s.checkEquipment(ctx, req.EquipmentID); err != nil {
		return nil, err
	}
	lastPerformed, err := parseDate(req.LastPerformed)
	if err != nil {
		return nil, err
	}

	job := domain.MaintenanceJob{
		EquipmentID:   req.EquipmentID,
		JobTitle:      req.JobTitle,
		IntervalDays:  req.IntervalDays,
		LastPerformed: lastPerformed,
	}
	if err := s.jobs.Create(ctx, &job); err != nil {
		return nil, fmt.Errorf("create maintenance job: %w", err)
	}
	return s.GetJob(ctx, job.ID)
}

func (s *Service) UpdateJob(ctx context.Context, id int64, req CreateMaintenanceJobRequest) (*MaintenanceJobResponse, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.checkEquipment(ctx, req.EquipmentID); err != nil {
		return nil, err
	}
	lastPerformed, err := parseDate(req.LastPerformed)
	if err != nil {
		return nil, err
	}

	job.EquipmentID = req.EquipmentID
	job.JobTitle = req.JobTitle
	job.IntervalDays = req.IntervalDays
	job.LastPerformed = lastPerformed
	job.Equipment = nil

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("update maintenance job: %w", err)
	}
	return s.GetJob(ctx, id)
}

func (s *Service) PatchJob(ctx context.Context, id int64, req PatchMaintenanceJobRequest) (*MaintenanceJobResponse, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.EquipmentID != nil {
		if err := s.checkEquipment(ctx, *req.EquipmentID); err != nil {
			return nil, err
		}
		job.EquipmentID = *req.EquipmentID
	}
	if req.JobTitle != nil {
		job.JobTitle = *req.JobTitle
	}
	if req.IntervalDays != nil {
		job.IntervalDays = *req.IntervalDays
	}
	if req.LastPerformed != nil {
		lastPerformed, err := parseDate(*req.LastPerformed)
		if err != nil {
			return nil, err
		}
		job.LastPerformed = lastPerformed
	}
	job.Equipment = nil

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("patch maintenance job: %w", err)
	}
	return s.GetJob(ctx, id)
}

func (s *Service) DeleteJob(ctx context.Context, id int64) error {
	if err := s.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete maintenance job: %w", err)
	}
	return nil
}

func (s *Service) checkVessel(ctx context.Context, vesselID int64) error {
	if _, err := s.vessels.GetByID(ctx, vesselID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVesselNotFound
		}
		return err
	}
	return nil
}

func (s *Service) checkEquipment(ctx context.Context, equipmentID int64) error {
	if _, err := s.equipments.GetByID(ctx, equipmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEquipmentNotFound
		}
		return err
	}
	return nil
}
