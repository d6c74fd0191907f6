package fleet

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fleetms/internal/domain"
)

type Service struct {
	vessels   VesselRepo
	seafarers SeafarerRepo
}

func NewService(vessels VesselRepo, seafarers SeafarerRepo) *Service {
	return &Service{vessels: vessels, seafarers: seafarers}
}

/* ---------- VESSELS ---------- */

func (s *Service) ListVessels(ctx context.Context) ([]VesselResponse, error) {
	vessels, err := s.vessels.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vessels: %w", err)
	}
	counts, err := s.vessels.CrewCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count crew: %w", err)
	}

	out := make([]VesselResponse, 0, len(vessels))
	for i := range vessels {
		out = append(out, toVesselResponse(&vessels[i], counts[vessels[i].ID]))
	}
	return out, nil
}

func (s *Service) GetVessel(ctx context.Context, id int64) (*VesselResponse, error) {
	vessel, err := s.vessels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	counts, err := s.vessels.CrewCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count crew: %w", err)
	}
	resp := toVesselResponse(vessel, counts[vessel.ID])
	return &resp, nil
}

func (s *Service) CreateVessel(ctx context.Context, req CreateVesselRequest) (*VesselResponse, error) {
	if !req.VesselType.Valid() {
		return nil, ErrInvalidVesselType
	}
	dup, err := s.vessels.ExistsByIMO(ctx, req.IMONumber, 0)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrDuplicateIMO
	}

	vessel := domain.Vessel{
		Name:       req.Name,
		IMONumber:  req.IMONumber,
		VesselType: req.VesselType,
		BuiltYear:  req.BuiltYear,
		Latitude:   domain.DefaultLatitude,
		Longitude:  domain.DefaultLongitude,
	}
	if req.Latitude != nil {
		vessel.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		vessel.Longitude = *req.Longitude
	}

	if err := s.vessels.Create(ctx, &vessel); err != nil {
		return nil, fmt.Errorf("create vessel: %w", err)
	}
	resp := toVesselResponse(&vessel, 0)
	return &resp, nil
}

// UpdateVessel is a full replace of the stored fields.
func (s *Service) UpdateVessel(ctx context.Context, id int64, req CreateVesselRequest) (*VesselResponse, error) {
	vessel, err := s.vessels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !req.VesselType.Valid() {
		return nil, ErrInvalidVesselType
	}
	dup, err := s.vessels.ExistsByIMO(ctx, req.IMONumber, id)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrDuplicateIMO
	}

	vessel.Name = req.Name
	vessel.IMONumber = req.IMONumber
	vessel.VesselType = req.VesselType
	vessel.BuiltYear = req.BuiltYear
	vessel.Latitude = domain.DefaultLatitude
	vessel.Longitude = domain.DefaultLongitude
	if req.Latitude != nil {
		vessel.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		vessel.Longitude = *req.Longitude
	}

	if err := s.vessels.Update(ctx, vessel); err != nil {
		return nil, fmt.Errorf("update vessel: %w", err)
	}
	return s.GetVessel(ctx, id)
}

func (s *Service) PatchVessel(ctx context.Context, id int64, req PatchVesselRequest) (*VesselResponse, error) {
	vessel, err := s.vessels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		vessel.Name = *req.Name
	}
	if req.IMONumber != nil {
		dup, err := s.vessels.ExistsByIMO(ctx, *req.IMONumber, id)
		if err != nil {
			return nil, err
		}
		if dup {
			return nil, ErrDuplicateIMO
		}
		vessel.IMONumber = *req.IMONumber
	}
	if req.VesselType != nil {
		if !req.VesselType.Valid() {
			return nil, ErrInvalidVesselType
		}
		vessel.VesselType = *req.VesselType
	}
	if req.BuiltYear != nil {
		vessel.BuiltYear = *req.BuiltYear
	}
	if req.Latitude != nil {
		vessel.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		vessel.Longitude = *req.Longitude
	}

	if err := s.vessels.Update(ctx, vessel); err != nil {
		return nil, fmt.Errorf("patch vessel: %w", err)
	}
	return s.GetVessel(ctx, id)
}

func (s *Service) DeleteVessel(ctx context.Context, id int64) error {
	if err := s.vessels.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete vessel: %w", err)
	}
	return nil
}

/* ---------- SEAFARERS ---------- */

func (s *Service) ListSeafarers(ctx context.Context) ([]SeafarerResponse, error) {
	seafarers, err := s.seafarers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seafarers: %w", err)
	}
	out := make([]SeafarerResponse, 0, len(seafarers))
	for i := range seafarers {
		out = append(out, toSeafarerResponse(&seafarers[i]))
	}
	return out, nil
}

func (s *Service) GetSeafarer(ctx context.Context, id int64) (*SeafarerResponse, error) {
	seafarer, err := s.seafarers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := toSeafarerResponse(seafarer)
	return &resp, nil
}

func (s *Service) CreateSeafarer(ctx context.Context, req CreateSeafarerRequest) (*SeafarerResponse, error) {
	if !req.Rank.Valid() {
		return nil, ErrInvalidRank
	}
	if err := s.checkVessel(ctx, req.VesselID); err != nil {
		return nil, err
	}

	seafarer := domain.Seafarer{
		Name:        req.Name,
		Rank:        req.Rank,
		Nationality: req.Nationality,
		VesselID:    req.VesselID,
	}
	if err := s.seafarers.Create(ctx, &seafarer); err != nil {
		return nil, fmt.Errorf("create seafarer: %w", err)
	}
	return s.GetSeafarer(ctx, seafarer.ID)
}

func (s *Service) UpdateSeafarer(ctx context.Context, id int64, req CreateSeafarerRequest) (*SeafarerResponse, error) {
	seafarer, err := s.seafarers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !req.Rank.Valid() {
		return nil, ErrInvalidRank
	}
	if err := s.checkVessel(ctx, req.VesselID); err != nil {
		return nil, err
	}

	seafarer.Name = req.Name
	seafarer.Rank = req.Rank
	seafarer.Nationality = req.Nationality
	seafarer.VesselID = req.VesselID
	seafarer.Vessel = nil

	if err := s.seafarers.Update(ctx, seafarer); err != nil {
		return nil, fmt.Errorf("update seafarer: %w", err)
	}
	return s.GetSeafarer(ctx, id)
}

func (s *Service) PatchSeafarer(ctx context.Context, id int64, req PatchSeafarerRequest) (*SeafarerResponse, error) {
	seafarer, err := s.seafarers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		seafarer.Name = *req.Name
	}
	if req.Rank != nil {
		if !req.Rank.Valid() {
			return nil, ErrInvalidRank
		}
		seafarer.Rank = *req.Rank
	}
	if req.Nationality != nil {
		seafarer.Nationality = *req.Nationality
	}
	if req.VesselID.Set {
		if err := s.checkVessel(ctx, req.VesselID.Value); err != nil {
			return nil, err
		}
		seafarer.VesselID = req.VesselID.Value
	}
	seafarer.Vessel = nil

	if err := s.seafarers.Update(ctx, seafarer); err != nil {
		return nil, fmt.Errorf("patch seafarer: %w", err)
	}
	return s.GetSeafarer(ctx, id)
}

func (s *Service) DeleteSeafarer(ctx context.Context, id int64) error {
	if err := s.seafarers.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete seafarer: %w", err)
	}
	return nil
}

func (s *Service) checkVessel(ctx context.Context, vesselID *int64) error {
	if vesselID == nil {
		return nil
	}
	if _, err := s.vessels.GetByID(ctx, *vesselID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVesselNotFound
		}
		return err
	}
	return nil
}
