package compliance

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fleetms/internal/domain"
)

type Service struct {
	certs     CertificateRepo
	workHours WorkRestHourRepo
	vessels   VesselRepo
	seafarers SeafarerRepo
}

func NewService(certs CertificateRepo, workHours WorkRestHourRepo, vessels VesselRepo, seafarers SeafarerRepo) *Service {
	return &Service{certs: certs, workHours: workHours, vessels: vessels, seafarers: seafarers}
}

/* ---------- CERTIFICATES ---------- */

func (s *Service) ListCertificates(ctx context.Context) ([]CertificateResponse, error) {
	certs, err := s.certs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	today := domain.Today()
	out := make([]CertificateResponse, 0, len(certs))
	for i := range certs {
		out = append(out, toCertificateResponse(&certs[i], today))
	}
	return out, nil
}

func (s *Service) GetCertificate(ctx context.Context, id int64) (*CertificateResponse, error) {
	cert, err := s.certs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := toCertificateResponse(cert, domain.Today())
	return &resp, nil
}

func (s *Service) CreateCertificate(ctx context.Context, req CreateCertificateRequest) (*CertificateResponse, error) {
	if err := s.checkVessel(ctx, req.VesselID); err != nil {
		return nil, err
	}
	expiry, err := parseDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	cert := domain.Certificate{
		VesselID:   req.VesselID,
		Name:       req.Name,
		ExpiryDate: expiry,
	}
	if err := s.certs.Create(ctx, &cert); err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}
	return s.GetCertificate(ctx, cert.ID)
}

func (s *Service) UpdateCertificate(ctx context.Context, id int64, req CreateCertificateRequest) (*CertificateResponse, error) {
	cert, err := s.certs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.checkVessel(ctx, req.VesselID); err != nil {
		return nil, err
	}
	expiry, err := parseDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	cert.VesselID = req.VesselID
	cert.Name = req.Name
	cert.ExpiryDate = expiry
	cert.Vessel = nil

	if err := s.certs.Update(ctx, cert); err != nil {
		return nil, fmt.Errorf("update certificate: %w", err)
	}
	return s.GetCertificate(ctx, id)
}

func (s *Service) PatchCertificate(ctx context.Context, id int64, req PatchCertificateRequest) (*CertificateResponse, error) {
	cert, err := s.certs.GetByID(ctx, id)
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
		cert.VesselID = *req.VesselID
	}
	if req.Name != nil {
		cert.Name = *req.Name
	}
	if req.ExpiryDate != nil {
		expiry, err := parseDate(*req.ExpiryDate)
		if err != nil {
			return nil, err
		}
		cert.ExpiryDate = expiry
	}
	cert.Vessel = nil

	if err := s.certs.Update(ctx, cert); err != nil {
		return nil, fmt.Errorf("patch certificate: %w", err)
	}
	return s.GetCertificate(ctx, id)
}

func (s *Service) DeleteCertificate(ctx context.Context, id int64) error {
	if err := s.certs.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete certificate: %w", err)
	}
	return nil
}

/* ---------- WORK/REST HOURS ---------- */

func (s *Service) ListWorkHours(ctx context.Context) ([]WorkRestHourResponse, error) {
	entries, err := s.workHours.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list work hours: %w", err)
	}
	out := make([]WorkRestHourResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toWorkRestHourResponse(&entries[i]))
	}
	return out, nil
}

func (s *Service) GetWorkHour(ctx context.Context, id int64) (*WorkRestHourResponse, error) {
	entry, err := s.workHours.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := toWorkRestHourResponse(entry)
	return &resp, nil
}

func (s *Service) CreateWorkHour(ctx context.Context, req CreateWorkRestHourRequest) (*WorkRestHourResponse, error) {
	if err := s.checkSeafarer(ctx, req.SeafarerID); err != nil {
		return nil, err
	}
	if *req.WorkHours < 0 || *req.WorkHours > 24 {
		return nil, ErrBadWorkHours
	}

	date := domain.Today()
	if req.Date != "" {
		var err error
		if date, err = parseDate(req.Date); err != nil {
			return nil, err
		}
	}

	entry := domain.WorkRestHour{
		SeafarerID: req.SeafarerID,
		Date:       date,
		WorkHours:  *req.WorkHours,
	}
	if err := s.workHours.Create(ctx, &entry); err != nil {
		return nil, fmt.Errorf("create work hour entry: %w", err)
	}
	return s.GetWorkHour(ctx, entry.ID)
}

func (s *Service) UpdateWorkHour(ctx context.Context, id int64, req CreateWorkRestHourRequest) (*WorkRestHourResponse, error) {
	entry, err := s.workHours.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.checkSeafarer(ctx, req.SeafarerID); err != nil {
		return nil, err
	}
	if *req.WorkHours < 0 || *req.WorkHours > 24 {
		return nil, ErrBadWorkHours
	}

	date := domain.Today()
	if req.Date != "" {
		if date, err = parseDate(req.Date); err != nil {
			return nil, err
		}
	}

	entry.SeafarerID = req.SeafarerID
	entry.Date = date
	entry.WorkHours = *req.WorkHours
	entry.Seafarer = nil

	if err := s.workHours.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update work hour entry: %w", err)
	}
	return s.GetWorkHour(ctx, id)
}

func (s *Service) PatchWorkHour(ctx context.Context, id int64, req PatchWorkRestHourRequest) (*WorkRestHourResponse, error) {
	entry, err := s.workHours.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.SeafarerID != nil {
		if err := s.checkSeafarer(ctx, *req.SeafarerID); err != nil {
			return nil, err
		}
		entry.SeafarerID = *req.SeafarerID
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		entry.Date = date
	}
	if req.WorkHours != nil {
		if *req.WorkHours < 0 || *req.WorkHours > 24 {
			return nil, ErrBadWorkHours
		}
		entry.WorkHours = *req.WorkHours
	}
	entry.Seafarer = nil

	if err := s.workHours.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("patch work hour entry: %w", err)
	}
	return s.GetWorkHour(ctx, id)
}

func (s *Service) DeleteWorkHour(ctx context.Context, id int64) error {
	if err := s.workHours.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete work hour entry: %w", err)
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

func (s *Service) checkSeafarer(ctx context.Context, seafarerID int64) error {
	if _, err := s.seafarers.GetByID(ctx, seafarerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSeafarerNotFound
		}
		return err
	}
	return nil
}
