package voyage

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fleetms/internal/domain"
)

type Service struct {
	reports NoonReportRepo
	vessels VesselRepo
}

func NewService(reports NoonReportRepo, vessels VesselRepo) *Service {
	return &Service{reports: reports, vessels: vessels}
}

func (s *Service) ListReports(ctx context.Context) ([]NoonReportResponse, error) {
	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list noon reports: %w", err)
	}
	out := make([]NoonReportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, toNoonReportResponse(&reports[i]))
	}
	return out, nil
}

func (s *Service) GetReport(ctx context.Context, id int64) (*NoonReportResponse, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := toNoonReportResponse(report)
	return &resp, nil
}

// CreateReport persists the report and then pushes the reported position
// onto the parent vessel. The position write is best-effort: a failure is
// logged but never rolls back or fails the already-created report.
func (s *Service) CreateReport(ctx context.Context, req CreateNoonReportRequest) (*NoonReportResponse, error) {
	if _, err := s.vessels.GetByID(ctx, req.VesselID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVesselNotFound
		}
		return nil, err
	}

	reportDate := domain.Today()
	if req.ReportDate != "" {
		var err error
		if reportDate, err = parseDate(req.ReportDate); err != nil {
			return nil, err
		}
	}

	report := domain.NoonReport{
		VesselID:        req.VesselID,
		ReportDate:      reportDate,
		Latitude:        *req.Latitude,
		Longitude:       *req.Longitude,
		SOG:             req.SOG,
		Distance:        req.Distance,
		FuelConsumption: req.FuelConsumption,
	}
	if err := s.reports.Create(ctx, &report); err != nil {
		return nil, fmt.Errorf("create noon report: %w", err)
	}

	if err := s.vessels.UpdatePosition(ctx, report.VesselID, report.Latitude, report.Longitude); err != nil {
		logrus.WithError(err).WithField("vessel_id", report.VesselID).
			Warn("noon report saved but vessel position update failed")
	}

	return s.GetReport(ctx, report.ID)
}

func (s *Service) UpdateReport(ctx context.Context, id int64, req CreateNoonReportRequest) (*NoonReportResponse, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.vessels.GetByID(ctx, req.VesselID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVesselNotFound
		}
		return nil, err
	}

	reportDate := domain.Today()
	if req.ReportDate != "" {
		if reportDate, err = parseDate(req.ReportDate); err != nil {
			return nil, err
		}
	}

	report.VesselID = req.VesselID
	report.ReportDate = reportDate
	report.Latitude = *req.Latitude
	report.Longitude = *req.Longitude
	report.SOG = req.SOG
	report.Distance = req.Distance
	report.FuelConsumption = req.FuelConsumption
	report.Vessel = nil

	if err := s.reports.Update(ctx, report); err != nil {
		return nil, fmt.Errorf("update noon report: %w", err)
	}
	return s.GetReport(ctx, id)
}

func (s *Service) PatchReport(ctx context.Context, id int64, req PatchNoonReportRequest) (*NoonReportResponse, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.VesselID != nil {
		if _, err := s.vessels.GetByID(ctx, *req.VesselID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrVesselNotFound
			}
			return nil, err
		}
		report.VesselID = *req.VesselID
	}
	if req.ReportDate != nil {
		reportDate, err := parseDate(*req.ReportDate)
		if err != nil {
			return nil, err
		}
		report.ReportDate = reportDate
	}
	if req.Latitude != nil {
		report.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		report.Longitude = *req.Longitude
	}
	if req.SOG != nil {
		report.SOG = *req.SOG
	}
	if req.Distance != nil {
		report.Distance = *req.Distance
	}
	if req.FuelConsumption != nil {
		report.FuelConsumption = *req.FuelConsumption
	}
	report.Vessel = nil

	if err := s.reports.Update(ctx, report); err != nil {
		return nil, fmt.Errorf("patch noon report: %w", err)
	}
	return s.GetReport(ctx, id)
}

func (s *Service) DeleteReport(ctx context.Context, id int64) error {
	if err := s.reports.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete noon report: %w", err)
	}
	return nil
}
