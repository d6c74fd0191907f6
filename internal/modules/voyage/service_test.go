package voyage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fleetms/internal/domain"
)

type MockNoonReportRepo struct {
	mock.Mock
}

func (m *MockNoonReportRepo) List(ctx context.Context) ([]domain.NoonReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NoonReport), args.Error(1)
}

func (m *MockNoonReportRepo) GetByID(ctx context.Context, id int64) (*domain.NoonReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NoonReport), args.Error(1)
}

func (m *MockNoonReportRepo) Create(ctx context.Context, n *domain.NoonReport) error {
	args := m.Called(ctx, n)
	if n != nil {
		n.ID = 301 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockNoonReportRepo) Update(ctx context.Context, n *domain.NoonReport) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNoonReportRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockVesselRepo struct {
	mock.Mock
}

func (m *MockVesselRepo) GetByID(ctx context.Context, id int64) (*domain.Vessel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vessel), args.Error(1)
}

func (m *MockVesselRepo) UpdatePosition(ctx context.Context, id int64, lat, lon float64) error {
	args := m.Called(ctx, id, lat, lon)
	return args.Error(0)
}

func ptr(f float64) *float64 { return &f }

func storedReport() *domain.NoonReport {
	return &domain.NoonReport{
		ID:              301,
		VesselID:        1,
		ReportDate:      time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Latitude:        10.0,
		Longitude:       20.0,
		SOG:             14.5,
		Distance:        320,
		FuelConsumption: 32,
		Vessel:          &domain.Vessel{ID: 1, Name: "HMM Hamburg"},
	}
}

func TestService_CreateReport_SyncsVesselPosition(t *testing.T) {
	reports := new(MockNoonReportRepo)
	vessels := new(MockVesselRepo)

	vessels.On("GetByID", mock.Anything, int64(1)).Return(&domain.Vessel{ID: 1, Name: "HMM Hamburg"}, nil)
	reports.On("Create", mock.Anything, mock.AnythingOfType("*domain.NoonReport")).Return(nil)
	vessels.On("UpdatePosition", mock.Anything, int64(1), 10.0, 20.0).Return(nil)
	reports.On("GetByID", mock.Anything, int64(301)).Return(storedReport(), nil)

	svc := NewService(reports, vessels)

	resp, err := svc.CreateReport(context.Background(), CreateNoonReportRequest{
		VesselID:        1,
		ReportDate:      "2026-08-30",
		Latitude:        ptr(10.0),
		Longitude:       ptr(20.0),
		SOG:             14.5,
		Distance:        320,
		FuelConsumption: 32,
	})

	require.NoError(t, err)
	assert.Equal(t, 100.0, resp.CIIScore)
	assert.Equal(t, "HMM Hamburg", resp.VesselName)
	vessels.AssertCalled(t, "UpdatePosition", mock.Anything, int64(1), 10.0, 20.0)
}

func TestService_CreateReport_PositionSyncFailureIsBestEffort(t *testing.T) {
	reports := new(MockNoonReportRepo)
	vessels := new(MockVesselRepo)

	vessels.On("GetByID", mock.Anything, int64(1)).Return(&domain.Vessel{ID: 1, Name: "HMM Hamburg"}, nil)
	reports.On("Create", mock.Anything, mock.AnythingOfType("*domain.NoonReport")).Return(nil)
	vessels.On("UpdatePosition", mock.Anything, int64(1), 10.0, 20.0).Return(errors.New("db gone"))
	reports.On("GetByID", mock.Anything, int64(301)).Return(storedReport(), nil)

	svc := NewService(reports, vessels)

	// the report is already durable, a failed vessel update must not surface
	resp, err := svc.CreateReport(context.Background(), CreateNoonReportRequest{
		VesselID:        1,
		ReportDate:      "2026-08-30",
		Latitude:        ptr(10.0),
		Longitude:       ptr(20.0),
		SOG:             14.5,
		Distance:        320,
		FuelConsumption: 32,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(301), resp.ID)
}

func TestService_CreateReport_UnknownVessel(t *testing.T) {
	reports := new(MockNoonReportRepo)
	vessels := new(MockVesselRepo)
	vessels.On("GetByID", mock.Anything, int64(77)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(reports, vessels)

	_, err := svc.CreateReport(context.Background(), CreateNoonReportRequest{
		VesselID:  77,
		Latitude:  ptr(1.0),
		Longitude: ptr(2.0),
	})

	assert.ErrorIs(t, err, ErrVesselNotFound)
	reports.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateReport_BadDate(t *testing.T) {
	reports := new(MockNoonReportRepo)
	vessels := new(MockVesselRepo)
	vessels.On("GetByID", mock.Anything, int64(1)).Return(&domain.Vessel{ID: 1}, nil)

	svc := NewService(reports, vessels)

	_, err := svc.CreateReport(context.Background(), CreateNoonReportRequest{
		VesselID:   1,
		ReportDate: "30/08/2026",
		Latitude:   ptr(1.0),
		Longitude:  ptr(2.0),
	})

	assert.ErrorIs(t, err, ErrBadDate)
}

func TestService_ListReports_ZeroDistanceScoresZero(t *testing.T) {
	reports := new(MockNoonReportRepo)
	reports.On("List", mock.Anything).Return([]domain.NoonReport{
		{ID: 1, VesselID: 1, ReportDate: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), Distance: 0, FuelConsumption: 40},
	}, nil)

	svc := NewService(reports, new(MockVesselRepo))

	out, err := svc.ListReports(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 0.0, out[0].CIIScore)
}

func TestService_DeleteReport_NotFound(t *testing.T) {
	reports := new(MockNoonReportRepo)
	reports.On("Delete", mock.Anything, int64(8)).Return(gorm.ErrRecordNotFound)

	svc := NewService(reports, new(MockVesselRepo))

	assert.ErrorIs(t, svc.DeleteReport(context.Background(), 8), ErrNotFound)
}
