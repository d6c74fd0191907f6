package pms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fleetms/internal/domain"
)

type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) List(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepo) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepo) Create(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	if e != nil {
		e.ID = 11
	}
	return args.Error(0)
}

func (m *MockEquipmentRepo) Update(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEquipmentRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) List(ctx context.Context) ([]domain.MaintenanceJob, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaintenanceJob), args.Error(1)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.MaintenanceJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceJob), args.Error(1)
}

func (m *MockJobRepo) Create(ctx context.Context, j *domain.MaintenanceJob) error {
	args := m.Called(ctx, j)
	if j != nil {
		j.ID = 21
	}
	return args.Error(0)
}

func (m *MockJobRepo) Update(ctx context.Context, j *domain.MaintenanceJob) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
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

func TestService_CreateEquipment_UnknownVessel(t *testing.T) {
	vessels := new(MockVesselRepo)
	vessels.On("GetByID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)
	equipments := new(MockEquipmentRepo)

	svc := NewService(equipments, new(MockJobRepo), vessels)

	_, err := svc.CreateEquipment(context.Background(), CreateEquipmentRequest{
		VesselID: 3,
		Name:     "Main Engine",
		Maker:    "Hyundai Heavy",
	})

	assert.ErrorIs(t, err, ErrVesselNotFound)
	equipments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateJob_UnknownEquipment(t *testing.T) {
	equipments := new(MockEquipmentRepo)
	equipments.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)
	jobs := new(MockJobRepo)

	svc := NewService(equipments, jobs, new(MockVesselRepo))

	_, err := svc.CreateJob(context.Background(), CreateMaintenanceJobRequest{
		EquipmentID:   99,
		JobTitle:      "Piston Overhaul",
		IntervalDays:  90,
		LastPerformed: "2026-05-01",
	})

	assert.ErrorIs(t, err, ErrEquipmentNotFound)
	jobs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateJob_BadDate(t *testing.T) {
	equipments := new(MockEquipmentRepo)
	equipments.On("GetByID", mock.Anything, int64(1)).Return(&domain.Equipment{ID: 1}, nil)

	svc := NewService(equipments, new(MockJobRepo), new(MockVesselRepo))

	_, err := svc.CreateJob(context.Background(), CreateMaintenanceJobRequest{
		EquipmentID:   1,
		JobTitle:      "Pump Seal Change",
		IntervalDays:  30,
		LastPerformed: "01-05-2026",
	})

	assert.ErrorIs(t, err, ErrBadDate)
}

func TestService_ListJobs_DerivedFields(t *testing.T) {
	lastPerformed := domain.Today().AddDate(0, 0, -40)
	jobs := new(MockJobRepo)
	jobs.On("List", mock.Anything).Return([]domain.MaintenanceJob{
		{
			ID:            1,
			EquipmentID:   2,
			JobTitle:      "Turbocharger Inspection",
			IntervalDays:  30,
			LastPerformed: lastPerformed,
			Equipment: &domain.Equipment{
				ID:     2,
				Name:   "Main Engine",
				Vessel: &domain.Vessel{ID: 1, Name: "Ever Grade"},
			},
		},
	}, nil)

	svc := NewService(new(MockEquipmentRepo), jobs, new(MockVesselRepo))

	out, err := svc.ListJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, lastPerformed.AddDate(0, 0, 30).Format(domain.DateFormat), out[0].NextDueDate)
	assert.True(t, out[0].IsOverdue)
	assert.Equal(t, "Main Engine", out[0].EquipmentName)
	assert.Equal(t, "Ever Grade", out[0].VesselName)
}

func TestService_GetJob_NotFound(t *testing.T) {
	jobs := new(MockJobRepo)
	jobs.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(new(MockEquipmentRepo), jobs, new(MockVesselRepo))

	_, err := svc.GetJob(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_PatchJob_MovesToOtherEquipment(t *testing.T) {
	equipments := new(MockEquipmentRepo)
	equipments.On("GetByID", mock.Anything, int64(5)).Return(&domain.Equipment{ID: 5, Name: "Generator No.1"}, nil)

	stored := &domain.MaintenanceJob{
		ID:            21,
		EquipmentID:   2,
		JobTitle:      "Lube Oil Filter Clean",
		IntervalDays:  90,
		LastPerformed: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	jobs := new(MockJobRepo)
	jobs.On("GetByID", mock.Anything, int64(21)).Return(stored, nil)
	jobs.On("Update", mock.Anything, mock.AnythingOfType("*domain.MaintenanceJob")).Return(nil)

	svc := NewService(equipments, jobs, new(MockVesselRepo))

	newEquipID := int64(5)
	resp, err := svc.PatchJob(context.Background(), 21, PatchMaintenanceJobRequest{EquipmentID: &newEquipID})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.EquipmentID)
	assert.Equal(t, "Lube Oil Filter Clean", resp.JobTitle)
}
