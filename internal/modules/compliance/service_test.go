package compliance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fleetms/internal/domain"
)

type MockCertificateRepo struct {
	mock.Mock
}

func (m *MockCertificateRepo) List(ctx context.Context) ([]domain.Certificate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certificate), args.Error(1)
}

func (m *MockCertificateRepo) GetByID(ctx context.Context, id int64) (*domain.Certificate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certificate), args.Error(1)
}

func (m *MockCertificateRepo) Create(ctx context.Context, c *domain.Certificate) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 31
	}
	return args.Error(0)
}

func (m *MockCertificateRepo) Update(ctx context.Context, c *domain.Certificate) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCertificateRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockWorkRestHourRepo struct {
	mock.Mock
}

func (m *MockWorkRestHourRepo) List(ctx context.Context) ([]domain.WorkRestHour, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkRestHour), args.Error(1)
}

func (m *MockWorkRestHourRepo) GetByID(ctx context.Context, id int64) (*domain.WorkRestHour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkRestHour), args.Error(1)
}

func (m *MockWorkRestHourRepo) Create(ctx context.Context, w *domain.WorkRestHour) error {
	args := m.Called(ctx, w)
	if w != nil {
		w.ID = 41
	}
	return args.Error(0)
}

func (m *MockWorkRestHourRepo) Update(ctx context.Context, w *domain.WorkRestHour) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkRestHourRepo) Delete(ctx context.Context, id int64) error {
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

type MockSeafarerRepo struct {
	mock.Mock
}

func (m *MockSeafarerRepo) GetByID(ctx context.Context, id int64) (*domain.Seafarer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seafarer), args.Error(1)
}

func hours(f float64) *float64 { return &f }

func TestService_CreateCertificate_UnknownVessel(t *testing.T) {
	vessels := new(MockVesselRepo)
	vessels.On("GetByID", mock.Anything, int64(12)).Return(nil, gorm.ErrRecordNotFound)
	certs := new(MockCertificateRepo)

	svc := NewService(certs, new(MockWorkRestHourRepo), vessels, new(MockSeafarerRepo))

	_, err := svc.CreateCertificate(context.Background(), CreateCertificateRequest{
		VesselID:   12,
		Name:       "Load Line",
		ExpiryDate: "2027-01-01",
	})

	assert.ErrorIs(t, err, ErrVesselNotFound)
	certs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_ListCertificates_DerivedFields(t *testing.T) {
	today := domain.Today()
	certs := new(MockCertificateRepo)
	certs.On("List", mock.Anything).Return([]domain.Certificate{
		{ID: 1, VesselID: 1, Name: "IOPP Certificate", ExpiryDate: today.AddDate(0, 0, 15),
			Vessel: &domain.Vessel{ID: 1, Name: "HMM Gdansk"}},
		{ID: 2, VesselID: 1, Name: "Load Line", ExpiryDate: today.AddDate(0, 0, -3)},
	}, nil)

	svc := NewService(certs, new(MockWorkRestHourRepo), new(MockVesselRepo), new(MockSeafarerRepo))

	out, err := svc.ListCertificates(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, 15, out[0].DaysLeft)
	assert.True(t, out[0].IsExpiringSoon)
	assert.Equal(t, "HMM Gdansk", out[0].VesselName)

	// expired is reported via negative days_left, never as "expiring soon"
	assert.Equal(t, -3, out[1].DaysLeft)
	assert.False(t, out[1].IsExpiringSoon)
}

func TestService_CreateWorkHour_UnknownSeafarer(t *testing.T) {
	seafarers := new(MockSeafarerRepo)
	seafarers.On("GetByID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)
	workHours := new(MockWorkRestHourRepo)

	svc := NewService(new(MockCertificateRepo), workHours, new(MockVesselRepo), seafarers)

	_, err := svc.CreateWorkHour(context.Background(), CreateWorkRestHourRequest{
		SeafarerID: 7,
		WorkHours:  hours(12),
	})

	assert.ErrorIs(t, err, ErrSeafarerNotFound)
	workHours.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateWorkHour_RejectsOutOfRange(t *testing.T) {
	seafarers := new(MockSeafarerRepo)
	seafarers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Seafarer{ID: 1}, nil)

	svc := NewService(new(MockCertificateRepo), new(MockWorkRestHourRepo), new(MockVesselRepo), seafarers)

	_, err := svc.CreateWorkHour(context.Background(), CreateWorkRestHourRequest{
		SeafarerID: 1,
		WorkHours:  hours(25),
	})

	assert.ErrorIs(t, err, ErrBadWorkHours)
}

func TestService_ListWorkHours_ViolationFlag(t *testing.T) {
	today := domain.Today()
	workHours := new(MockWorkRestHourRepo)
	workHours.On("List", mock.Anything).Return([]domain.WorkRestHour{
		{ID: 1, SeafarerID: 1, Date: today, WorkHours: 16,
			Seafarer: &domain.Seafarer{ID: 1, Name: "Kim A."}},
		{ID: 2, SeafarerID: 1, Date: today, WorkHours: 14},
	}, nil)

	svc := NewService(new(MockCertificateRepo), workHours, new(MockVesselRepo), new(MockSeafarerRepo))

	out, err := svc.ListWorkHours(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, 8.0, out[0].RestHours)
	assert.True(t, out[0].IsViolation)
	assert.Equal(t, "Kim A.", out[0].SeafarerName)

	assert.Equal(t, 10.0, out[1].RestHours)
	assert.False(t, out[1].IsViolation)
}

func TestService_DeleteCertificate_NotFound(t *testing.T) {
	certs := new(MockCertificateRepo)
	certs.On("Delete", mock.Anything, int64(3)).Return(gorm.ErrRecordNotFound)

	svc := NewService(certs, new(MockWorkRestHourRepo), new(MockVesselRepo), new(MockSeafarerRepo))

	assert.ErrorIs(t, svc.DeleteCertificate(context.Background(), 3), ErrNotFound)
}
