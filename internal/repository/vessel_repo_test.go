package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fleetms/internal/database"
	"fleetms/internal/domain"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// A vessel sitting on the equator or the prime meridian has a legitimate
// zero coordinate; the stored row must keep it rather than swapping in
// the home-port position.
func TestVesselRepository_CreateKeepsZeroCoordinates(t *testing.T) {
	repo := NewVesselRepository(setupDB(t))
	ctx := context.Background()

	v := domain.Vessel{
		Name:       "Ever Prime",
		IMONumber:  "9123456",
		VesselType: domain.VesselContainer,
		BuiltYear:  2020,
		Latitude:   0.0,
		Longitude:  5.0,
	}
	require.NoError(t, repo.Create(ctx, &v))

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Latitude)
	assert.Equal(t, 5.0, got.Longitude)

	v2 := domain.Vessel{
		Name:       "Ever Meridian",
		IMONumber:  "9123457",
		VesselType: domain.VesselTanker,
		BuiltYear:  2018,
		Latitude:   12.5,
		Longitude:  0.0,
	}
	require.NoError(t, repo.Create(ctx, &v2))

	got, err = repo.GetByID(ctx, v2.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.5, got.Latitude)
	assert.Equal(t, 0.0, got.Longitude)
}
