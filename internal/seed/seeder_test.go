package seed

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fleetms/internal/database"
	"fleetms/internal/domain"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSeeder_Run(t *testing.T) {
	db := setupDB(t)
	seeder := New(db, rand.New(rand.NewSource(1)))
	require.NoError(t, seeder.Run())

	assert.EqualValues(t, 20, count(t, db, &domain.Vessel{}))
	assert.EqualValues(t, 40, count(t, db, &domain.Certificate{}))
	assert.EqualValues(t, 30, count(t, db, &domain.MaintenanceJob{}))
	assert.EqualValues(t, 30, count(t, db, &domain.NoonReport{}))

	// 2 fixed equipment items per vessel plus an optional third
	equipment := count(t, db, &domain.Equipment{})
	assert.GreaterOrEqual(t, equipment, int64(40))
	assert.LessOrEqual(t, equipment, int64(60))

	// 5 mandatory ranks plus 1-2 extras per vessel
	crew := count(t, db, &domain.Seafarer{})
	assert.GreaterOrEqual(t, crew, int64(120))
	assert.LessOrEqual(t, crew, int64(140))

	// 1-2 work/rest entries per crew member
	entries := count(t, db, &domain.WorkRestHour{})
	assert.GreaterOrEqual(t, entries, crew)
	assert.LessOrEqual(t, entries, 2*crew)
}

func TestSeeder_IMONumbers(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, New(db, rand.New(rand.NewSource(2))).Run())

	var vessels []domain.Vessel
	require.NoError(t, db.Find(&vessels).Error)
	require.Len(t, vessels, 20)

	imoShape := regexp.MustCompile(`^9\d{6}$`)
	seen := make(map[string]bool, len(vessels))
	for _, v := range vessels {
		assert.Regexp(t, imoShape, v.IMONumber)
		assert.False(t, seen[v.IMONumber], "duplicate IMO %s", v.IMONumber)
		seen[v.IMONumber] = true

		assert.True(t, v.VesselType.Valid())
		assert.GreaterOrEqual(t, v.BuiltYear, 2010)
		assert.LessOrEqual(t, v.BuiltYear, 2025)
		assert.GreaterOrEqual(t, v.Latitude, -50.0)
		assert.LessOrEqual(t, v.Latitude, 60.0)
		assert.GreaterOrEqual(t, v.Longitude, -160.0)
		assert.LessOrEqual(t, v.Longitude, 160.0)
	}
}

// Running the seeder twice must leave one clean dataset, not two.
func TestSeeder_RunTwiceIsClean(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, New(db, rand.New(rand.NewSource(3))).Run())
	require.NoError(t, New(db, rand.New(rand.NewSource(4))).Run())

	assert.EqualValues(t, 20, count(t, db, &domain.Vessel{}))
	assert.EqualValues(t, 40, count(t, db, &domain.Certificate{}))
	assert.EqualValues(t, 30, count(t, db, &domain.MaintenanceJob{}))
	assert.EqualValues(t, 30, count(t, db, &domain.NoonReport{}))

	// no orphans left behind by the first run
	var orphans int64
	require.NoError(t, db.Model(&domain.Equipment{}).
		Where("vessel_id NOT IN (?)", db.Model(&domain.Vessel{}).Select("id")).
		Count(&orphans).Error)
	assert.Zero(t, orphans)

	require.NoError(t, db.Model(&domain.WorkRestHour{}).
		Where("seafarer_id NOT IN (?)", db.Model(&domain.Seafarer{}).Select("id")).
		Count(&orphans).Error)
	assert.Zero(t, orphans)

	require.NoError(t, db.Model(&domain.MaintenanceJob{}).
		Where("equipment_id NOT IN (?)", db.Model(&domain.Equipment{}).Select("id")).
		Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestSeeder_Reproducible(t *testing.T) {
	first := setupDB(t)
	require.NoError(t, New(first, rand.New(rand.NewSource(42))).Run())
	second := setupDB(t)
	require.NoError(t, New(second, rand.New(rand.NewSource(42))).Run())

	var a, b []domain.Vessel
	require.NoError(t, first.Order("id").Find(&a).Error)
	require.NoError(t, second.Order("id").Find(&b).Error)
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].IMONumber, b[i].IMONumber)
		assert.Equal(t, a[i].VesselType, b[i].VesselType)
		assert.Equal(t, a[i].Latitude, b[i].Latitude)
	}
}
