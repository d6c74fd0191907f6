package seed

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fleetms/internal/domain"
)

// Seeder wipes the store and repopulates it with demo fleet data. The
// random source is injected so runs can be reproduced under test. Not
// safe to run against live traffic: the first phase truncates everything.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

func New(db *gorm.DB, rng *rand.Rand) *Seeder {
	return &Seeder{db: db, rng: rng}
}

var vesselNames = []string{
	"HMM Algeciras", "HMM Oslo", "HMM Copenhagen", "HMM Dublin", "HMM Gdansk",
	"HMM Hamburg", "HMM Helsinki", "HMM Le Havre", "HMM Southampton", "HMM Stockholm",
	"Maersk Mc-Kinney", "Maersk Madrid", "Maersk Munich", "Maersk Manchester", "Maersk Milan",
	"Ever Given", "Ever Gentle", "Ever Grade", "Ever Globe", "Ever Greet",
}

var certNames = []string{
	"Safety Construction", "IOPP Certificate", "Safety Equipment", "Load Line",
}

var extraRoles = []string{"2ND_MATE", "3RD_MATE", "BOSUN", "OILER", "COOK"}

var koreanNames = []string{"Kim", "Lee", "Park", "Choi", "Jung", "Kang", "Yoon", "Jang", "Lim", "Han"}

var intlNames = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis"}

var jobTitles = []string{"Piston Overhaul", "Lube Oil Filter Clean", "Turbocharger Inspection", "Pump Seal Change"}

var maintenanceIntervals = []int{30, 90, 180, 365}

var workHourChoices = []float64{8, 9, 10, 11, 12, 14, 16}

func (s *Seeder) Run() error {
	logrus.Info("truncating existing data")
	if err := s.truncate(); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	vessels, equipments, err := s.createVessels()
	if err != nil {
		return err
	}
	logrus.Info("created 20 vessels with equipment and certificates")

	crewTotal, err := s.createCrew(vessels)
	if err != nil {
		return err
	}
	logrus.Infof("created %d seafarers with work/rest records", crewTotal)

	if err := s.createMaintenanceJobs(equipments); err != nil {
		return err
	}
	logrus.Info("created 30 maintenance jobs")

	if err := s.createNoonReports(vessels); err != nil {
		return err
	}
	logrus.Info("created 30 noon reports")

	logrus.Info("seed data ready")
	return nil
}

// truncate deletes child tables before their parents so it works with
// foreign keys enforced.
func (s *Seeder) truncate() error {
	tables := []string{
		"noon_reports", "certificates", "work_rest_hours",
		"maintenance_jobs", "equipment", "seafarers", "vessels",
	}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) createVessels() ([]domain.Vessel, []domain.Equipment, error) {
	today := domain.Today()
	vessels := make([]domain.Vessel, 0, len(vesselNames))
	var equipments []domain.Equipment

	for _, name := range vesselNames {
		types := domain.ValidVesselTypes()
		v := domain.Vessel{
			Name:       name,
			IMONumber:  fmt.Sprintf("9%06d", 100000+s.rng.Intn(900000)),
			VesselType: types[s.rng.Intn(len(types))],
			BuiltYear:  2010 + s.rng.Intn(16),
			Latitude:   round4(s.uniform(-50, 60)),
			Longitude:  round4(s.uniform(-160, 160)),
		}
		if err := s.db.Create(&v).Error; err != nil {
			return nil, nil, fmt.Errorf("create vessel: %w", err)
		}
		vessels = append(vessels, v)

		items := []domain.Equipment{
			{VesselID: v.ID, Name: "Main Engine", Maker: "Hyundai Heavy"},
			{VesselID: v.ID, Name: "Generator No.1", Maker: "STX Engine"},
		}
		if s.rng.Intn(2) == 0 {
			items = append(items, domain.Equipment{VesselID: v.ID, Name: "Ballast Pump", Maker: "Samsung"})
		}
		for i := range items {
			if err := s.db.Create(&items[i]).Error; err != nil {
				return nil, nil, fmt.Errorf("create equipment: %w", err)
			}
		}
		equipments = append(equipments, items...)

		// two certificates per vessel, sampled without replacement, with a
		// spread of expired, imminent and comfortable expiry dates
		for _, idx := range s.rng.Perm(len(certNames))[:2] {
			cert := domain.Certificate{
				VesselID:   v.ID,
				Name:       certNames[idx],
				ExpiryDate: today.AddDate(0, 0, s.rng.Intn(411)-10),
			}
			if err := s.db.Create(&cert).Error; err != nil {
				return nil, nil, fmt.Errorf("create certificate: %w", err)
			}
		}
	}
	return vessels, equipments, nil
}

func (s *Seeder) createCrew(vessels []domain.Vessel) (int, error) {
	today := domain.Today()
	baseRanks := []domain.Rank{
		domain.RankCaptain, domain.RankChiefEngineer, domain.RankChiefMate,
		domain.RankAbleSeaman, domain.RankAbleSeaman,
	}

	total := 0
	for i := range vessels {
		roles := make([]string, 0, len(baseRanks)+2)
		for _, r := range baseRanks {
			roles = append(roles, string(r))
		}
		extra := 1 + s.rng.Intn(2)
		for _, idx := range s.rng.Perm(len(extraRoles))[:extra] {
			roles = append(roles, extraRoles[idx])
		}

		for _, role := range roles {
			rank := domain.Rank(role)
			var name string
			if !rank.Valid() {
				// the rank enum is fixed; extra roles ride along as able
				// seamen with the real role kept in the display name
				rank = domain.RankAbleSeaman
				name = fmt.Sprintf("%s (%s)", s.pick(intlNames), role)
			} else {
				pool := intlNames
				if s.rng.Intn(2) == 0 {
					pool = koreanNames
				}
				name = fmt.Sprintf("%s %s.", s.pick(pool), s.pick([]string{"A", "B", "C"}))
			}

			nationality := "International"
			if s.rng.Float64() > 0.4 {
				nationality = "Korea"
			}

			vesselID := vessels[i].ID
			seafarer := domain.Seafarer{
				Name:        name,
				Rank:        rank,
				Nationality: nationality,
				VesselID:    &vesselID,
			}
			if err := s.db.Create(&seafarer).Error; err != nil {
				return 0, fmt.Errorf("create seafarer: %w", err)
			}
			total++

			for n := 1 + s.rng.Intn(2); n > 0; n-- {
				entry := domain.WorkRestHour{
					SeafarerID: seafarer.ID,
					Date:       today.AddDate(0, 0, -s.rng.Intn(6)),
					WorkHours:  workHourChoices[s.rng.Intn(len(workHourChoices))],
				}
				if err := s.db.Create(&entry).Error; err != nil {
					return 0, fmt.Errorf("create work hour entry: %w", err)
				}
			}
		}
	}
	return total, nil
}

func (s *Seeder) createMaintenanceJobs(equipments []domain.Equipment) error {
	today := domain.Today()
	for i := 0; i < 30; i++ {
		equip := equipments[s.rng.Intn(len(equipments))]
		job := domain.MaintenanceJob{
			EquipmentID:   equip.ID,
			JobTitle:      s.pick(jobTitles),
			IntervalDays:  maintenanceIntervals[s.rng.Intn(len(maintenanceIntervals))],
			LastPerformed: today.AddDate(0, 0, -(10 + s.rng.Intn(391))),
		}
		if err := s.db.Create(&job).Error; err != nil {
			return fmt.Errorf("create maintenance job: %w", err)
		}
	}
	return nil
}

func (s *Seeder) createNoonReports(vessels []domain.Vessel) error {
	today := domain.Today()
	for i := 0; i < 30; i++ {
		v := vessels[s.rng.Intn(len(vessels))]
		report := domain.NoonReport{
			VesselID:        v.ID,
			ReportDate:      today.AddDate(0, 0, -s.rng.Intn(11)),
			Latitude:        v.Latitude + s.uniform(-0.5, 0.5),
			Longitude:       v.Longitude + s.uniform(-0.5, 0.5),
			SOG:             s.uniform(10, 20),
			Distance:        s.uniform(200, 400),
			FuelConsumption: s.uniform(20, 50),
		}
		if err := s.db.Create(&report).Error; err != nil {
			return fmt.Errorf("create noon report: %w", err)
		}
	}
	return nil
}

func (s *Seeder) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Seeder) pick(pool []string) string {
	return pool[s.rng.Intn(len(pool))]
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
