package main

import (
	"flag"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"fleetms/internal/config"
	"fleetms/internal/database"
	"fleetms/internal/seed"
)

func main() {
	seedFlag := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal("DB connection failed: ", err)
	}
	if err := database.Migrate(db); err != nil {
		logrus.Fatal("migration failed: ", err)
	}

	source := *seedFlag
	if source == 0 {
		source = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(source))

	if err := seed.New(db, rng).Run(); err != nil {
		logrus.Fatal("seeding failed: ", err)
	}
}
