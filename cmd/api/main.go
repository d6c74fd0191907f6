package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fleetms/internal/config"
	"fleetms/internal/database"
	"fleetms/internal/modules/compliance"
	"fleetms/internal/modules/fleet"
	"fleetms/internal/modules/pms"
	"fleetms/internal/modules/voyage"
	"fleetms/internal/repository"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		logrus.Fatal(err)
	}

	vesselRepo := repository.NewVesselRepository(db)
	seafarerRepo := repository.NewSeafarerRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	jobRepo := repository.NewMaintenanceJobRepository(db)
	reportRepo := repository.NewNoonReportRepository(db)
	certRepo := repository.NewCertificateRepository(db)
	workHourRepo := repository.NewWorkRestHourRepository(db)

	fleetHandler := fleet.NewHandler(fleet.NewService(vesselRepo, seafarerRepo))
	pmsHandler := pms.NewHandler(pms.NewService(equipmentRepo, jobRepo, vesselRepo))
	voyageHandler := voyage.NewHandler(voyage.NewService(reportRepo, vesselRepo))
	complianceHandler := compliance.NewHandler(compliance.NewService(certRepo, workHourRepo, vesselRepo, seafarerRepo))

	r := gin.Default()

	api := r.Group("/api")
	{
		fleetHandler.RegisterRoutes(api)
		pmsHandler.RegisterRoutes(api)
		voyageHandler.RegisterRoutes(api)
		complianceHandler.RegisterRoutes(api)
	}

	addr := fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)
	logrus.WithField("addr", addr).Info("starting fleet management service")
	if err := r.Run(addr); err != nil {
		logrus.Fatal(err)
	}
}
