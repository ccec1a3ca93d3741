package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/pageza/mealplanner/backend/config"
	"github.com/pageza/mealplanner/backend/internal/database"
	"github.com/pageza/mealplanner/backend/pkg/logger"
)

func main() {
	down := flag.Bool("down", false, "Roll back the most recent migration")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	log := logger.New(cfg.LogLevel)

	if cfg.DBDriver != "postgres" {
		log.Fatalf("Migrations only run against postgres, DB_DRIVER is %q", cfg.DBDriver)
	}

	db, err := database.New(cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if *down {
		err = database.Rollback(db.DB, log)
	} else {
		err = database.Migrate(db.DB, log)
	}
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}
