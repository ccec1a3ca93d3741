package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/pageza/mealplanner/backend/config"
	"github.com/pageza/mealplanner/backend/internal/api"
	"github.com/pageza/mealplanner/backend/internal/database"
	"github.com/pageza/mealplanner/backend/internal/goals"
	"github.com/pageza/mealplanner/backend/internal/metrics"
	"github.com/pageza/mealplanner/backend/internal/middleware"
	"github.com/pageza/mealplanner/backend/internal/server"
	"github.com/pageza/mealplanner/backend/internal/service"
	"github.com/pageza/mealplanner/backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	log := logger.New(cfg.LogLevel)
	log.WithField("environment", cfg.Environment).Info("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.DBDriver == "postgres" {
		sqlDB, err := database.New(cfg, log)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := database.Migrate(sqlDB.DB, log); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		sqlDB.Close()
	}

	db, err := database.Open(cfg, log)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	var exports service.ExportStore
	if s3Cfg, err := config.NewS3Config(ctx, cfg); err != nil {
		log.WithError(err).Warn("S3 unavailable, shopping list uploads disabled")
	} else {
		exports = s3Cfg
	}

	var goalStore goals.Store
	switch cfg.GoalStore {
	case "redis":
		goalStore = goals.NewRedisStore(redisClient)
	default:
		goalStore = goals.NewGormStore(db)
	}

	m := metrics.New()
	plans := service.NewMealPlanService(db, log)
	services := api.Services{
		Auth:          service.NewAuthService(cfg.JWTSecret),
		Recipes:       service.NewRecipeService(db, log, m),
		Profiles:      service.NewProfileService(db, log),
		MealPlans:     plans,
		Shopping:      service.NewShoppingService(plans, service.NewRedisSessionStore(redisClient), exports, log, m),
		Goals:         service.NewGoalService(goalStore, log, m),
		ExportLimiter: middleware.NewExportRateLimiter(redisClient, cfg.ExportRateLimit, cfg.ExportRateWindow, log),
	}

	srv := server.New(cfg, db, services, m, log)
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Info("Server stopped")
}
