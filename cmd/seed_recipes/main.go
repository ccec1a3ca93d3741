package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pageza/mealplanner/backend/config"
	"github.com/pageza/mealplanner/backend/internal/database"
	"github.com/pageza/mealplanner/backend/internal/metrics"
	"github.com/pageza/mealplanner/backend/internal/service"
	"github.com/pageza/mealplanner/backend/internal/types"
	"github.com/pageza/mealplanner/backend/pkg/logger"
)

//go:embed catalog.json
var catalogJSON []byte

func loadCatalog() ([]types.CreateRecipeRequest, error) {
	var recipes []types.CreateRecipeRequest
	if err := json.Unmarshal(catalogJSON, &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return recipes, nil
}

// seed loads the catalog unless recipes already exist
func seed(ctx context.Context, recipes service.IRecipeService, catalog []types.CreateRecipeRequest, log *logrus.Logger) (int, error) {
	existing, err := recipes.SearchRecipes(ctx, "")
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		log.WithField("recipes", len(existing)).Info("Catalog already seeded, skipping")
		return 0, nil
	}
	for i := range catalog {
		if _, err := recipes.CreateRecipe(ctx, &catalog[i]); err != nil {
			return i, fmt.Errorf("failed to seed %q: %w", catalog[i].Name, err)
		}
	}
	return len(catalog), nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	log := logger.New(cfg.LogLevel)

	db, err := database.Open(cfg, log)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	catalog, err := loadCatalog()
	if err != nil {
		log.Fatal(err)
	}

	n, err := seed(context.Background(), service.NewRecipeService(db, log, metrics.New()), catalog, log)
	if err != nil {
		log.Fatal(err)
	}
	log.WithField("recipes", n).Info("Seeding complete")
}
