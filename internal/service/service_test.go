package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/mealplanner/backend/internal/metrics"
	"github.com/pageza/mealplanner/backend/internal/models"
	"github.com/pageza/mealplanner/backend/internal/testhelpers"
	"github.com/pageza/mealplanner/backend/internal/types"
	"github.com/pageza/mealplanner/backend/pkg/logger"
)

var ctx = context.Background()

type fixture struct {
	db      *gorm.DB
	metrics *metrics.Metrics
	recipes *RecipeService
	plans   *MealPlanService
}

func newFixture(t *testing.T) *fixture {
	db := testhelpers.SetupSQLite(t)
	log := logger.Discard()
	m := metrics.New()
	return &fixture{
		db:      db,
		metrics: m,
		recipes: NewRecipeService(db, log, m),
		plans:   NewMealPlanService(db, log),
	}
}

// seedRecipe inserts a recipe with a created_at offset so catalog order is fixed
func (f *fixture) seedRecipe(t *testing.T, r models.Recipe, offset int) *models.Recipe {
	if r.Servings == 0 {
		r.Servings = 2
	}
	if r.Difficulty == "" {
		r.Difficulty = models.DifficultyBeginner
	}
	r.CreatedAt = time.Date(2024, 1, 1, 0, 0, offset, 0, time.UTC)
	require.NoError(t, f.db.Create(&r).Error)
	return &r
}

func (f *fixture) plan(t *testing.T, userID uuid.UUID, recipe *models.Recipe, date string, meal models.MealType, servings int) *models.MealPlanItem {
	item, err := f.plans.AddMeal(ctx, userID, &types.AddMealRequest{
		RecipeID: recipe.ID.String(),
		Date:     date,
		MealType: meal,
		Servings: servings,
	})
	require.NoError(t, err)
	return item
}
