package testhelpers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/mealplanner/backend/internal/models"
)

func TestSQLiteRoundTripsRecipes(t *testing.T) {
	db := SetupSQLite(t)

	recipe := &models.Recipe{
		Name:         "Oat Bowl",
		Servings:     2,
		Ingredients:  models.IngredientList{{Name: "oats", Amount: 100, Unit: "g"}},
		Instructions: models.StringList{"Soak", "Serve"},
		DietaryInfo:  models.DietaryInfo{Vegan: true},
	}
	require.NoError(t, db.Create(recipe).Error)
	assert.NotEqual(t, uuid.Nil, recipe.ID)

	var got models.Recipe
	require.NoError(t, db.First(&got, "id = ?", recipe.ID).Error)
	assert.Equal(t, "Oat Bowl", got.Name)
	assert.True(t, got.DietaryInfo.Vegan)
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, "oats", got.Ingredients[0].Name)
	assert.Equal(t, models.StringList{"Soak", "Serve"}, got.Instructions)
	assert.Len(t, got.Embedding.Slice(), 3)
}

func TestSQLiteDatabasesAreIsolated(t *testing.T) {
	t.Run("first", func(t *testing.T) {
		db := SetupSQLite(t)
		require.NoError(t, db.Create(&models.Recipe{Name: "Only here", Servings: 1}).Error)
	})
	t.Run("second", func(t *testing.T) {
		db := SetupSQLite(t)
		var count int64
		require.NoError(t, db.Model(&models.Recipe{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestPostgresMigrations(t *testing.T) {
	db := SetupTestDatabase(t)

	recipe := &models.Recipe{
		Name:        "Lentil Soup",
		Servings:    4,
		Ingredients: models.IngredientList{{Name: "lentils", Amount: 200, Unit: "g"}},
	}
	require.NoError(t, db.Create(recipe).Error)

	item := &models.MealPlanItem{
		UserID:   uuid.New(),
		RecipeID: recipe.ID,
		MealType: models.MealDinner,
		Servings: 2,
	}
	require.NoError(t, db.Omit("Recipe").Create(item).Error)

	var loaded models.MealPlanItem
	require.NoError(t, db.Preload("Recipe").First(&loaded, "id = ?", item.ID).Error)
	assert.Equal(t, "Lentil Soup", loaded.Recipe.Name)
	assert.Equal(t, recipe.Embedding.Slice(), loaded.Recipe.Embedding.Slice())
}
