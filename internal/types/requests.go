package types

import (
	"github.com/pageza/mealplanner/backend/internal/models"
)

// CreateRecipeRequest loads a recipe into the catalog
type CreateRecipeRequest struct {
	Name         string                    `json:"name" binding:"required"`
	Description  string                    `json:"description"`
	Ingredients  []models.RecipeIngredient `json:"ingredients" binding:"required,dive"`
	Instructions []string                  `json:"instructions"`
	PrepTime     int                       `json:"prepTime" binding:"gte=0"`
	CookTime     int                       `json:"cookTime" binding:"gte=0"`
	Servings     int                       `json:"servings" binding:"required,gt=0"`
	DietaryInfo  models.DietaryInfo        `json:"dietaryInfo"`
	Nutrition    models.Nutrition          `json:"nutrition"`
	Difficulty   models.Difficulty         `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	HealthScore  int                       `json:"healthScore" binding:"gte=0,lte=100"`
}

// UpdateProfileRequest is a partial health profile; nil fields are left alone
type UpdateProfileRequest struct {
	DietType               *models.DietType               `json:"dietType" binding:"omitempty,oneof=omnivore vegetarian vegan pescatarian"`
	Restrictions           *[]string                      `json:"restrictions"`
	Allergies              *[]string                      `json:"allergies"`
	CustomRestrictions     *[]string                      `json:"customRestrictions"`
	NutritionalPreferences *[]models.NutritionalPreference `json:"nutritionalPreferences"`
	IsOnGLP1               *bool                          `json:"isOnGLP1"`
	SkillLevel             *models.SkillLevel             `json:"skillLevel" binding:"omitempty,oneof=beginner intermediate advanced"`
	CookingTimeMax         *int                           `json:"cookingTimeMax" binding:"omitempty,gte=0"`
}

// AddMealRequest plans a recipe into a slot
type AddMealRequest struct {
	RecipeID string          `json:"recipeId" binding:"required,uuid"`
	Date     string          `json:"date" binding:"required"`
	MealType models.MealType `json:"mealType" binding:"required,oneof=breakfast lunch dinner"`
	Servings int             `json:"servings" binding:"required,gt=0"`
	Notes    string          `json:"notes"`
}

// MoveMealRequest re-dates a planned meal
type MoveMealRequest struct {
	FromDate string `json:"fromDate" binding:"required"`
	ToDate   string `json:"toDate" binding:"required"`
}

// ManualItemRequest adds a line to the shopping list by hand
type ManualItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Amount      float64 `json:"amount" binding:"gte=0"`
	Unit        string  `json:"unit"`
	ProductName string  `json:"productName"`
	Price       string  `json:"price"`
	Promoted    bool    `json:"promoted"`
}

// ItemFlagsRequest toggles a shopping list line; nil fields are left alone
type ItemFlagsRequest struct {
	Checked  *bool `json:"checked"`
	Selected *bool `json:"selected"`
}

// CreateGoalRequest creates a goal. StartDate defaults to today.
type CreateGoalRequest struct {
	Category    models.GoalCategory `json:"category" binding:"required,oneof=nutrition hydration"`
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Target      float64             `json:"target" binding:"required,gt=0"`
	Unit        string              `json:"unit"`
	Duration    models.GoalDuration `json:"duration" binding:"required,oneof=daily weekly monthly quarterly"`
	StartDate   string              `json:"startDate"`
	Points      int                 `json:"points" binding:"gte=0"`
}

// ProgressRequest reports the current value for a goal
type ProgressRequest struct {
	Value *float64 `json:"value" binding:"required"`
}
