package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/mealplanner/backend/internal/compat"
	"github.com/pageza/mealplanner/backend/internal/models"
	"github.com/pageza/mealplanner/backend/internal/schedule"
	"github.com/pageza/mealplanner/backend/internal/shopping"
	"github.com/pageza/mealplanner/backend/internal/types"
)

// IAuthService defines the interface for token operations
type IAuthService interface {
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(userID uuid.UUID, username string) (string, error)
}

// IRecipeService defines the interface for catalog operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (*models.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	SearchRecipes(ctx context.Context, query string) ([]*models.Recipe, error)
	Catalog(ctx context.Context, query string, profile *models.HealthProfile) ([]*models.Recipe, error)
	Compatibility(ctx context.Context, profile *models.HealthProfile) ([]compat.Ranked, error)
}

// IProfileService defines the interface for health profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.HealthProfile, error)
	GetProfileHistory(ctx context.Context, userID uuid.UUID) ([]models.ProfileHistory, error)
}

// IMealPlanService defines the interface for meal plan operations
type IMealPlanService interface {
	GetWeek(ctx context.Context, userID uuid.UUID, start time.Time) ([]schedule.DayPlan, error)
	AddMeal(ctx context.Context, userID uuid.UUID, req *types.AddMealRequest) (*models.MealPlanItem, error)
	MoveMeal(ctx context.Context, userID, mealID uuid.UUID, req *types.MoveMealRequest) (*models.MealPlanItem, error)
	DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) (bool, error)
	ItemsBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.MealPlanItem, error)
}

// IShoppingService defines the interface for shopping list operations
type IShoppingService interface {
	GetList(ctx context.Context, userID uuid.UUID, week time.Time) (*ShoppingList, error)
	AddItem(ctx context.Context, userID uuid.UUID, week time.Time, req *types.ManualItemRequest) (*ShoppingList, error)
	SetFlags(ctx context.Context, userID uuid.UUID, week time.Time, key shopping.Key, req *types.ItemFlagsRequest) (*ShoppingList, error)
	ExportText(ctx context.Context, userID uuid.UUID, week time.Time, selectedOnly bool) (string, error)
	UploadExport(ctx context.Context, userID uuid.UUID, week time.Time) (*ExportResult, error)
}

// IGoalService defines the interface for goal operations
type IGoalService interface {
	ListGoals(ctx context.Context, userID uuid.UUID) (*GoalSummary, error)
	CreateGoal(ctx context.Context, userID uuid.UUID, req *types.CreateGoalRequest) (*models.Goal, error)
	ReportProgress(ctx context.Context, userID, goalID uuid.UUID, value float64) (*models.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) (bool, error)
}
