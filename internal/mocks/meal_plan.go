package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/mealplanner/backend/internal/models"
	"github.com/pageza/mealplanner/backend/internal/schedule"
	"github.com/pageza/mealplanner/backend/internal/service"
	"github.com/pageza/mealplanner/backend/internal/types"
)

// MockMealPlanService is a mock implementation of the meal plan service
type MockMealPlanService struct {
	mock.Mock
}

var _ service.IMealPlanService = (*MockMealPlanService)(nil)

func (m *MockMealPlanService) GetWeek(ctx context.Context, userID uuid.UUID, start time.Time) ([]schedule.DayPlan, error) {
	args := m.Called(ctx, userID, start)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schedule.DayPlan), args.Error(1)
}

func (m *MockMealPlanService) AddMeal(ctx context.Context, userID uuid.UUID, req *types.AddMealRequest) (*models.MealPlanItem, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MealPlanItem), args.Error(1)
}

func (m *MockMealPlanService) MoveMeal(ctx context.Context, userID, mealID uuid.UUID, req *types.MoveMealRequest) (*models.MealPlanItem, error) {
	args := m.Called(ctx, userID, mealID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MealPlanItem), args.Error(1)
}

func (m *MockMealPlanService) DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, mealID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMealPlanService) ItemsBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.MealPlanItem, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MealPlanItem), args.Error(1)
}
