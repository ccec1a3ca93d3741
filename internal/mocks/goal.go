package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/mealplanner/backend/internal/models"
	"github.com/pageza/mealplanner/backend/internal/service"
	"github.com/pageza/mealplanner/backend/internal/types"
)

// MockGoalService is a mock implementation of the goal service
type MockGoalService struct {
	mock.Mock
}

var _ service.IGoalService = (*MockGoalService)(nil)

func (m *MockGoalService) ListGoals(ctx context.Context, userID uuid.UUID) (*service.GoalSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GoalSummary), args.Error(1)
}

func (m *MockGoalService) CreateGoal(ctx context.Context, userID uuid.UUID, req *types.CreateGoalRequest) (*models.Goal, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Goal), args.Error(1)
}

func (m *MockGoalService) ReportProgress(ctx context.Context, userID, goalID uuid.UUID, value float64) (*models.Goal, error) {
	args := m.Called(ctx, userID, goalID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Goal), args.Error(1)
}

func (m *MockGoalService) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, goalID)
	return args.Bool(0), args.Error(1)
}
