package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/mealplanner/backend/internal/models"
	"github.com/pageza/mealplanner/backend/internal/service"
	"github.com/pageza/mealplanner/backend/internal/types"
)

// MockProfileService is a mock implementation of the profile service
type MockProfileService struct {
	mock.Mock
}

var _ service.IProfileService = (*MockProfileService)(nil)

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthProfile), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.HealthProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthProfile), args.Error(1)
}

func (m *MockProfileService) GetProfileHistory(ctx context.Context, userID uuid.UUID) ([]models.ProfileHistory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProfileHistory), args.Error(1)
}
