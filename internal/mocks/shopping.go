package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/mealplanner/backend/internal/service"
	"github.com/pageza/mealplanner/backend/internal/shopping"
	"github.com/pageza/mealplanner/backend/internal/types"
)

// MockShoppingService is a mock implementation of the shopping service
type MockShoppingService struct {
	mock.Mock
}

var _ service.IShoppingService = (*MockShoppingService)(nil)

func (m *MockShoppingService) list(args mock.Arguments) (*service.ShoppingList, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ShoppingList), args.Error(1)
}

func (m *MockShoppingService) GetList(ctx context.Context, userID uuid.UUID, week time.Time) (*service.ShoppingList, error) {
	return m.list(m.Called(ctx, userID, week))
}

func (m *MockShoppingService) AddItem(ctx context.Context, userID uuid.UUID, week time.Time, req *types.ManualItemRequest) (*service.ShoppingList, error) {
	return m.list(m.Called(ctx, userID, week, req))
}

func (m *MockShoppingService) SetFlags(ctx context.Context, userID uuid.UUID, week time.Time, key shopping.Key, req *types.ItemFlagsRequest) (*service.ShoppingList, error) {
	return m.list(m.Called(ctx, userID, week, key, req))
}

func (m *MockShoppingService) ExportText(ctx context.Context, userID uuid.UUID, week time.Time, selectedOnly bool) (string, error) {
	args := m.Called(ctx, userID, week, selectedOnly)
	return args.String(0), args.Error(1)
}

func (m *MockShoppingService) UploadExport(ctx context.Context, userID uuid.UUID, week time.Time) (*service.ExportResult, error) {
	args := m.Called(ctx, userID, week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}
