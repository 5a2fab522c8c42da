package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/remote"
)

// MockRemoteAPI is a mock implementation of the remote recipe API.
type MockRemoteAPI struct {
	mock.Mock
}

// Configured mocks the Configured method.
func (m *MockRemoteAPI) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

// RandomRecipe mocks the RandomRecipe method.
func (m *MockRemoteAPI) RandomRecipe(ctx context.Context) (*models.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

// Search mocks the Search method.
func (m *MockRemoteAPI) Search(ctx context.Context, query string, number int) ([]models.Recipe, error) {
	args := m.Called(ctx, query, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

// GetRecipe mocks the GetRecipe method.
func (m *MockRemoteAPI) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

// ComplexSearch mocks the ComplexSearch method.
func (m *MockRemoteAPI) ComplexSearch(ctx context.Context, f remote.SearchFilters) ([]models.Recipe, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}
