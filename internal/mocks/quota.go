package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/platewise/backend/internal/models"
)

// MockQuotaTracker is a mock implementation of the quota tracker.
type MockQuotaTracker struct {
	mock.Mock
}

// Allow mocks the Allow method.
func (m *MockQuotaTracker) Allow(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

// Record mocks the Record method.
func (m *MockQuotaTracker) Record(ctx context.Context) {
	m.Called(ctx)
}

// Stats mocks the Stats method.
func (m *MockQuotaTracker) Stats(ctx context.Context) (models.UsageStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.UsageStats), args.Error(1)
}
