package stream

import (
	"context"

	"github.com/SeishiUwU/FleetGuard/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockStreamService is a mock implementation of StreamService
type MockStreamService struct {
	mock.Mock
}

// NewMockStreamService creates a new MockStreamService
func NewMockStreamService() *MockStreamService {
	return &MockStreamService{}
}

func (m *MockStreamService) Open(ctx context.Context, id string, rangeHeader string) (*domain.ClipStream, error) {
	args := m.Called(ctx, id, rangeHeader)
	return args.Get(0).(*domain.ClipStream), args.Error(1)
}
