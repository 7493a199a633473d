package catalog

import (
	"context"

	"github.com/SeishiUwU/FleetGuard/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of CatalogService
type MockCatalogService struct {
	mock.Mock
}

// NewMockCatalogService creates a new MockCatalogService
func NewMockCatalogService() *MockCatalogService {
	return &MockCatalogService{}
}

func (m *MockCatalogService) ListClips(ctx context.Context) ([]domain.ClipRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ClipRecord), args.Error(1)
}

func (m *MockCatalogService) GetClip(ctx context.Context, id string) (*domain.ClipRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.ClipRecord), args.Error(1)
}
