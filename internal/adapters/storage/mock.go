package storage

import (
	"context"
	"io"

	"github.com/SeishiUwU/FleetGuard/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockClipStorage struct {
	mock.Mock
}

func NewMockClipStorage() *MockClipStorage {
	return &MockClipStorage{}
}

func (m *MockClipStorage) List(ctx context.Context) ([]domain.FileStat, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FileStat), args.Error(1)
}

func (m *MockClipStorage) OpenRange(ctx context.Context, filename string, offset, length uint64) (io.ReadCloser, error) {
	args := m.Called(ctx, filename, offset, length)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Error(1)
}
