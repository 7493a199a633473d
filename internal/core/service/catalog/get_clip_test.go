package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SeishiUwU/FleetGuard/internal/adapters/storage"
	"github.com/SeishiUwU/FleetGuard/internal/core/domain"
	"github.com/SeishiUwU/FleetGuard/internal/core/service/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetClip(t *testing.T) {

	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success - round trip with listing", func(t *testing.T) {
		// Arrange
		mockStorage := storage.NewMockClipStorage()
		mockStorage.On("List", mock.Anything).Return([]domain.FileStat{
			{Name: "one.mp4", Path: "/videos/one.mp4", SizeBytes: 100, ModTime: base},
			{Name: "two.mkv", Path: "/videos/two.mkv", SizeBytes: 200, ModTime: base.Add(time.Minute)},
		}, nil)

		service := catalog.NewCatalogService(mockStorage)

		listed, err := service.ListClips(context.Background())
		require.NoError(t, err)
		require.Len(t, listed, 2)

		// Act
		clip, err := service.GetClip(context.Background(), listed[1].ID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, listed[1], *clip)
	})

	t.Run("error - unknown id", func(t *testing.T) {
		// Arrange
		mockStorage := storage.NewMockClipStorage()
		mockStorage.On("List", mock.Anything).Return([]domain.FileStat{
			{Name: "one.mp4", SizeBytes: 100, ModTime: base},
		}, nil)

		service := catalog.NewCatalogService(mockStorage)

		// Act
		_, err := service.GetClip(context.Background(), "nonexistent")

		// Assert
		assert.True(t, errors.Is(err, domain.ErrClipNotFound))
	})

	t.Run("error - storage unavailable", func(t *testing.T) {
		// Arrange
		mockStorage := storage.NewMockClipStorage()
		mockStorage.On("List", mock.Anything).
			Return([]domain.FileStat(nil), domain.ErrCatalogUnavailable)

		service := catalog.NewCatalogService(mockStorage)

		// Act
		_, err := service.GetClip(context.Background(), domain.EncodeClipID("one.mp4"))

		// Assert
		assert.True(t, errors.Is(err, domain.ErrCatalogUnavailable))
	})
}
