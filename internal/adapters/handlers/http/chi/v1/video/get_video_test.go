package video_test

import (
	"encoding/json"
	"errors"
	http2 "net/http"
	"net/http/httptest"
	"testing"
	"time"

	video2 "github.com/SeishiUwU/FleetGuard/internal/adapters/handlers/http/chi/v1/video"
	"github.com/SeishiUwU/FleetGuard/internal/core/domain"
	"github.com/SeishiUwU/FleetGuard/internal/core/service/catalog"
	"github.com/SeishiUwU/FleetGuard/internal/core/service/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type videoEnvelope struct {
	Success bool                   `json:"success"`
	Data    video2.V1VideoResponse `json:"data"`
	Error   string                 `json:"error"`
}

func TestGetVideoV1(t *testing.T) {

	t.Run("success - returns clip metadata", func(t *testing.T) {
		// Arrange
		clip := &domain.ClipRecord{
			ID:        domain.EncodeClipID("event.mp4"),
			Filename:  "event.mp4",
			Path:      "/videos/event.mp4",
			SizeBytes: 1234,
			CreatedAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
			MimeType:  "video/mp4",
		}

		mockCatalog := catalog.NewMockCatalogService()
		mockCatalog.On("GetClip", mock.Anything, clip.ID).Return(clip, nil)

		h := newTestRouter(t, mockCatalog, stream.NewMockStreamService())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/videos/"+clip.ID, nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)

		var response videoEnvelope
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, clip.ID, response.Data.ID)
		assert.Equal(t, "event.mp4", response.Data.Filename)
		assert.Equal(t, uint64(1234), response.Data.SizeBytes)
		assert.Equal(t, "video/mp4", response.Data.MimeType)

		mockCatalog.AssertExpectations(t)
	})

	t.Run("error - video not found", func(t *testing.T) {
		// Arrange
		mockCatalog := catalog.NewMockCatalogService()
		mockCatalog.On("GetClip", mock.Anything, "nonexistent").
			Return((*domain.ClipRecord)(nil), domain.ErrClipNotFound)

		h := newTestRouter(t, mockCatalog, stream.NewMockStreamService())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/videos/nonexistent", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNotFound, w.Code)

		var response videoEnvelope
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, "Video not found", response.Error)
	})

	t.Run("error - unexpected failure", func(t *testing.T) {
		// Arrange
		mockCatalog := catalog.NewMockCatalogService()
		mockCatalog.On("GetClip", mock.Anything, mock.Anything).
			Return((*domain.ClipRecord)(nil), errors.New("boom"))

		h := newTestRouter(t, mockCatalog, stream.NewMockStreamService())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/videos/some-id", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusInternalServerError, w.Code)

		var response videoEnvelope
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.Equal(t, "Internal Server Error", response.Error)
	})
}
