package chi_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	router "github.com/SeishiUwU/FleetGuard/internal/adapters/handlers/http/chi"
	"github.com/SeishiUwU/FleetGuard/internal/adapters/handlers/http/chi/v1/video"
	"github.com/SeishiUwU/FleetGuard/internal/core/service/catalog"
	"github.com/SeishiUwU/FleetGuard/internal/core/service/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, mediaRoot string) http.Handler {
	t.Helper()
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := video.NewVideoHandlerV1(catalog.NewMockCatalogService(), stream.NewMockStreamService(), discardLogger)
	return router.NewRouter(discardLogger, handler, mediaRoot, "")
}

func TestHealth(t *testing.T) {
	// Arrange
	h := newRouter(t, t.TempDir())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	// Act
	h.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var response router.StatusResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, "Server is running", response.Message)
}

func TestNotFoundRoute(t *testing.T) {
	// Arrange
	h := newRouter(t, t.TempDir())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)

	// Act
	h.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)

	var response router.StatusResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	assert.False(t, response.Success)
	assert.Equal(t, "Route not found", response.Error)
}

func TestStaticVideos(t *testing.T) {

	t.Run("serves files straight from the media dir", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "clip.mp4"), []byte("static body"), 0o644))

		h := newRouter(t, dir)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/static/videos/clip.mp4", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "static body", w.Body.String())
	})

	t.Run("missing file is a 404", func(t *testing.T) {
		// Arrange
		h := newRouter(t, t.TempDir())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/static/videos/missing.mp4", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
