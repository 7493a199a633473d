package video

import (
	"errors"
	"net/http"

	"github.com/SeishiUwU/FleetGuard/internal/core/domain"
	"github.com/go-chi/chi/v5"
)

// GetVideoV1 is the function that handles a single clip lookup
func (h *HandlerV1) GetVideoV1(w http.ResponseWriter, r *http.Request) {

	videoID := chi.URLParam(r, "videoID")
	if videoID == "" {
		h.writeError(w, http.StatusBadRequest, "video id is required")
		return
	}

	clip, err := h.catalogService.GetClip(r.Context(), videoID)
	switch {
	case errors.Is(err, domain.ErrClipNotFound):
		h.writeError(w, http.StatusNotFound, "Video not found")
		return
	case err != nil:
		h.logger.Error("error getting video", "video_id", videoID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	default:
		h.writeJSON(w, http.StatusOK, V1Envelope{Success: true, Data: toV1VideoResponse(*clip)})
		return
	}
}
