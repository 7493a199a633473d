package video

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SeishiUwU/FleetGuard/internal/core/domain"
)

// ListVideosV1 is the function that handles the catalog listing
func (h *HandlerV1) ListVideosV1(w http.ResponseWriter, r *http.Request) {

	clips, err := h.catalogService.ListClips(r.Context())
	switch {
	case errors.Is(err, domain.ErrCatalogUnavailable):
		h.logger.Error("catalog unavailable", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to read video directory")
		return
	case err != nil:
		h.logger.Error("error listing videos", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	default:
		resp := make([]V1VideoResponse, 0, len(clips))
		for _, clip := range clips {
			resp = append(resp, toV1VideoResponse(clip))
		}
		h.writeJSON(w, http.StatusOK, V1Envelope{
			Success: true,
			Data:    resp,
			Message: fmt.Sprintf("Found %d videos", len(resp)),
		})
		return
	}
}
