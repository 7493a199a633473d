package video

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/SeishiUwU/FleetGuard/internal/core/domain"
	"github.com/go-chi/chi/v5"
)

// StreamVideoV1 is the function that serves clip bytes, honoring a single
// byte-range request so the browser player can seek.
func (h *HandlerV1) StreamVideoV1(w http.ResponseWriter, r *http.Request) {

	videoID := chi.URLParam(r, "videoID")
	if videoID == "" {
		h.writeError(w, http.StatusBadRequest, "video id is required")
		return
	}

	clipStream, err := h.streamService.Open(r.Context(), videoID, r.Header.Get("Range"))
	switch {
	case errors.Is(err, domain.ErrClipNotFound):
		h.writeError(w, http.StatusNotFound, "Video not found")
		return
	case errors.Is(err, domain.ErrRangeNotSatisfiable):
		h.writeError(w, http.StatusRequestedRangeNotSatisfiable, "Range not satisfiable")
		return
	case err != nil:
		h.logger.Error("error opening video stream", "video_id", videoID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	defer clipStream.Body.Close()

	w.Header().Set("Content-Type", clipStream.Clip.MimeType)
	if clipStream.Partial {
		w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", clipStream.Start, clipStream.End, clipStream.Clip.SizeBytes))
		w.Header().Set("Accept-Ranges", "bytes")
		w.Header().Set("Content-Length", strconv.FormatUint(clipStream.ChunkSize(), 10))
		w.WriteHeader(http.StatusPartialContent)
	} else {
		w.Header().Set("Content-Length", strconv.FormatUint(clipStream.Clip.SizeBytes, 10))
		w.WriteHeader(http.StatusOK)
	}

	// A failed copy after this point means the client went away or the disk
	// read broke mid-stream; headers are already out, so just stop.
	if _, err := io.Copy(w, clipStream.Body); err != nil {
		h.logger.Warn("video stream aborted", "video_id", videoID, "error", err)
	}
}
