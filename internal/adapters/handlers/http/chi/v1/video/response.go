package video

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/SeishiUwU/FleetGuard/internal/core/domain"
)

// V1Envelope is the response envelope the dashboard UI consumes.
type V1Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// V1VideoResponse is the client view of one clip. The on-disk path stays
// server-side.
type V1VideoResponse struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	SizeBytes    uint64    `json:"size"`
	CreatedAt    time.Time `json:"createdAt"`
	MimeType     string    `json:"mimeType"`
}

func toV1VideoResponse(clip domain.ClipRecord) V1VideoResponse {
	return V1VideoResponse{
		ID:           clip.ID,
		Filename:     clip.Filename,
		OriginalName: clip.Filename,
		SizeBytes:    clip.SizeBytes,
		CreatedAt:    clip.CreatedAt,
		MimeType:     clip.MimeType,
	}
}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, envelope V1Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

func (h *HandlerV1) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, V1Envelope{Success: false, Error: message})
}
