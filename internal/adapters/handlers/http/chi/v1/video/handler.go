package video

import (
	"log/slog"

	"github.com/SeishiUwU/FleetGuard/internal/core/port"
	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 video routes
type HandlerV1 struct {
	catalogService port.CatalogService
	streamService  port.StreamService
	logger         *slog.Logger
}

// NewVideoHandlerV1 creates HandlerV1
func NewVideoHandlerV1(catalog port.CatalogService, stream port.StreamService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		catalogService: catalog,
		streamService:  stream,
		logger:         logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.ListVideosV1)
	router.Get("/{videoID}", h.GetVideoV1)
	router.Get("/{videoID}/stream", h.StreamVideoV1)

	return router
}
