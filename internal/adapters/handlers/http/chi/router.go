package chi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/SeishiUwU/FleetGuard/internal/adapters/handlers/http/chi/v1/video"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds http.Handler with chi. mediaRoot is also exposed directly
// under /static/videos for plain static serving.
func NewRouter(logger *slog.Logger, videoHandler *video.HandlerV1, mediaRoot string, env string) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	if env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "Range", "X-Request-ID"},
			ExposedHeaders:   []string{"Content-Range", "Accept-Ranges", "Content-Length"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Mount("/videos", videoHandler.Routes())
	})

	// Plain static access to the clip directory; range semantics here are
	// whatever http.FileServer provides.
	fileServer := http.StripPrefix("/static/videos", http.FileServer(http.Dir(mediaRoot)))
	r.Get("/static/videos/*", fileServer.ServeHTTP)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, StatusResponse{Success: true, Message: "Server is running"})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusNotFound, StatusResponse{Success: false, Error: "Route not found"})
	})

	return r
}

// StatusResponse is the envelope for health checks and routing errors.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeStatus(w http.ResponseWriter, status int, resp StatusResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
