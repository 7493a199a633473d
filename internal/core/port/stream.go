package port

import (
	"context"

	"github.com/SeishiUwU/FleetGuard/internal/core/domain"
)

// StreamService is an interface to define stream service
type StreamService interface {
	// Open resolves id and opens a byte stream over the clip. rangeHeader is
	// the raw Range header value, or empty for a full-content stream.
	Open(ctx context.Context, id string, rangeHeader string) (*domain.ClipStream, error)
}
