package port

import (
	"context"

	"github.com/SeishiUwU/FleetGuard/internal/core/domain"
)

// CatalogService is an interface to define catalog service
type CatalogService interface {
	// ListClips scans the clip directory and returns every supported clip,
	// newest first.
	ListClips(ctx context.Context) ([]domain.ClipRecord, error)
	// GetClip resolves a clip id against a fresh scan. Returns
	// domain.ErrClipNotFound when no current file matches.
	GetClip(ctx context.Context, id string) (*domain.ClipRecord, error)
}
