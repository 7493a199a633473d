package catalog

import (
	"context"

	"github.com/SeishiUwU/FleetGuard/internal/core/domain"
)

// GetClip resolves id against a fresh scan, using the same id derivation as
// ListClips so the two can never disagree.
func (c *catalogService) GetClip(ctx context.Context, id string) (*domain.ClipRecord, error) {

	clips, err := c.ListClips(ctx)
	if err != nil {
		return nil, err
	}

	for i := range clips {
		if clips[i].ID == id {
			return &clips[i], nil
		}
	}

	return nil, domain.ErrClipNotFound
}
