package catalog

import (
	"context"
	"sort"

	"github.com/SeishiUwU/FleetGuard/internal/core/domain"
)

func (c *catalogService) ListClips(ctx context.Context) ([]domain.ClipRecord, error) {

	stats, err := c.storage.List(ctx)
	if err != nil {
		return nil, err
	}

	clips := make([]domain.ClipRecord, 0, len(stats))
	for _, stat := range stats {
		if !domain.IsClipFile(stat.Name) {
			continue
		}
		clips = append(clips, domain.ClipRecord{
			ID:        domain.EncodeClipID(stat.Name),
			Filename:  stat.Name,
			Path:      stat.Path,
			SizeBytes: stat.SizeBytes,
			CreatedAt: stat.ModTime,
			MimeType:  domain.MimeTypeFor(stat.Name),
		})
	}

	// Newest first; ties broken by filename so repeated scans are stable.
	sort.Slice(clips, func(i, j int) bool {
		if !clips[i].CreatedAt.Equal(clips[j].CreatedAt) {
			return clips[i].CreatedAt.After(clips[j].CreatedAt)
		}
		return clips[i].Filename < clips[j].Filename
	})

	return clips, nil
}
