package stream

import (
	"context"

	"github.com/SeishiUwU/FleetGuard/internal/core/domain"
)

func (s *streamService) Open(ctx context.Context, id string, rangeHeader string) (*domain.ClipStream, error) {

	clip, err := s.catalog.GetClip(ctx, id)
	if err != nil {
		return nil, err
	}

	if rangeHeader == "" {
		body, err := s.storage.OpenRange(ctx, clip.Filename, 0, clip.SizeBytes)
		if err != nil {
			return nil, err
		}
		var end uint64
		if clip.SizeBytes > 0 {
			end = clip.SizeBytes - 1
		}
		return &domain.ClipStream{Clip: *clip, Start: 0, End: end, Partial: false, Body: body}, nil
	}

	start, end, err := parseRange(rangeHeader, clip.SizeBytes)
	if err != nil {
		return nil, err
	}

	// The file is opened before the handler writes any header bytes, so an
	// open failure here still surfaces as a clean error response.
	body, err := s.storage.OpenRange(ctx, clip.Filename, start, end-start+1)
	if err != nil {
		return nil, err
	}

	return &domain.ClipStream{Clip: *clip, Start: start, End: end, Partial: true, Body: body}, nil
}
