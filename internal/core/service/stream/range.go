package stream

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SeishiUwU/FleetGuard/internal/core/domain"
)

// parseRange interprets a Range header of the form "bytes=<start>-<end>"
// against a clip of the given size and returns the inclusive byte bounds to
// serve. Only the first range clause is honored; multipart range responses
// are not supported. An end past the last byte is clamped, an out-of-bounds
// start or an unparseable header yields domain.ErrRangeNotSatisfiable.
func parseRange(header string, size uint64) (uint64, uint64, error) {

	spec, ok := strings.CutPrefix(header, "bytes=")
	if !ok {
		return 0, 0, fmt.Errorf("%w: unsupported range unit in %q", domain.ErrRangeNotSatisfiable, header)
	}

	// First clause only.
	if i := strings.IndexByte(spec, ','); i >= 0 {
		spec = spec[:i]
	}

	startStr, endStr, ok := strings.Cut(strings.TrimSpace(spec), "-")
	if !ok {
		return 0, 0, fmt.Errorf("%w: malformed range %q", domain.ErrRangeNotSatisfiable, header)
	}

	start, err := strconv.ParseUint(strings.TrimSpace(startStr), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid range start %q", domain.ErrRangeNotSatisfiable, header)
	}

	if size == 0 || start >= size {
		return 0, 0, fmt.Errorf("%w: start %d beyond size %d", domain.ErrRangeNotSatisfiable, start, size)
	}

	end := size - 1
	if endStr = strings.TrimSpace(endStr); endStr != "" {
		end, err = strconv.ParseUint(endStr, 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: invalid range end %q", domain.ErrRangeNotSatisfiable, header)
		}
		if end > size-1 {
			end = size - 1
		}
	}

	if start > end {
		return 0, 0, fmt.Errorf("%w: start %d after end %d", domain.ErrRangeNotSatisfiable, start, end)
	}

	return start, end, nil
}
