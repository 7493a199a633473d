package port

import (
	"context"
	"io"

	"github.com/SeishiUwU/FleetGuard/internal/core/domain"
)

// ClipStorage is an interface to define clip storage interactions
type ClipStorage interface {
	// List returns the regular files currently present under the clip root.
	List(ctx context.Context) ([]domain.FileStat, error)
	// OpenRange opens filename and returns a reader covering length bytes
	// starting at offset. The caller must close the reader.
	OpenRange(ctx context.Context, filename string, offset, length uint64) (io.ReadCloser, error)
}
