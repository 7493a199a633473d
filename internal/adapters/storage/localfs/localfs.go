package localfs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/SeishiUwU/FleetGuard/internal/config"
	"github.com/SeishiUwU/FleetGuard/internal/core/domain"
)

// Adapter is a ClipStorage adapter over a local directory
type Adapter struct {
	root   string
	logger *slog.Logger
}

// NewAdapter returns Adapter rooted at the configured media directory,
// creating the directory if it does not exist yet.
func NewAdapter(cfg config.MediaConfig, logger *slog.Logger) (*Adapter, error) {
	root, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve media dir: %w", err)
	}

	info, err := os.Stat(root)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(root, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create media dir: %w", err)
		}
		logger.Info("created media directory", "dir", root)
	case err != nil:
		return nil, fmt.Errorf("failed to stat media dir: %w", err)
	case !info.IsDir():
		return nil, fmt.Errorf("media path %s is not a directory", root)
	}

	return &Adapter{root: root, logger: logger}, nil
}

// Root is the absolute path of the clip directory.
func (a *Adapter) Root() string {
	return a.root
}

// List returns every regular file directly under the root. Entries that
// disappear between the directory read and the stat are skipped rather than
// failing the whole listing.
func (a *Adapter) List(ctx context.Context) ([]domain.FileStat, error) {
	entries, err := os.ReadDir(a.root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	stats := make([]domain.FileStat, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		stats = append(stats, domain.FileStat{
			Name:      entry.Name(),
			Path:      filepath.Join(a.root, entry.Name()),
			SizeBytes: uint64(info.Size()),
			ModTime:   info.ModTime(),
		})
	}

	return stats, nil
}

// OpenRange opens filename and positions the reader at offset, limited to
// length bytes. filepath.Base keeps lookups inside the root.
func (a *Adapter) OpenRange(ctx context.Context, filename string, offset, length uint64) (io.ReadCloser, error) {
	path := filepath.Join(a.root, filepath.Base(filename))

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrClipNotFound
		}
		return nil, fmt.Errorf("failed to open clip %s: %w", filename, err)
	}

	if offset > 0 {
		if _, err := f.Seek(int64(offset), io.SeekStart); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to seek clip %s: %w", filename, err)
		}
	}

	return &rangeReader{r: io.LimitReader(f, int64(length)), f: f}, nil
}

// rangeReader bounds reads to the requested length while keeping the
// underlying file closable.
type rangeReader struct {
	r io.Reader
	f *os.File
}

func (r *rangeReader) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

func (r *rangeReader) Close() error {
	return r.f.Close()
}
