package stream

import (
	"github.com/SeishiUwU/FleetGuard/internal/core/port"
)

type streamService struct {
	catalog port.CatalogService
	storage port.ClipStorage
}

// NewStreamService creates a new stream service
func NewStreamService(catalog port.CatalogService, storage port.ClipStorage) port.StreamService {
	return &streamService{catalog: catalog, storage: storage}
}
