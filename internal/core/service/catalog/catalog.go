package catalog

import (
	"github.com/SeishiUwU/FleetGuard/internal/core/port"
)

type catalogService struct {
	storage port.ClipStorage
}

// NewCatalogService creates a new catalog service
func NewCatalogService(storage port.ClipStorage) port.CatalogService {
	return &catalogService{storage: storage}
}
