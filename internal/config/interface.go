package config

import (
	"context"

	"github.com/vk/stockgraph/internal/catalog"
)

// Loader is the interface for a format-specific catalog loader.
type Loader interface {
	// Load reads the catalog entries from the given files, in order, and
	// returns them as one catalog.
	Load(ctx context.Context, paths ...string) (*catalog.Catalog, error)
}
