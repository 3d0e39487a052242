package builder

import (
	"context"
	"fmt"

	"github.com/vk/stockgraph/internal/catalog"
	"github.com/vk/stockgraph/internal/ctxlog"
	"github.com/vk/stockgraph/internal/graph"
	"github.com/vk/stockgraph/internal/nodeid"
)

// Build constructs the hierarchy graph for a catalog. It fails fast on the
// first malformed entry.
func Build(ctx context.Context, cat *catalog.Catalog) (*graph.Graph, error) {
	g := graph.New()
	if err := BuildInto(ctx, g, cat); err != nil {
		return nil, err
	}
	return g, nil
}

// BuildInto adds the nodes and edges of a catalog to an existing graph.
func BuildInto(ctx context.Context, g *graph.Graph, cat *catalog.Catalog) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.", "entries", cat.Len())

	entries := cat.Entries()
	for i, e := range entries {
		if err := catalog.CheckEntry(e); err != nil {
			return fmt.Errorf("catalog entry %d (%q): %w", i, e.Symbol, err)
		}
	}

	// First pass: create all nodes.
	for _, e := range entries {
		for _, key := range keysOf(e) {
			g.AddNode(key)
		}
	}
	logger.Debug("Build: Node creation complete.", "node_count", g.NodeCount())

	// Second pass: link the hierarchy.
	for i, e := range entries {
		k := keysOf(e)
		if err := g.AddEdge(k[1], k[0]); err != nil {
			return fmt.Errorf("failed to link industry for entry %d: %w", i, err)
		}
		if err := g.AddEdge(k[2], k[1]); err != nil {
			return fmt.Errorf("failed to link stock for entry %d: %w", i, err)
		}
	}
	logger.Debug("Build: Node linking complete.", "edge_count", g.EdgeCount())

	logger.Info("Build: Graph construction successful.", "node_count", g.NodeCount(), "edge_count", g.EdgeCount())
	return nil
}

// keysOf interns an entry's labels, ordered sector, industry, stock.
func keysOf(e catalog.Entry) [3]nodeid.Key {
	return [3]nodeid.Key{
		nodeid.SectorKey(e.Sector),
		nodeid.IndustryKey(e.Industry),
		nodeid.StockKey(e.Symbol),
	}
}
