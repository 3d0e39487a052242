package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/vk/stockgraph/internal/builder"
	"github.com/vk/stockgraph/internal/catalog"
	"github.com/vk/stockgraph/internal/ctxlog"
	"github.com/vk/stockgraph/internal/graph"
	"github.com/vk/stockgraph/internal/layout"
	"github.com/vk/stockgraph/internal/metrics"
	"github.com/vk/stockgraph/internal/render"
)

// loadCatalog returns the catalog from the configured files, or the
// built-in one when none are configured.
func (a *App) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	logger := ctxlog.FromContext(ctx)
	if len(a.config.CatalogPaths) == 0 {
		logger.Debug("No catalog paths configured, using the built-in catalog.")
		return catalog.Default(), nil
	}
	cat, err := a.loader.Load(ctx, a.config.CatalogPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

// buildGraph loads and checks the catalog, then builds its graph. Catalog
// issues are logged as warnings, or returned in strict mode.
func (a *App) buildGraph(ctx context.Context) (*graph.Graph, error) {
	logger := ctxlog.FromContext(ctx)

	cat, err := a.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	issues := cat.Validate()
	for _, issue := range issues {
		logger.Warn("Catalog issue.", "kind", issue.Kind.String(), "entry", issue.Index, "label", issue.Label, "message", issue.Message)
	}
	if len(issues) > 0 && a.config.Strict {
		return nil, fmt.Errorf("%w: catalog has %d issue(s): %w", ErrInvalidInput, len(issues), issues.Err())
	}

	g, err := builder.Build(ctx, cat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	a.metrics.ObserveGraph(g)
	logger.Debug("Graph built.", "node_count", g.NodeCount(), "edge_count", g.EdgeCount(), "components", len(g.Components()))
	return g, nil
}

// computeLayout runs the configured layout and records its duration.
func (a *App) computeLayout(ctx context.Context, g *graph.Graph) (layout.Positions, error) {
	logger := ctxlog.FromContext(ctx)

	fn, err := layout.Lookup(a.config.Layout)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	start := time.Now()
	pos, err := fn(ctx, g, a.config.Params)
	if err != nil {
		return nil, fmt.Errorf("layout failed: %w", err)
	}
	a.metrics.ObserveLayout(a.config.Layout, time.Since(start))
	logger.Debug("Layout computed.", "layout", a.config.Layout, "node_count", len(pos), "duration", time.Since(start))
	return pos, nil
}

// figure runs the full pipeline up to a drawn figure.
func (a *App) figure(ctx context.Context) (*graph.Graph, layout.Positions, *timedFigure, error) {
	g, err := a.buildGraph(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	pos, err := a.computeLayout(ctx, g)
	if err != nil {
		return nil, nil, nil, err
	}
	fig, err := render.Draw(g, pos, a.config.renderOptions())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to draw figure: %w", err)
	}
	return g, pos, &timedFigure{fig: fig, m: a.metrics}, nil
}

// timedFigure records every encode in the render metrics.
type timedFigure struct {
	fig *render.Figure
	m   *metrics.Metrics
}

// Encode writes the figure in format.
func (t *timedFigure) Encode(w io.Writer, format string) error {
	start := time.Now()
	err := t.fig.Encode(w, format)
	t.m.ObserveRender(format, time.Since(start), err)
	return err
}

// Save writes the figure to path, choosing the format from its extension.
func (t *timedFigure) Save(path string) error {
	format, err := render.FormatOf(path)
	if err != nil {
		return err
	}
	start := time.Now()
	err = t.fig.Save(path)
	t.m.ObserveRender(format, time.Since(start), err)
	return err
}
