package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/stockgraph/internal/ctxlog"
	"github.com/vk/stockgraph/internal/outline"
	"github.com/vk/stockgraph/internal/server"
)

// Render draws the figure, writes the configured exports and then shows it
// in the system viewer when display is enabled.
func (a *App) Render(ctx context.Context) error {
	ctx = a.withLogger(ctx)
	a.logger.Debug("App.Render method started.")

	_, _, fig, err := a.figure(ctx)
	if err != nil {
		return err
	}

	exports := a.config.exports()
	for _, path := range exports {
		if err := fig.Save(path); err != nil {
			return fmt.Errorf("failed to export figure: %w", err)
		}
		a.logger.Info("Figure exported.", "path", path)
	}

	if !a.config.Display {
		if len(exports) == 0 {
			a.logger.Warn("Display disabled and no exports configured, nothing was written.")
		}
		a.logger.Debug("App.Render method finished.")
		return nil
	}

	if err := a.show(ctx, fig); err != nil {
		return err
	}
	a.logger.Debug("App.Render method finished.")
	return nil
}

// show writes a PNG to a temporary file and hands it to the opener. The
// file is left in place for the viewer.
func (a *App) show(ctx context.Context, fig *timedFigure) error {
	logger := ctxlog.FromContext(ctx)

	f, err := os.CreateTemp("", "stockgraph-*.png")
	if err != nil {
		return fmt.Errorf("failed to create display file: %w", err)
	}
	path := f.Name()
	if err := fig.Encode(f, "png"); err != nil {
		f.Close()
		return fmt.Errorf("failed to write display file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write display file: %w", err)
	}
	logger.Debug("Display file written.", "path", path)

	if err := a.opener.Open(ctx, path); err != nil {
		return fmt.Errorf("failed to display figure: %w", err)
	}
	return nil
}

// Tree prints the hierarchy outline to the app's output.
func (a *App) Tree(ctx context.Context) error {
	ctx = a.withLogger(ctx)
	a.logger.Debug("App.Tree method started.")

	g, err := a.buildGraph(ctx)
	if err != nil {
		return err
	}
	if err := outline.Write(a.outW, g); err != nil {
		return fmt.Errorf("failed to write outline: %w", err)
	}

	a.logger.Debug("App.Tree method finished.")
	return nil
}

// Serve renders the figure once and serves it until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	ctx = a.withLogger(ctx)
	a.logger.Debug("App.Serve method started.")

	g, pos, fig, err := a.figure(ctx)
	if err != nil {
		return err
	}
	snap, err := server.NewSnapshot(ctx, fig, g, pos, a.config.Title)
	if err != nil {
		return err
	}

	srv := server.New(ctx, snap, a.metrics, a.registry)
	if err := srv.Run(ctx, a.config.Addr); err != nil {
		return err
	}

	a.logger.Info("🏁 Figure server stopped.")
	return nil
}
