package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vk/stockgraph/internal/config"
	"github.com/vk/stockgraph/internal/ctxlog"
	"github.com/vk/stockgraph/internal/display"
	"github.com/vk/stockgraph/internal/metrics"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	opener   display.Opener
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

// NewApp is the constructor for the main application. Command output goes
// to outW and logs to logW. It returns a fully initialized App instance,
// including its own isolated logger and metrics registry.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, opener display.Opener) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	reg := prometheus.NewRegistry()
	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		loader:   loader,
		opener:   opener,
		registry: reg,
		metrics:  metrics.New(reg),
	}
}

func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
