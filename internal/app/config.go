package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/vk/stockgraph/internal/layout"
	"github.com/vk/stockgraph/internal/render"
)

// ErrInvalidInput marks errors caused by user input: bad configuration
// values or, in strict mode, an inconsistent catalog.
var ErrInvalidInput = errors.New("invalid input")

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	CatalogPaths []string // empty means the built-in catalog

	PNGPath string
	SVGPath string
	PDFPath string
	Display bool

	Layout string
	Params layout.Params

	Title string
	DPI   int

	Strict bool
	Addr   string

	LogFormat string
	LogLevel  string
}

// DefaultConfig returns the configuration of a bare invocation: the
// built-in catalog, a spring layout, shown in the system viewer.
func DefaultConfig() Config {
	return Config{
		Display:   true,
		Layout:    "spring",
		Params:    layout.DefaultParams(),
		Title:     render.DefaultTitle,
		DPI:       render.DefaultOptions().DPI,
		Addr:      ":8080",
		LogFormat: "json",
		LogLevel:  "info",
	}
}

// NewConfig validates cfg and returns a copy of it. Every failure wraps
// ErrInvalidInput.
func NewConfig(cfg Config) (*Config, error) {
	var errs []error

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		errs = append(errs, errors.New("invalid log-format: must be 'text' or 'json'"))
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, cfg.LogLevel) {
		errs = append(errs, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'"))
	}

	if _, err := layout.Lookup(cfg.Layout); err != nil {
		errs = append(errs, err)
	}
	if err := cfg.Params.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := cfg.renderOptions().Validate(); err != nil {
		errs = append(errs, err)
	}

	for _, out := range []struct{ format, path string }{
		{"png", cfg.PNGPath}, {"svg", cfg.SVGPath}, {"pdf", cfg.PDFPath},
	} {
		if out.path == "" {
			continue
		}
		if format, err := render.FormatOf(out.path); err != nil || format != out.format {
			errs = append(errs, fmt.Errorf("--%s path %q must end in .%s", out.format, out.path, out.format))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(errs...))
	}
	return &cfg, nil
}

// exports lists the configured output files in png, svg, pdf order.
func (c *Config) exports() []string {
	var out []string
	for _, p := range []string{c.PNGPath, c.SVGPath, c.PDFPath} {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) renderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.Title = c.Title
	opts.DPI = c.DPI
	return opts
}
