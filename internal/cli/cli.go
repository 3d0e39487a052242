package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vk/stockgraph/internal/app"
	"github.com/vk/stockgraph/internal/layout"
)

// Command names accepted on the command line.
const (
	CommandRender = "render"
	CommandTree   = "tree"
	CommandServe  = "serve"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// UsageError wraps err as an ExitError with exit code 2.
func UsageError(err error) *ExitError {
	return &ExitError{Code: 2, Message: err.Error()}
}

// Invocation is a parsed command line: which command to run and with
// what configuration.
type Invocation struct {
	Command string
	Config  *app.Config
}

// Parse processes command-line arguments. It returns the parsed
// invocation, a boolean indicating if the program should exit cleanly
// (help was printed), or an ExitError.
func Parse(args []string, output io.Writer) (*Invocation, bool, error) {
	slog.Debug("CLI parser started.")

	var inv *Invocation
	root := newRootCommand(func(command string, cfg app.Config) error {
		config, err := app.NewConfig(cfg)
		if err != nil {
			return err
		}
		inv = &Invocation{Command: command, Config: config}
		return nil
	})
	root.SetArgs(args)
	root.SetOut(output)
	root.SetErr(output)

	if err := root.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, UsageError(err)
	}

	if inv == nil {
		slog.Debug("No command ran, help or version was printed.")
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "command", inv.Command)
	return inv, false, nil
}

// newRootCommand builds the command tree. Each command validates nothing
// itself: it hands its flag values to accept.
func newRootCommand(accept func(command string, cfg app.Config) error) *cobra.Command {
	defaults := app.DefaultConfig()
	logLevel := defaults.LogLevel
	logFormat := defaults.LogFormat

	withLogging := func(cfg app.Config) app.Config {
		cfg.LogLevel = strings.ToLower(logLevel)
		cfg.LogFormat = strings.ToLower(logFormat)
		return cfg
	}

	rootCfg := defaults
	root := &cobra.Command{
		Use:   "stockgraph",
		Short: "Draw a sector, industry and stock network as a bubble-planet figure",
		Long: `stockgraph draws a three-tier network of market sectors, industries and
stocks. Sectors are the largest bubbles, industries orbit their sector and
stocks orbit their industry.

Without a command it renders the built-in catalog and opens it in the
system image viewer.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return accept(CommandRender, withLogging(rootCfg))
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	root.PersistentFlags().StringVar(&logFormat, "log-format", logFormat, "Log output format. Options: 'text' or 'json'.")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return UsageError(fmt.Errorf("%w\nRun '%s --help' for usage.", err, cmd.CommandPath()))
	})
	addRenderFlags(root, &rootCfg)

	renderCfg := defaults
	render := &cobra.Command{
		Use:   CommandRender,
		Short: "Render the figure, export it and show it (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return accept(CommandRender, withLogging(renderCfg))
		},
	}
	addRenderFlags(render, &renderCfg)

	treeCfg := defaults
	tree := &cobra.Command{
		Use:   CommandTree,
		Short: "Print the sector, industry and stock hierarchy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return accept(CommandTree, withLogging(treeCfg))
		},
	}
	addCatalogFlags(tree, &treeCfg)

	serveCfg := defaults
	serve := &cobra.Command{
		Use:   CommandServe,
		Short: "Serve the figure, its graph and metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return accept(CommandServe, withLogging(serveCfg))
		},
	}
	addCatalogFlags(serve, &serveCfg)
	addLayoutFlags(serve, &serveCfg)
	serve.Flags().StringVar(&serveCfg.Addr, "addr", serveCfg.Addr, "Address the figure server listens on.")

	root.AddCommand(render, tree, serve)
	return root
}

func addCatalogFlags(cmd *cobra.Command, cfg *app.Config) {
	cmd.Flags().StringArrayVarP(&cfg.CatalogPaths, "catalog", "c", nil, "Catalog file or directory (.hcl, .yaml, .yml, .json). Repeatable. Defaults to the built-in catalog.")
	cmd.Flags().BoolVar(&cfg.Strict, "strict", cfg.Strict, "Fail on catalog issues such as duplicate symbols or label collisions.")
}

func addLayoutFlags(cmd *cobra.Command, cfg *app.Config) {
	cmd.Flags().StringVar(&cfg.Layout, "layout", cfg.Layout, "Layout algorithm. Options: "+strings.Join(layout.Names(), ", ")+".")
	cmd.Flags().Float64Var(&cfg.Params.K, "k", cfg.Params.K, "Optimal distance between nodes for the spring layout.")
	cmd.Flags().IntVar(&cfg.Params.Iterations, "iterations", cfg.Params.Iterations, "Spring layout iterations.")
	cmd.Flags().Uint64Var(&cfg.Params.Seed, "seed", cfg.Params.Seed, "Seed for the spring layout's initial placement.")
	cmd.Flags().StringVar(&cfg.Title, "title", cfg.Title, "Figure title.")
	cmd.Flags().IntVar(&cfg.DPI, "dpi", cfg.DPI, "Resolution of PNG output.")
}

func addRenderFlags(cmd *cobra.Command, cfg *app.Config) {
	addCatalogFlags(cmd, cfg)
	addLayoutFlags(cmd, cfg)
	cmd.Flags().StringVar(&cfg.PNGPath, "png", "", "Write the figure as PNG to this path.")
	cmd.Flags().StringVar(&cfg.SVGPath, "svg", "", "Write the figure as SVG to this path.")
	cmd.Flags().StringVar(&cfg.PDFPath, "pdf", "", "Write the figure as PDF to this path.")
	noDisplay := cmd.Flags().Bool("no-display", false, "Do not open the figure in the system viewer.")
	cmd.PreRun = func(*cobra.Command, []string) {
		cfg.Display = !*noDisplay
	}
}
