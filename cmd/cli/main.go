package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vk/stockgraph/internal/app"
	"github.com/vk/stockgraph/internal/cli"
	"github.com/vk/stockgraph/internal/config"
	"github.com/vk/stockgraph/internal/display"
	"github.com/vk/stockgraph/internal/hcl"
	"github.com/vk/stockgraph/internal/yamlconf"
)

// main is the entrypoint for the stockgraph application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp is swapped out by tests.
var newApp = app.NewApp

// run encapsulates the main application logic for easier testing and error
// handling. Command output goes to outW and logs to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) (err error) {
	inv, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Recover startup panics to provide a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	// Instantiate the concrete loaders to pass to the app.
	loader := config.NewDispatcher().
		Register(hcl.NewLoader(), hcl.Extensions...).
		Register(yamlconf.NewLoader(), yamlconf.Extensions...)
	stockgraphApp := newApp(outW, logW, inv.Config, loader, display.System{})

	switch inv.Command {
	case cli.CommandTree:
		err = stockgraphApp.Tree(ctx)
	case cli.CommandServe:
		err = stockgraphApp.Serve(ctx)
	default:
		err = stockgraphApp.Render(ctx)
	}

	if errors.Is(err, app.ErrInvalidInput) {
		return cli.UsageError(err)
	}
	return err
}
