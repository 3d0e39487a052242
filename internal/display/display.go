// Package display shows a rendered figure to the user by handing it to the
// platform's default viewer.
package display

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/vk/stockgraph/internal/ctxlog"
)

// ErrNoDisplay is returned when no graphical session is available.
var ErrNoDisplay = errors.New("no graphical display available")

// Opener shows a file to the user.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// System opens files with the platform viewer: xdg-open on Linux and BSDs,
// open on macOS and the URL handler on Windows.
type System struct {
	// GOOS overrides runtime.GOOS. Empty means the running platform.
	GOOS string
	// Getenv looks up environment variables. Nil means os.Getenv.
	Getenv func(string) string
	// Command builds the process to run. Nil means exec.CommandContext.
	Command func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// Open launches the viewer and waits for the launcher to return. Viewers
// that detach from the launcher keep the figure on screen after Open returns.
func (s System) Open(ctx context.Context, path string) error {
	logger := ctxlog.FromContext(ctx)

	name, args, err := s.viewer(path)
	if err != nil {
		return err
	}

	command := s.Command
	if command == nil {
		command = exec.CommandContext
	}
	logger.Debug("Launching figure viewer.", "viewer", name, "path", path)
	if out, err := command(ctx, name, args...).CombinedOutput(); err != nil {
		return fmt.Errorf("failed to open %s with %s: %w (%s)", path, name, err, out)
	}
	logger.Info("Figure opened in viewer.", "path", path)
	return nil
}

// viewer picks the launcher for the platform.
func (s System) viewer(path string) (string, []string, error) {
	goos := s.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	getenv := s.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	switch goos {
	case "darwin":
		return "open", []string{path}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		if getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == "" {
			return "", nil, fmt.Errorf("%w: neither DISPLAY nor WAYLAND_DISPLAY is set", ErrNoDisplay)
		}
		return "xdg-open", []string{path}, nil
	default:
		return "", nil, fmt.Errorf("%w: unsupported platform %s", ErrNoDisplay, goos)
	}
}
