package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/stockgraph/internal/app"
	"github.com/vk/stockgraph/internal/config"
	"github.com/vk/stockgraph/internal/hcl"
	"github.com/vk/stockgraph/internal/yamlconf"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// RecordingOpener is a display.Opener that remembers the paths it was asked
// to open instead of launching a viewer.
type RecordingOpener struct {
	mu    sync.Mutex
	Paths []string
	Err   error
}

// Open records path and returns the configured error.
func (o *RecordingOpener) Open(_ context.Context, path string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Paths = append(o.Paths, path)
	return o.Err
}

// HarnessResult holds the outcomes of an app run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	Opener    *RecordingOpener
}

// WriteFiles writes the given files below a fresh temporary directory and
// returns its path. Names are slash-separated paths relative to the root.
// Contents are unindented so tests can use indented literals.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(Unindent(content)), 0o644))
	}
	return root
}

// NewLoader returns the catalog loader the command line uses.
func NewLoader() *config.Dispatcher {
	return config.NewDispatcher().
		Register(hcl.NewLoader(), hcl.Extensions...).
		Register(yamlconf.NewLoader(), yamlconf.Extensions...)
}

// RunApp builds an App from cfg with debug logging and a recording opener,
// then runs it through fn.
func RunApp(t *testing.T, cfg app.Config, fn func(context.Context, *app.App) error) *HarnessResult {
	t.Helper()

	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"
	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return &HarnessResult{Err: err}
	}

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	opener := &RecordingOpener{}
	a := app.NewApp(out, logs, appConfig, NewLoader(), opener)

	runErr := fn(context.Background(), a)

	if os.Getenv("STOCKGRAPH_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
		Opener:    opener,
	}
}

// Unindent removes common leading whitespace from a multi-line string,
// allowing for readable, indented snippets in Go tests.
func Unindent(s string) string {
	lines := strings.Split(s, "\n")

	// Remove leading/trailing empty lines that are common with multi-line literals
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}

	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}

	var b strings.Builder
	for i, line := range lines {
		if len(line) >= minIndent && minIndent > 0 {
			line = line[minIndent:]
		} else if minIndent > 0 {
			line = strings.TrimSpace(line)
		}
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteRune('\n')
		}
	}
	b.WriteRune('\n')
	return b.String()
}
