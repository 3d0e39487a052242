package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/stockgraph/internal/app"
)

func TestParse_NoArgumentsRendersAndDisplays(t *testing.T) {
	// --- Act ---
	inv, shouldExit, err := Parse(nil, &bytes.Buffer{})

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, CommandRender, inv.Command)
	assert.True(t, inv.Config.Display)
	assert.Empty(t, inv.Config.CatalogPaths)
	assert.Equal(t, "spring", inv.Config.Layout)
	assert.Equal(t, 200, inv.Config.DPI)
	assert.Equal(t, "json", inv.Config.LogFormat)
	assert.Equal(t, "info", inv.Config.LogLevel)
}

func TestParse_RenderFlags(t *testing.T) {
	// --- Arrange ---
	args := []string{
		"render",
		"-c", "a.hcl", "--catalog", "dir",
		"--png", "out.png", "--svg", "out.svg", "--pdf", "out.pdf",
		"--no-display", "--layout", "circular",
		"--k", "0.3", "--iterations", "50", "--seed", "7",
		"--dpi", "96", "--title", "Mine", "--strict",
		"--log-level", "DEBUG", "--log-format", "text",
	}

	// --- Act ---
	inv, shouldExit, err := Parse(args, &bytes.Buffer{})

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	cfg := inv.Config
	assert.Equal(t, CommandRender, inv.Command)
	assert.Equal(t, []string{"a.hcl", "dir"}, cfg.CatalogPaths)
	assert.Equal(t, "out.png", cfg.PNGPath)
	assert.Equal(t, "out.svg", cfg.SVGPath)
	assert.Equal(t, "out.pdf", cfg.PDFPath)
	assert.False(t, cfg.Display)
	assert.Equal(t, "circular", cfg.Layout)
	assert.Equal(t, 0.3, cfg.Params.K)
	assert.Equal(t, 50, cfg.Params.Iterations)
	assert.Equal(t, uint64(7), cfg.Params.Seed)
	assert.Equal(t, 96, cfg.DPI)
	assert.Equal(t, "Mine", cfg.Title)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestParse_RootAcceptsRenderFlags(t *testing.T) {
	inv, _, err := Parse([]string{"--no-display", "--svg", "x.svg"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, CommandRender, inv.Command)
	assert.False(t, inv.Config.Display)
	assert.Equal(t, "x.svg", inv.Config.SVGPath)
}

func TestParse_TreeAndServe(t *testing.T) {
	inv, _, err := Parse([]string{"tree", "-c", "stocks.yaml"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, CommandTree, inv.Command)
	assert.Equal(t, []string{"stocks.yaml"}, inv.Config.CatalogPaths)

	inv, _, err = Parse([]string{"serve", "--addr", "127.0.0.1:9000", "--layout", "circular"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, CommandServe, inv.Command)
	assert.Equal(t, "127.0.0.1:9000", inv.Config.Addr)
	assert.Equal(t, "circular", inv.Config.Layout)
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}

	inv, shouldExit, err := Parse([]string{"--help"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, inv)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "serve")
}

func TestParse_UsageErrors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"--bogus"}, wantMsg: "unknown flag: --bogus"},
		{name: "unknown command", args: []string{"draw"}, wantMsg: `unknown command "draw"`},
		{name: "bad number", args: []string{"--k", "lots"}, wantMsg: "invalid argument"},
		{name: "tree has no png", args: []string{"tree", "--png", "x.png"}, wantMsg: "unknown flag: --png"},
		{name: "bad log level", args: []string{"--log-level", "trace"}, wantMsg: "invalid log-level"},
		{name: "bad layout", args: []string{"render", "--layout", "kamada"}, wantMsg: "unknown layout"},
		{name: "wrong extension", args: []string{"--png", "x.svg"}, wantMsg: "must end in .png"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			require.Error(t, err)
			assert.False(t, shouldExit)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

func TestUsageError(t *testing.T) {
	err := UsageError(app.ErrInvalidInput)

	assert.Equal(t, 2, err.Code)
	assert.Equal(t, "invalid input", err.Error())
}
