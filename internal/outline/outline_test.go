package outline

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/stockgraph/internal/builder"
	"github.com/vk/stockgraph/internal/catalog"
	"github.com/vk/stockgraph/internal/ctxlog"
	"github.com/vk/stockgraph/internal/graph"
)

func TestWrite_Hierarchy(t *testing.T) {
	// --- Arrange ---
	cat := catalog.New(
		catalog.Entry{Symbol: "NVDA", Industry: "Semiconductors", Sector: "Information Technology"},
		catalog.Entry{Symbol: "AMD", Industry: "Semiconductors", Sector: "Information Technology"},
		catalog.Entry{Symbol: "CEG", Industry: "Electric Utilities", Sector: "Utilities"},
	)
	g, err := builder.Build(ctxlog.Discard(context.Background()), cat)
	require.NoError(t, err)
	var buf bytes.Buffer

	// --- Act ---
	err = Write(&buf, g)

	// --- Assert ---
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Stocks: 2 sectors, 2 industries, 3 stocks")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	var names []string
	for _, l := range lines[1:] {
		names = append(names, strings.TrimSpace(strings.TrimLeft(l, " │├╰└─")))
	}
	assert.Equal(t, []string{
		"Information Technology",
		"Semiconductors",
		"NVDA",
		"AMD",
		"Utilities",
		"Electric Utilities",
		"CEG",
	}, names)

	// Nesting depth grows from sector to stock.
	assert.Less(t, strings.Index(lines[1], "Information"), strings.Index(lines[2], "Semiconductors"))
	assert.Less(t, strings.Index(lines[2], "Semiconductors"), strings.Index(lines[3], "NVDA"))
}

func TestWrite_NoColorForPlainWriter(t *testing.T) {
	g, err := builder.Build(ctxlog.Discard(context.Background()), catalog.Default())
	require.NoError(t, err)
	var buf bytes.Buffer

	require.NoError(t, Write(&buf, g))

	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "TGEN")
}

func TestWrite_EmptyGraph(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Write(&buf, graph.New()))

	assert.Contains(t, buf.String(), "Stocks: 0 sectors, 0 industries, 0 stocks")
}
