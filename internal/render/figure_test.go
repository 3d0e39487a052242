package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/stockgraph/internal/builder"
	"github.com/vk/stockgraph/internal/catalog"
	"github.com/vk/stockgraph/internal/ctxlog"
	"github.com/vk/stockgraph/internal/graph"
	"github.com/vk/stockgraph/internal/layout"
	"github.com/vk/stockgraph/internal/nodeid"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/vg"
)

// smallOptions keeps raster tests fast.
func smallOptions() Options {
	opts := DefaultOptions()
	opts.Width = 4 * vg.Inch
	opts.Height = 3 * vg.Inch
	opts.DPI = 50
	return opts
}

func laidOut(t *testing.T, cat *catalog.Catalog) (*graph.Graph, layout.Positions) {
	t.Helper()
	ctx := ctxlog.Discard(context.Background())
	g, err := builder.Build(ctx, cat)
	require.NoError(t, err)
	pos, err := layout.Spring(ctx, g, layout.DefaultParams())
	require.NoError(t, err)
	return g, pos
}

func TestDraw_RecordsPartitionAndEdges(t *testing.T) {
	g, pos := laidOut(t, catalog.Default())

	fig, err := Draw(g, pos, smallOptions())

	require.NoError(t, err)
	assert.Len(t, fig.Partition.Sectors, 4)
	assert.Len(t, fig.Partition.Industries, 11)
	assert.Len(t, fig.Partition.Stocks, 14)
	assert.Equal(t, g.EdgeCount(), fig.Edges)
}

func TestEncode_PNG(t *testing.T) {
	g, pos := laidOut(t, catalog.Default())
	fig, err := Draw(g, pos, smallOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fig.Encode(&buf, "png"))

	cfg, format, err := image.DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 200, cfg.Width, "4in at 50 DPI")
	assert.Equal(t, 150, cfg.Height, "3in at 50 DPI")
}

func TestEncode_SVG(t *testing.T) {
	g, pos := laidOut(t, catalog.Default())
	fig, err := Draw(g, pos, smallOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fig.Encode(&buf, "svg"))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "NVDA")
	assert.Contains(t, out, "Sectors")
}

func TestEncode_PDF(t *testing.T) {
	// --- Arrange ---
	g, pos := laidOut(t, catalog.Default())
	fig, err := Draw(g, pos, smallOptions())
	require.NoError(t, err)
	require.Equal(t, xfont.WeightBold, fig.plot.Title.TextStyle.Font.Weight)

	// --- Act ---
	var buf bytes.Buffer
	err = fig.Encode(&buf, "pdf")

	// --- Assert ---
	require.NoError(t, err, "bold title and labels must not break the pdf canvas")
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Equal(t, xfont.WeightBold, fig.plot.Title.TextStyle.Font.Weight, "title weight restored")
	for _, style := range fig.labels.TextStyle {
		assert.Equal(t, xfont.WeightBold, style.Font.Weight, "label weight restored")
	}
}

func TestEncode_PDFThenSVGKeepsBold(t *testing.T) {
	g, pos := laidOut(t, catalog.Default())
	fig, err := Draw(g, pos, smallOptions())
	require.NoError(t, err)
	require.NoError(t, fig.Encode(&bytes.Buffer{}, "pdf"))

	var buf bytes.Buffer
	require.NoError(t, fig.Encode(&buf, "svg"))

	assert.Contains(t, buf.String(), "bold")
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	g, pos := laidOut(t, catalog.Default())
	fig, err := Draw(g, pos, smallOptions())
	require.NoError(t, err)

	err = fig.Encode(&bytes.Buffer{}, "gif")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestSave(t *testing.T) {
	g, pos := laidOut(t, catalog.Default())
	fig, err := Draw(g, pos, smallOptions())
	require.NoError(t, err)
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "out", "bubble_planet_network.png")
	svgPath := filepath.Join(dir, "bubble_planet_network.svg")
	require.NoError(t, fig.Save(pngPath))
	require.NoError(t, fig.Save(svgPath))

	data, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")), "png signature")

	info, err := os.Stat(svgPath)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())

	err = fig.Save(filepath.Join(dir, "figure.bmp"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDraw_MissingPosition(t *testing.T) {
	g, pos := laidOut(t, catalog.Default())
	delete(pos, nodeid.StockKey("NVDA"))

	_, err := Draw(g, pos, smallOptions())

	require.ErrorIs(t, err, ErrMissingPosition)
	assert.Contains(t, err.Error(), "stock/NVDA")
}

func TestDraw_SingleNodeGraph(t *testing.T) {
	g := graph.New()
	g.AddNode(nodeid.SectorKey("Utilities"))
	pos := layout.Positions{nodeid.SectorKey("Utilities"): {}}

	fig, err := Draw(g, pos, smallOptions())
	require.NoError(t, err)
	require.NoError(t, fig.Encode(&bytes.Buffer{}, "svg"))
	assert.Equal(t, -0.5, fig.plot.X.Min)
	assert.Equal(t, 0.5, fig.plot.X.Max)
}

func TestDraw_RangeIsLayoutExtent(t *testing.T) {
	g, pos := laidOut(t, catalog.Default())
	lo, hi := pos.Bounds()

	fig, err := Draw(g, pos, smallOptions())

	require.NoError(t, err)
	assert.Equal(t, lo.X, fig.plot.X.Min)
	assert.Equal(t, hi.X, fig.plot.X.Max)
	assert.Equal(t, lo.Y, fig.plot.Y.Min)
	assert.Equal(t, hi.Y, fig.plot.Y.Max)
}

func TestOptions_Validate(t *testing.T) {
	require.NoError(t, DefaultOptions().Validate())

	opts := DefaultOptions()
	opts.DPI = 0
	delete(opts.Styles, nodeid.Stock)
	err := opts.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dpi")
	assert.Contains(t, err.Error(), "stock")
}

func TestFormatOf(t *testing.T) {
	testCases := map[string]string{
		"figure.png":     "png",
		"FIGURE.SVG":     "svg",
		"dir/figure.pdf": "pdf",
	}
	for path, want := range testCases {
		got, err := FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatOf("figure")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestStyle(t *testing.T) {
	s := Style{Color: color.NRGBA{R: 10, G: 20, B: 30, A: 255}, Size: 1600, Alpha: 0.6}

	assert.Equal(t, vg.Points(20), s.Radius())
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 153}, s.Fill())
	assert.Len(t, DefaultStyles(), 3)
}
