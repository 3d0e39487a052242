package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/stockgraph/internal/graph"
	"github.com/vk/stockgraph/internal/layout"
	"github.com/vk/stockgraph/internal/nodeid"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

var (
	// ErrMissingPosition is returned when a node has no layout position.
	ErrMissingPosition = errors.New("node has no layout position")
	// ErrUnsupportedFormat is returned for output formats other than png, svg and pdf.
	ErrUnsupportedFormat = errors.New("unsupported figure format")
)

// Formats lists the supported output formats.
var Formats = []string{"png", "svg", "pdf"}

// Figure is a drawn graph ready to be encoded.
type Figure struct {
	plot   *plot.Plot
	labels *plotter.Labels
	opts   Options

	// Partition records which labels were drawn for each kind.
	Partition graph.Partition
	Edges     int
}

// Draw lays the graph out on a plot according to opts.
func Draw(g *graph.Graph, pos layout.Positions, opts Options) (*Figure, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render options: %w", err)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.Title.TextStyle.Font.Size = opts.TitleSize
	p.Title.TextStyle.Font.Weight = xfont.WeightBold
	p.HideAxes()
	p.Legend.Top = true
	p.Legend.Left = true

	at := func(key nodeid.Key) (plotter.XY, error) {
		v, ok := pos[key]
		if !ok {
			return plotter.XY{}, fmt.Errorf("%w: %s", ErrMissingPosition, key)
		}
		return plotter.XY{X: v.X, Y: v.Y}, nil
	}

	// Edges go first so markers are drawn over them.
	edgeColor := withAlpha(color.Black, opts.EdgeAlpha)
	edges := g.Edges()
	for _, e := range edges {
		from, err := at(e.From)
		if err != nil {
			return nil, err
		}
		to, err := at(e.To)
		if err != nil {
			return nil, err
		}
		line, err := plotter.NewLine(plotter.XYs{from, to})
		if err != nil {
			return nil, fmt.Errorf("failed to draw edge %s-%s: %w", e.From, e.To, err)
		}
		line.LineStyle.Width = opts.EdgeWidth
		line.LineStyle.Color = edgeColor
		p.Add(line)
	}

	part := graph.PartitionGraph(g)
	var (
		labelXYs plotter.XYs
		labels   []string
		text     *plotter.Labels
	)
	for _, kind := range nodeid.Kinds {
		names := part.Of(kind)
		if len(names) == 0 {
			continue
		}
		xys := make(plotter.XYs, 0, len(names))
		for _, name := range names {
			xy, err := at(nodeid.Key{Kind: kind, Name: name})
			if err != nil {
				return nil, err
			}
			xys = append(xys, xy)
		}

		style := opts.Styles[kind]
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("failed to draw %s nodes: %w", kind, err)
		}
		scatter.GlyphStyle = draw.GlyphStyle{
			Color:  style.Fill(),
			Radius: style.Radius(),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(scatter)
		p.Legend.Add(style.Label, scatter)

		labelXYs = append(labelXYs, xys...)
		labels = append(labels, names...)
	}

	if len(labels) > 0 {
		var err error
		text, err = plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labels})
		if err != nil {
			return nil, fmt.Errorf("failed to draw labels: %w", err)
		}
		for i := range text.TextStyle {
			text.TextStyle[i].Font.Size = opts.LabelSize
			text.TextStyle[i].Font.Weight = xfont.WeightBold
			text.TextStyle[i].XAlign = draw.XCenter
			text.TextStyle[i].YAlign = draw.YCenter
		}
		p.Add(text)
	}

	lo, hi := pos.Bounds()
	fitRange(&p.X, lo.X, hi.X)
	fitRange(&p.Y, lo.Y, hi.Y)

	return &Figure{plot: p, labels: text, opts: opts, Partition: part, Edges: len(edges)}, nil
}

// fitRange sets the axis to the extent of the layout. When drawing, the plot
// shrinks its data area until every marker and label box fits the canvas, so
// the drawing is cropped tight to its content.
func fitRange(a *plot.Axis, lo, hi float64) {
	if hi <= lo {
		lo, hi = lo-0.5, hi+0.5
	}
	a.Min, a.Max = lo, hi
}

// FormatOf derives the output format from a file name.
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range Formats {
		if ext == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Encode writes the figure to w in the given format. A Figure must not be
// encoded concurrently.
func (f *Figure) Encode(w io.Writer, format string) error {
	c, err := f.canvas(format)
	if err != nil {
		return err
	}
	if strings.EqualFold(format, "pdf") {
		// The PDF canvas only knows the regular Liberation faces.
		defer f.setWeight(xfont.WeightNormal)()
	}
	f.plot.Draw(draw.New(c))
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s figure: %w", format, err)
	}
	return nil
}

// Save encodes the figure to path, picking the format from its extension.
func (f *Figure) Save(path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := f.Encode(out, format); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// setWeight switches the title and labels to weight and returns a func
// restoring the previous weights.
func (f *Figure) setWeight(weight xfont.Weight) (restore func()) {
	title := f.plot.Title.TextStyle.Font.Weight
	f.plot.Title.TextStyle.Font.Weight = weight

	var labels []xfont.Weight
	if f.labels != nil {
		labels = make([]xfont.Weight, len(f.labels.TextStyle))
		for i := range f.labels.TextStyle {
			labels[i] = f.labels.TextStyle[i].Font.Weight
			f.labels.TextStyle[i].Font.Weight = weight
		}
	}

	return func() {
		f.plot.Title.TextStyle.Font.Weight = title
		for i, w := range labels {
			f.labels.TextStyle[i].Font.Weight = w
		}
	}
}

func (f *Figure) canvas(format string) (vg.CanvasWriterTo, error) {
	w, h := f.opts.Width, f.opts.Height
	switch strings.ToLower(format) {
	case "png":
		c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(f.opts.DPI))
		return vgimg.PngCanvas{Canvas: c}, nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "pdf":
		return vgpdf.New(w, h), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
