package render

import (
	"errors"
	"fmt"

	"github.com/vk/stockgraph/internal/nodeid"
	"gonum.org/v1/plot/vg"
)

// DefaultTitle is the title of the bubble-planet figure.
const DefaultTitle = "Bubble-Planet Style Network Graph (Sectors → Industries → Stocks)"

// Options controls figure geometry and appearance.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
	// DPI applies to raster output only.
	DPI    int
	Styles map[nodeid.Kind]Style

	EdgeWidth vg.Length
	EdgeAlpha float64
	LabelSize vg.Length
	TitleSize vg.Length
}

// DefaultOptions returns an 18x13 inch figure exported at 200 DPI.
func DefaultOptions() Options {
	return Options{
		Title:     DefaultTitle,
		Width:     18 * vg.Inch,
		Height:    13 * vg.Inch,
		DPI:       200,
		Styles:    DefaultStyles(),
		EdgeWidth: vg.Points(1.5),
		EdgeAlpha: 0.6,
		LabelSize: vg.Points(9),
		TitleSize: vg.Points(18),
	}
}

// Validate reports options that cannot produce a figure.
func (o Options) Validate() error {
	var errs []error
	if o.Width <= 0 || o.Height <= 0 {
		errs = append(errs, fmt.Errorf("figure size must be positive, got %vx%v", o.Width, o.Height))
	}
	if o.DPI <= 0 {
		errs = append(errs, fmt.Errorf("dpi must be positive, got %d", o.DPI))
	}
	for _, kind := range nodeid.Kinds {
		if _, ok := o.Styles[kind]; !ok {
			errs = append(errs, fmt.Errorf("no style for %s nodes", kind))
		}
	}
	return errors.Join(errs...)
}
