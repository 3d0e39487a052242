package render

import (
	"image/color"
	"math"

	"github.com/vk/stockgraph/internal/nodeid"
	"gonum.org/v1/plot/vg"
)

// Style controls how the nodes of one kind are drawn.
type Style struct {
	// Label is the legend text for the kind.
	Label string
	Color color.Color
	// Size is the marker area in square points.
	Size float64
	// Alpha is the marker opacity in [0, 1].
	Alpha float64
}

// Radius converts the marker area into a glyph radius.
func (s Style) Radius() vg.Length {
	return vg.Points(math.Sqrt(s.Size) / 2)
}

// Fill returns the marker color with Alpha applied.
func (s Style) Fill() color.Color {
	return withAlpha(s.Color, s.Alpha)
}

func withAlpha(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(clamp01(alpha) * 255))
	return n
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

var (
	lightGreen = color.NRGBA{R: 0x90, G: 0xEE, B: 0x90, A: 0xFF}
	skyBlue    = color.NRGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 0xFF}
	orange     = color.NRGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}
)

// DefaultStyles returns the per-kind styles of the bubble-planet figure.
func DefaultStyles() map[nodeid.Kind]Style {
	return map[nodeid.Kind]Style{
		nodeid.Sector:   {Label: "Sectors", Color: lightGreen, Size: 1800, Alpha: 0.9},
		nodeid.Industry: {Label: "Industries", Color: skyBlue, Size: 1400, Alpha: 0.9},
		nodeid.Stock:    {Label: "Stocks", Color: orange, Size: 1000, Alpha: 0.9},
	}
}
