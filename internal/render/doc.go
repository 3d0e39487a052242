// Package render draws the hierarchy graph as a figure and encodes it as
// PNG, SVG or PDF.
//
// Drawing order is edges, then node markers grouped by kind (each kind with
// its own color and size and a legend entry), then bold labels centred on
// each node. Axes are hidden; glyph extents are taken into account so the
// figure is cropped tightly around the drawing.
package render
