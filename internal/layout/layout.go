package layout

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vk/stockgraph/internal/graph"
	"github.com/vk/stockgraph/internal/nodeid"
	"gonum.org/v1/gonum/spatial/r2"
)

// Positions maps every node of a graph to its coordinate.
type Positions map[nodeid.Key]r2.Vec

// Params tunes a layout run.
type Params struct {
	// K is the optimal distance between nodes. Larger values spread the
	// layout out.
	K float64
	// Iterations caps the number of simulation steps.
	Iterations int
	// Seed drives the initial random placement.
	Seed uint64
	// Threshold stops the simulation early once the mean node displacement
	// of a step drops below it.
	Threshold float64
}

// DefaultParams returns the parameters used by the command line.
func DefaultParams() Params {
	return Params{
		K:          0.5,
		Iterations: 100,
		Seed:       42,
		Threshold:  1e-4,
	}
}

// Validate reports parameters no layout can work with.
func (p Params) Validate() error {
	if p.K <= 0 || !finite(p.K) {
		return fmt.Errorf("layout: k must be positive and finite, got %v", p.K)
	}
	if p.Iterations < 0 {
		return fmt.Errorf("layout: iterations must not be negative, got %d", p.Iterations)
	}
	if p.Threshold < 0 || !finite(p.Threshold) {
		return fmt.Errorf("layout: threshold must be finite and not negative, got %v", p.Threshold)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Func computes a position for every node of g.
type Func func(ctx context.Context, g *graph.Graph, p Params) (Positions, error)

var registry = map[string]Func{
	"spring":   Spring,
	"circular": Circular,
}

// Names lists the registered layouts in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the layout registered under name.
func Lookup(name string) (Func, error) {
	f, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown layout %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Bounds returns the smallest rectangle containing every position.
func (p Positions) Bounds() (lo, hi r2.Vec) {
	vecs := make([]r2.Vec, 0, len(p))
	for _, v := range p {
		vecs = append(vecs, v)
	}
	return bounds(vecs)
}

func bounds(vecs []r2.Vec) (lo, hi r2.Vec) {
	for i, v := range vecs {
		if i == 0 {
			lo, hi = v, v
			continue
		}
		lo.X, lo.Y = minf(lo.X, v.X), minf(lo.Y, v.Y)
		hi.X, hi.Y = maxf(hi.X, v.X), maxf(hi.Y, v.Y)
	}
	return lo, hi
}

// rescale centers vecs on the origin and scales them so the largest absolute
// coordinate equals scale.
func rescale(vecs []r2.Vec, scale float64) {
	if len(vecs) == 0 {
		return
	}
	var mean r2.Vec
	for _, v := range vecs {
		mean = r2.Add(mean, v)
	}
	mean = r2.Scale(1/float64(len(vecs)), mean)

	lim := 0.0
	for i := range vecs {
		vecs[i] = r2.Sub(vecs[i], mean)
		lim = maxf(lim, maxf(abs(vecs[i].X), abs(vecs[i].Y)))
	}
	if lim == 0 {
		return
	}
	for i := range vecs {
		vecs[i] = r2.Scale(scale/lim, vecs[i])
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func abs(a float64) float64 {
	if a < 0 {
		return -a
	}
	return a
}
