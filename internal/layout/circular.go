package layout

import (
	"context"
	"math"

	"github.com/vk/stockgraph/internal/graph"
	"gonum.org/v1/gonum/spatial/r2"
)

// Circular places nodes evenly on the unit circle in insertion order. A single
// node sits at the origin. Params are validated but otherwise unused.
func Circular(ctx context.Context, g *graph.Graph, p Params) (Positions, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nodes := g.Nodes()
	out := make(Positions, len(nodes))
	if len(nodes) == 1 {
		out[nodes[0].Key] = r2.Vec{}
		return out, nil
	}
	for i, n := range nodes {
		theta := 2 * math.Pi * float64(i) / float64(len(nodes))
		out[n.Key] = r2.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return out, nil
}
