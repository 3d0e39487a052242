package layout

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/vk/stockgraph/internal/ctxlog"
	"github.com/vk/stockgraph/internal/graph"
	"gonum.org/v1/gonum/spatial/r2"
)

// minDistance keeps coincident nodes from producing infinite forces.
const minDistance = 0.01

// Spring is a Fruchterman-Reingold force-directed layout. Every pair of
// nodes repels with force k²/d and every edge attracts with force d²/k. The
// step size cools linearly from a tenth of the initial extent to zero. The
// result is centered on the origin with its largest coordinate at 1.
func Spring(ctx context.Context, g *graph.Graph, p Params) (Positions, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	logger := ctxlog.FromContext(ctx)

	nodes := g.Nodes()
	n := len(nodes)
	pos := make([]r2.Vec, n)

	// Initial placement must depend only on the seed and insertion order.
	rng := rand.New(rand.NewPCG(p.Seed, p.Seed^0x9e3779b97f4a7c15))
	for i := range pos {
		pos[i] = r2.Vec{X: rng.Float64(), Y: rng.Float64()}
	}

	adjacent := make([][]bool, n)
	index := make(map[int64]int, n)
	for i, node := range nodes {
		index[node.ID()] = i
		adjacent[i] = make([]bool, n)
	}
	for _, e := range g.Edges() {
		a, _ := g.Node(e.From)
		b, _ := g.Node(e.To)
		i, j := index[a.ID()], index[b.ID()]
		adjacent[i][j] = true
		adjacent[j][i] = true
	}

	if n > 1 {
		lo, hi := bounds(pos)
		t := math.Max(hi.X-lo.X, hi.Y-lo.Y) * 0.1
		dt := t / float64(p.Iterations+1)
		k2 := p.K * p.K

		disp := make([]r2.Vec, n)
		iter := 0
		for ; iter < p.Iterations; iter++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			for i := range disp {
				disp[i] = r2.Vec{}
			}
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if i == j {
						continue
					}
					delta := r2.Sub(pos[i], pos[j])
					d := math.Max(r2.Norm(delta), minDistance)
					// Repulsion k²/d and attraction d²/k, both along delta/d.
					f := k2 / (d * d)
					if adjacent[i][j] {
						f -= d / p.K
					}
					disp[i] = r2.Add(disp[i], r2.Scale(f, delta))
				}
			}

			moved := 0.0
			for i := range pos {
				length := r2.Norm(disp[i])
				if length < minDistance {
					length = 0.1
				}
				step := r2.Scale(t/length, disp[i])
				pos[i] = r2.Add(pos[i], step)
				moved += r2.Norm(step)
			}
			t -= dt

			if moved/float64(n) < p.Threshold {
				iter++
				break
			}
		}
		logger.Debug("Spring layout converged.", "iterations", iter, "nodes", n)
	}

	rescale(pos, 1)

	out := make(Positions, n)
	for i, node := range nodes {
		out[node.Key] = pos[i]
	}
	return out, nil
}
