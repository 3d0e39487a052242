package layout

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/stockgraph/internal/builder"
	"github.com/vk/stockgraph/internal/catalog"
	"github.com/vk/stockgraph/internal/ctxlog"
	"github.com/vk/stockgraph/internal/graph"
	"github.com/vk/stockgraph/internal/nodeid"
	"gonum.org/v1/gonum/spatial/r2"
)

func testContext() context.Context {
	return ctxlog.Discard(context.Background())
}

func defaultGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := builder.Build(testContext(), catalog.Default())
	require.NoError(t, err)
	return g
}

func TestSpring_Deterministic(t *testing.T) {
	g := defaultGraph(t)
	p := DefaultParams()

	first, err := Spring(testContext(), g, p)
	require.NoError(t, err)
	second, err := Spring(testContext(), g, p)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("same graph and seed produced different layouts (-first +second):\n%s", diff)
	}
}

func TestSpring_SeedChangesLayout(t *testing.T) {
	g := defaultGraph(t)
	a := DefaultParams()
	b := DefaultParams()
	b.Seed = 7

	first, err := Spring(testContext(), g, a)
	require.NoError(t, err)
	second, err := Spring(testContext(), g, b)
	require.NoError(t, err)

	assert.False(t, cmp.Equal(first, second), "different seeds should produce different layouts")
}

func TestSpring_PositionsEveryNodeWithinUnitBox(t *testing.T) {
	g := defaultGraph(t)

	pos, err := Spring(testContext(), g, DefaultParams())
	require.NoError(t, err)

	require.Len(t, pos, g.NodeCount())
	largest := 0.0
	for key, v := range pos {
		assert.False(t, math.IsNaN(v.X) || math.IsNaN(v.Y), "NaN position for %s", key)
		largest = math.Max(largest, math.Max(math.Abs(v.X), math.Abs(v.Y)))
	}
	assert.InDelta(t, 1.0, largest, 1e-9, "layout is rescaled to the unit box")
}

func TestSpring_ConnectedNodesAreCloser(t *testing.T) {
	g := defaultGraph(t)
	pos, err := Spring(testContext(), g, DefaultParams())
	require.NoError(t, err)

	var linked, unlinked []float64
	nodes := g.Nodes()
	for i, a := range nodes {
		for _, b := range nodes[i+1:] {
			d := r2.Norm(r2.Sub(pos[a.Key], pos[b.Key]))
			if g.HasEdge(a.Key, b.Key) {
				linked = append(linked, d)
			} else {
				unlinked = append(unlinked, d)
			}
		}
	}

	assert.Less(t, mean(linked), mean(unlinked))
}

func TestSpring_SmallGraphs(t *testing.T) {
	empty, err := Spring(testContext(), graph.New(), DefaultParams())
	require.NoError(t, err)
	assert.Empty(t, empty)

	single := graph.New()
	single.AddNode(nodeid.StockKey("NVDA"))
	pos, err := Spring(testContext(), single, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, Positions{nodeid.StockKey("NVDA"): {}}, pos)
}

func TestSpring_HonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	_, err := Spring(ctx, defaultGraph(t), DefaultParams())

	require.ErrorIs(t, err, context.Canceled)
}

func TestSpring_InvalidParams(t *testing.T) {
	p := DefaultParams()
	p.K = 0
	_, err := Spring(testContext(), defaultGraph(t), p)
	require.Error(t, err)
}

func TestCircular(t *testing.T) {
	g := defaultGraph(t)

	pos, err := Circular(testContext(), g, DefaultParams())
	require.NoError(t, err)

	require.Len(t, pos, g.NodeCount())
	for key, v := range pos {
		assert.InDelta(t, 1.0, r2.Norm(v), 1e-9, "node %s is not on the unit circle", key)
	}
	first := g.Nodes()[0].Key
	assert.InDelta(t, 1.0, pos[first].X, 1e-9)
	assert.InDelta(t, 0.0, pos[first].Y, 1e-9)
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		f, err := Lookup(name)
		require.NoError(t, err)
		assert.NotNil(t, f)
	}

	_, err := Lookup("Spring")
	require.NoError(t, err, "lookup is case insensitive")

	_, err = Lookup("kamada-kawai")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circular, spring")
}

func TestParams_Validate(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())

	testCases := []struct {
		name   string
		mutate func(*Params)
	}{
		{name: "zero k", mutate: func(p *Params) { p.K = 0 }},
		{name: "negative iterations", mutate: func(p *Params) { p.Iterations = -1 }},
		{name: "negative threshold", mutate: func(p *Params) { p.Threshold = -1 }},
		{name: "NaN k", mutate: func(p *Params) { p.K = math.NaN() }},
		{name: "infinite k", mutate: func(p *Params) { p.K = math.Inf(1) }},
		{name: "NaN threshold", mutate: func(p *Params) { p.Threshold = math.NaN() }},
		{name: "infinite threshold", mutate: func(p *Params) { p.Threshold = math.Inf(1) }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestPositions_Bounds(t *testing.T) {
	pos := Positions{
		nodeid.StockKey("A"): {X: -1, Y: 2},
		nodeid.StockKey("B"): {X: 3, Y: -4},
	}

	lo, hi := pos.Bounds()

	assert.Equal(t, r2.Vec{X: -1, Y: -4}, lo)
	assert.Equal(t, r2.Vec{X: 3, Y: 2}, hi)
}

func mean(xs []float64) float64 {
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return total / float64(len(xs))
}
