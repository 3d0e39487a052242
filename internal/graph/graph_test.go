package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/stockgraph/internal/nodeid"
)

var (
	semis  = nodeid.IndustryKey("Semiconductors")
	techIT = nodeid.SectorKey("Information Technology")
	nvda   = nodeid.StockKey("NVDA")
	amd    = nodeid.StockKey("AMD")
)

func TestAddNode_Idempotent(t *testing.T) {
	g := New()

	first := g.AddNode(nvda)
	second := g.AddNode(nvda)

	assert.Same(t, first, second)
	assert.Equal(t, 1, g.NodeCount())
	assert.Equal(t, nodeid.Stock, first.Kind())
	assert.Equal(t, "NVDA", first.Label())
}

func TestAddNode_SameLabelDifferentKind(t *testing.T) {
	g := New()

	g.AddNode(nodeid.StockKey("Energy"))
	g.AddNode(nodeid.SectorKey("Energy"))

	assert.Equal(t, 2, g.NodeCount(), "namespaced keys must not merge across kinds")
}

func TestNode_Lookup(t *testing.T) {
	g := New()
	added := g.AddNode(semis)

	found, ok := g.Node(semis)
	require.True(t, ok)
	assert.Same(t, added, found)

	missing, ok := g.Node(nvda)
	assert.False(t, ok)
	assert.Nil(t, missing)
}

func TestAddEdge(t *testing.T) {
	g := New()
	g.AddNode(nvda)
	g.AddNode(semis)

	require.NoError(t, g.AddEdge(nvda, semis))
	require.NoError(t, g.AddEdge(semis, nvda), "reverse direction is the same undirected edge")
	require.NoError(t, g.AddEdge(nvda, semis))

	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(nvda, semis))
	assert.True(t, g.HasEdge(semis, nvda))
	assert.Equal(t, []Edge{{From: nvda, To: semis}}, g.Edges())
}

func TestAddEdge_Errors(t *testing.T) {
	g := New()
	g.AddNode(nvda)

	err := g.AddEdge(nvda, semis)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "industry/Semiconductors")

	err = g.AddEdge(semis, nvda)
	require.Error(t, err)

	err = g.AddEdge(nvda, nvda)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "self edge")
}

func TestHasEdge_UnknownNodes(t *testing.T) {
	g := New()
	g.AddNode(nvda)
	assert.False(t, g.HasEdge(nvda, semis))
	assert.False(t, g.HasEdge(semis, nvda))
}

func TestNodes_InsertionOrder(t *testing.T) {
	g := New()
	g.AddNode(techIT)
	g.AddNode(semis)
	g.AddNode(nvda)
	g.AddNode(semis)
	g.AddNode(amd)

	var keys []nodeid.Key
	for _, n := range g.Nodes() {
		keys = append(keys, n.Key)
	}
	assert.Equal(t, []nodeid.Key{techIT, semis, nvda, amd}, keys)
}

func TestNeighbors(t *testing.T) {
	g := New()
	for _, k := range []nodeid.Key{techIT, semis, nvda, amd} {
		g.AddNode(k)
	}
	require.NoError(t, g.AddEdge(semis, techIT))
	require.NoError(t, g.AddEdge(nvda, semis))
	require.NoError(t, g.AddEdge(amd, semis))

	neighbors, err := g.Neighbors(semis)
	require.NoError(t, err)
	assert.Equal(t, []nodeid.Key{techIT, nvda, amd}, neighbors)

	_, err = g.Neighbors(nodeid.StockKey("TSLA"))
	require.Error(t, err)
}

func TestComponents(t *testing.T) {
	g := New()
	util := nodeid.SectorKey("Utilities")
	elec := nodeid.IndustryKey("Electric Utilities")
	ceg := nodeid.StockKey("CEG")
	for _, k := range []nodeid.Key{techIT, semis, nvda, util, elec, ceg} {
		g.AddNode(k)
	}
	require.NoError(t, g.AddEdge(semis, techIT))
	require.NoError(t, g.AddEdge(nvda, semis))
	require.NoError(t, g.AddEdge(elec, util))
	require.NoError(t, g.AddEdge(ceg, elec))

	components := g.Components()

	assert.Equal(t, [][]nodeid.Key{
		{techIT, semis, nvda},
		{util, elec, ceg},
	}, components)
}
