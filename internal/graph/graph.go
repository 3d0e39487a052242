package graph

import (
	"fmt"

	"github.com/vk/stockgraph/internal/nodeid"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Node is a single vertex of the hierarchy graph.
type Node struct {
	id  int64
	Key nodeid.Key
}

// ID implements gonum's graph.Node.
func (n *Node) ID() int64 { return n.id }

// Kind is the type attribute of the node.
func (n *Node) Kind() nodeid.Kind { return n.Key.Kind }

// Label is the text drawn for the node.
func (n *Node) Label() string { return n.Key.Name }

// Edge is an undirected link between two nodes, recorded in the order it was
// first added.
type Edge struct {
	From nodeid.Key
	To   nodeid.Key
}

// Graph is the typed undirected hierarchy graph.
type Graph struct {
	g     *simple.UndirectedGraph
	ids   map[nodeid.Key]int64
	nodes []*Node
	edges []Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		g:   simple.NewUndirectedGraph(),
		ids: make(map[nodeid.Key]int64),
	}
}

// AddNode ensures a node with the given key exists and returns it. Adding the
// same key twice is a no-op that returns the existing node.
func (g *Graph) AddNode(key nodeid.Key) *Node {
	if id, exists := g.ids[key]; exists {
		return g.g.Node(id).(*Node)
	}
	n := &Node{id: g.g.NewNode().ID(), Key: key}
	g.g.AddNode(n)
	g.ids[key] = n.id
	g.nodes = append(g.nodes, n)
	return n
}

// AddEdge links two existing nodes. Both nodes must have been added first.
// Adding an edge that already exists, in either direction, is a no-op.
func (g *Graph) AddEdge(a, b nodeid.Key) error {
	aID, ok := g.ids[a]
	if !ok {
		return fmt.Errorf("edge endpoint '%s' not found in graph", a)
	}
	bID, ok := g.ids[b]
	if !ok {
		return fmt.Errorf("edge endpoint '%s' not found in graph", b)
	}
	if aID == bID {
		return fmt.Errorf("self edge on '%s' is not allowed", a)
	}
	if g.g.HasEdgeBetween(aID, bID) {
		return nil
	}
	g.g.SetEdge(g.g.NewEdge(g.g.Node(aID), g.g.Node(bID)))
	g.edges = append(g.edges, Edge{From: a, To: b})
	return nil
}

// Node retrieves a node by key.
func (g *Graph) Node(key nodeid.Key) (*Node, bool) {
	id, ok := g.ids[key]
	if !ok {
		return nil, false
	}
	return g.g.Node(id).(*Node), true
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// HasEdge reports whether a and b are linked, in either direction.
func (g *Graph) HasEdge(a, b nodeid.Key) bool {
	aID, ok := g.ids[a]
	if !ok {
		return false
	}
	bID, ok := g.ids[b]
	if !ok {
		return false
	}
	return g.g.HasEdgeBetween(aID, bID)
}

// Neighbors returns the keys adjacent to key, in insertion order of the
// neighbor nodes.
func (g *Graph) Neighbors(key nodeid.Key) ([]nodeid.Key, error) {
	id, ok := g.ids[key]
	if !ok {
		return nil, fmt.Errorf("node '%s' not found in graph", key)
	}
	var out []nodeid.Key
	for _, n := range g.nodes {
		if n.id != id && g.g.HasEdgeBetween(id, n.id) {
			out = append(out, n.Key)
		}
	}
	return out, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Components returns the connected components of the graph. Each component
// lists its keys in insertion order, and components are ordered by their
// first-inserted node.
func (g *Graph) Components() [][]nodeid.Key {
	componentOf := make(map[int64]int)
	for i, cc := range topo.ConnectedComponents(g.g) {
		for _, n := range cc {
			componentOf[n.ID()] = i
		}
	}

	var out [][]nodeid.Key
	slot := make(map[int]int)
	for _, n := range g.nodes {
		c := componentOf[n.id]
		idx, ok := slot[c]
		if !ok {
			idx = len(out)
			slot[c] = idx
			out = append(out, nil)
		}
		out[idx] = append(out[idx], n.Key)
	}
	return out
}
