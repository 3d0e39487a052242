package server

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/vk/stockgraph/internal/ctxlog"
	"github.com/vk/stockgraph/internal/graph"
	"github.com/vk/stockgraph/internal/layout"
	"github.com/vk/stockgraph/internal/nodeid"
)

// Encoder writes a figure in the given format.
type Encoder interface {
	Encode(w io.Writer, format string) error
}

// Snapshot is the read-only state served by the figure server. It is
// rendered once and shared by all requests.
type Snapshot struct {
	Title string
	PNG   []byte
	SVG   []byte
	Graph GraphDoc

	nodes map[nodeid.Key]NodeDetail
}

// Node returns the detail for key, if the graph has such a node.
func (s *Snapshot) Node(key nodeid.Key) (NodeDetail, bool) {
	d, ok := s.nodes[key]
	return d, ok
}

// GraphDoc is the JSON form of the graph and its layout.
type GraphDoc struct {
	Nodes []NodeDoc `json:"nodes"`
	Edges []EdgeDoc `json:"edges"`
}

// NodeDoc is one node with its position.
type NodeDoc struct {
	ID    nodeid.Key `json:"id"`
	Kind  string     `json:"kind"`
	Label string     `json:"label"`
	X     float64    `json:"x"`
	Y     float64    `json:"y"`
}

// EdgeDoc links two node IDs.
type EdgeDoc struct {
	Source nodeid.Key `json:"source"`
	Target nodeid.Key `json:"target"`
}

// NodeDetail is one node with the keys of its neighbors.
type NodeDetail struct {
	NodeDoc
	Neighbors []nodeid.Key `json:"neighbors"`
}

// NewSnapshot encodes the figure as PNG and SVG and captures the graph
// with its positions.
func NewSnapshot(ctx context.Context, enc Encoder, g *graph.Graph, pos layout.Positions, title string) (*Snapshot, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building server snapshot.", "node_count", g.NodeCount())

	snap := &Snapshot{Title: title, Graph: NewGraphDoc(g, pos)}
	snap.nodes = make(map[nodeid.Key]NodeDetail, len(snap.Graph.Nodes))
	for _, n := range snap.Graph.Nodes {
		neighbors, err := g.Neighbors(n.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to index node %s: %w", n.ID, err)
		}
		snap.nodes[n.ID] = NodeDetail{NodeDoc: n, Neighbors: neighbors}
	}
	for format, dst := range map[string]*[]byte{"png": &snap.PNG, "svg": &snap.SVG} {
		var buf bytes.Buffer
		if err := enc.Encode(&buf, format); err != nil {
			return nil, fmt.Errorf("failed to encode %s snapshot: %w", format, err)
		}
		*dst = buf.Bytes()
	}

	logger.Debug("Server snapshot ready.", "png_bytes", len(snap.PNG), "svg_bytes", len(snap.SVG))
	return snap, nil
}

// NewGraphDoc lists the nodes and edges of g in insertion order. Nodes
// without a position are placed at the origin.
func NewGraphDoc(g *graph.Graph, pos layout.Positions) GraphDoc {
	doc := GraphDoc{
		Nodes: make([]NodeDoc, 0, g.NodeCount()),
		Edges: make([]EdgeDoc, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		p := pos[n.Key]
		doc.Nodes = append(doc.Nodes, NodeDoc{
			ID:    n.Key,
			Kind:  n.Kind().String(),
			Label: n.Label(),
			X:     p.X,
			Y:     p.Y,
		})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeDoc{Source: e.From, Target: e.To})
	}
	return doc
}
