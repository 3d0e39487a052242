package graph

import "github.com/vk/stockgraph/internal/nodeid"

// Partition holds node labels grouped by node kind.
type Partition struct {
	Sectors    []string
	Industries []string
	Stocks     []string
}

// Of returns the labels of the given kind.
func (p Partition) Of(kind nodeid.Kind) []string {
	switch kind {
	case nodeid.Sector:
		return p.Sectors
	case nodeid.Industry:
		return p.Industries
	case nodeid.Stock:
		return p.Stocks
	default:
		return nil
	}
}

// Len returns the total number of labels across all kinds.
func (p Partition) Len() int {
	return len(p.Sectors) + len(p.Industries) + len(p.Stocks)
}

// PartitionGraph splits the nodes of g by kind, keeping insertion order
// within each group. Every node lands in exactly one group.
func PartitionGraph(g *Graph) Partition {
	var p Partition
	for _, n := range g.nodes {
		switch n.Kind() {
		case nodeid.Sector:
			p.Sectors = append(p.Sectors, n.Label())
		case nodeid.Industry:
			p.Industries = append(p.Industries, n.Label())
		case nodeid.Stock:
			p.Stocks = append(p.Stocks, n.Label())
		}
	}
	return p
}
