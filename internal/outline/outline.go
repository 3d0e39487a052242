// Package outline prints the sector, industry and stock hierarchy of a
// graph as a styled terminal tree.
package outline

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/vk/stockgraph/internal/graph"
	"github.com/vk/stockgraph/internal/nodeid"
)

// Colors match the figure's node fills.
var (
	ColorSector   = lipgloss.Color("#90EE90")
	ColorIndustry = lipgloss.Color("#87CEEB")
	ColorStock    = lipgloss.Color("#FFA500")
	ColorMuted    = lipgloss.Color("#808080")
)

// Write renders the hierarchy of g to w. Sectors, their industries and the
// industries' stocks are listed in insertion order. Colors are applied only
// when w is a terminal that supports them.
func Write(w io.Writer, g *graph.Graph) error {
	r := lipgloss.NewRenderer(w)
	styles := map[nodeid.Kind]lipgloss.Style{
		nodeid.Sector:   r.NewStyle().Bold(true).Foreground(ColorSector),
		nodeid.Industry: r.NewStyle().Foreground(ColorIndustry),
		nodeid.Stock:    r.NewStyle().Foreground(ColorStock),
	}
	muted := r.NewStyle().Foreground(ColorMuted)

	p := graph.PartitionGraph(g)
	root := tree.Root(r.NewStyle().Bold(true).Render(
		fmt.Sprintf("Stocks: %d sectors, %d industries, %d stocks", len(p.Sectors), len(p.Industries), len(p.Stocks)),
	)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(muted)

	for _, sector := range p.Sectors {
		key := nodeid.SectorKey(sector)
		st, err := subtree(g, key, nodeid.Industry, styles)
		if err != nil {
			return err
		}
		root.Child(st)
	}

	_, err := fmt.Fprintln(w, root.String())
	return err
}

// subtree builds the branch for key, descending into neighbors of the
// given child kind. Stocks are leaves.
func subtree(g *graph.Graph, key nodeid.Key, childKind nodeid.Kind, styles map[nodeid.Kind]lipgloss.Style) (*tree.Tree, error) {
	t := tree.Root(styles[key.Kind].Render(key.Name))

	neighbors, err := g.Neighbors(key)
	if err != nil {
		return nil, err
	}
	for _, n := range neighbors {
		if n.Kind != childKind {
			continue
		}
		if childKind == nodeid.Stock {
			t.Child(styles[nodeid.Stock].Render(n.Name))
			continue
		}
		child, err := subtree(g, n, nodeid.Stock, styles)
		if err != nil {
			return nil, err
		}
		t.Child(child)
	}
	return t, nil
}
