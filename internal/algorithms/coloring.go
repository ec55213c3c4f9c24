package algorithms

import (
	"sort"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/graph"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// WelshPowell greedily colors the graph so no two adjacent nodes share a
// color. Nodes are considered in descending degree order (ascending id on
// ties); each pass assigns the current color to every still-uncolored node
// whose neighbors do not already carry it. The resulting chromatic count is a
// heuristic upper bound, not the true chromatic number.
type WelshPowell struct{}

// Name returns the canonical algorithm name.
func (*WelshPowell) Name() string { return models.AlgorithmColoring }

// Run colors all nodes and returns the 1-based color assignment plus the
// number of colors used.
func (*WelshPowell) Run(g *graph.Graph, _ Params) *models.AlgorithmResult {
	r := start(models.AlgorithmColoring)

	order := g.NodeIDs()
	sort.SliceStable(order, func(i, j int) bool {
		di, dj := g.Degree(order[i]), g.Degree(order[j])
		if di != dj {
			return di > dj
		}

		return order[i] < order[j]
	})

	coloring := make(map[int]int, len(order))

	for color := 1; len(coloring) < len(order); color++ {
		for _, id := range order {
			if _, done := coloring[id]; done {
				continue
			}

			conflict := false
			for _, nid := range g.Neighbors(id) {
				if coloring[nid] == color {
					conflict = true

					break
				}
			}

			if !conflict {
				coloring[id] = color
				r.step(models.Step{Type: "color", NodeID: id, ColorIndex: color})
			}
		}
	}

	chromatic := 0
	for _, color := range coloring {
		if color > chromatic {
			chromatic = color
		}
	}

	return r.finish(&models.AlgorithmResult{
		Coloring:       coloring,
		ChromaticCount: chromatic,
	}, "graph colored with %d colors", chromatic)
}
