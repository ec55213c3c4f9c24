package algorithms

import (
	"sort"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/graph"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// DegreeCentrality ranks every node by degree / (n-1), the share of other
// nodes it is directly connected to. Defined as 0 for graphs with at most one
// node, so degenerate inputs produce a valid empty-or-zero ranking rather
// than a division by zero.
type DegreeCentrality struct{}

// Name returns the canonical algorithm name.
func (*DegreeCentrality) Name() string { return models.AlgorithmCentrality }

// Run computes the ranking, sorted by descending centrality with ascending
// node id breaking ties. A positive TopK truncates the ranking to its first
// TopK entries; the reported most-central node is unaffected.
func (*DegreeCentrality) Run(g *graph.Graph, p Params) *models.AlgorithmResult {
	r := start(models.AlgorithmCentrality)

	ids := g.NodeIDs()
	n := len(ids)
	ranking := make([]models.CentralityRank, 0, n)

	for _, id := range ids {
		degree := g.Degree(id)

		centrality := 0.0
		if n > 1 {
			centrality = float64(degree) / float64(n-1)
		}

		ranking = append(ranking, models.CentralityRank{
			NodeID:     id,
			Degree:     degree,
			Centrality: centrality,
		})
		r.step(models.Step{Type: "calculate", NodeID: id, Cost: centrality})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Centrality != ranking[j].Centrality {
			return ranking[i].Centrality > ranking[j].Centrality
		}

		return ranking[i].NodeID < ranking[j].NodeID
	})

	if n == 0 {
		return r.finish(&models.AlgorithmResult{Ranking: ranking}, "%s", models.ErrEmptyGraph)
	}

	top := ranking[0]

	if p.TopK > 0 && p.TopK < len(ranking) {
		ranking = ranking[:p.TopK]
	}

	return r.finish(&models.AlgorithmResult{
		Ranking: ranking,
	}, "most central node: %d (degree %d)", top.NodeID, top.Degree)
}
