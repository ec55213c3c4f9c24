package graph

import (
	"math"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// Weight derives the edge weight for a node pair from their attribute triples:
//
//	weight = 1 / (1 + sqrt(Δactivity² + Δinteraction² + Δconnection_count²))
//
// The result lies in (0, 1]: exactly 1 when the triples are identical,
// approaching 0 as they diverge. It is symmetric in its arguments.
func Weight(a, b *models.Node) float64 {
	da := a.Activity - b.Activity
	di := a.Interaction - b.Interaction
	dc := float64(a.ConnectionCount - b.ConnectionCount)

	return 1.0 / (1.0 + math.Sqrt(da*da+di*di+dc*dc))
}

// Cost returns the traversal cost for a node pair, the reciprocal of Weight.
// Shortest-path algorithms minimize cost, so similar nodes are cheaper to
// traverse between. Always finite and strictly positive since weight > 0.
func Cost(a, b *models.Node) float64 {
	return 1.0 / Weight(a, b)
}

// Similarity returns the pair's weight as a percentage in (0, 100].
func Similarity(a, b *models.Node) float64 {
	return Weight(a, b) * 100
}
