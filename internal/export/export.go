// Package export flattens the graph to the plain node/edge records and
// rebuilds it from them, in JSON and CSV form. Import goes through the
// ordinary mutation API so derived state (connection counts, edge weights)
// is recomputed rather than trusted from the file.
package export

import (
	"fmt"
	"time"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/graph"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// Snapshot flattens the graph into the portable export format.
func Snapshot(g *graph.Graph) *models.ExportFormat {
	nodes := make([]models.ExportNode, 0, g.NodeCount())
	for _, node := range g.Nodes() {
		nodes = append(nodes, models.ExportNode{
			ID:              node.ID,
			Name:            node.Name,
			X:               node.X,
			Y:               node.Y,
			Activity:        node.Activity,
			Interaction:     node.Interaction,
			ConnectionCount: node.ConnectionCount,
		})
	}

	edges := make([]models.ExportEdge, 0, g.EdgeCount())
	for _, edge := range g.Edges() {
		edges = append(edges, models.ExportEdge{
			Source: edge.Source,
			Target: edge.Target,
			Weight: edge.Weight,
		})
	}

	return &models.ExportFormat{
		ExportedAt: time.Now().UTC(),
		Stats: models.ExportStats{
			NodeCount: len(nodes),
			EdgeCount: len(edges),
		},
		Nodes: nodes,
		Edges: edges,
	}
}

// Validate checks an export payload for consistency without mutating
// anything. An empty slice means the payload is importable.
func Validate(data *models.ExportFormat) []string {
	var errs []string

	seen := make(map[int]bool, len(data.Nodes))
	for _, node := range data.Nodes {
		if node.ID < 1 {
			errs = append(errs, fmt.Sprintf("node id %d is invalid", node.ID))

			continue
		}

		if seen[node.ID] {
			errs = append(errs, fmt.Sprintf("duplicate node id %d", node.ID))
		}
		seen[node.ID] = true
	}

	for _, edge := range data.Edges {
		if edge.Source == edge.Target {
			errs = append(errs, fmt.Sprintf("edge %d-%d is a self-loop", edge.Source, edge.Target))
		}
		if !seen[edge.Source] {
			errs = append(errs, fmt.Sprintf("edge %d-%d references missing node %d", edge.Source, edge.Target, edge.Source))
		}
		if !seen[edge.Target] {
			errs = append(errs, fmt.Sprintf("edge %d-%d references missing node %d", edge.Source, edge.Target, edge.Target))
		}
	}

	return errs
}

// Restore replaces the graph's contents with the payload. Nodes are imported
// before edges because edges reference nodes; weights and connection counts
// are derived fresh by the mutation path. A payload that fails validation is
// rejected before anything is touched, so the graph is never left half-built.
func Restore(g *graph.Graph, data *models.ExportFormat) (*models.ImportResult, error) {
	if errs := Validate(data); len(errs) > 0 {
		return &models.ImportResult{Errors: errs}, nil
	}

	g.Clear()

	result := &models.ImportResult{}

	for _, rec := range data.Nodes {
		if _, err := g.ImportNode(rec); err != nil {
			return nil, fmt.Errorf("importing node %d: %w", rec.ID, err)
		}
		result.NodesCreated++
	}

	for _, rec := range data.Edges {
		if _, err := g.AddEdge(rec.Source, rec.Target); err != nil {
			return nil, fmt.Errorf("importing edge %d-%d: %w", rec.Source, rec.Target, err)
		}
		result.EdgesCreated++
	}

	return result, nil
}
