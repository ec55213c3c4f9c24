package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/domain"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/graph"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// Compile-time check: *GraphService must satisfy domain.GraphService.
var _ domain.GraphService = (*GraphService)(nil)

// GraphService exposes whole-graph queries and mutations.
type GraphService struct {
	core *Core
}

// NewGraphService creates a GraphService.
func NewGraphService(core *Core) *GraphService {
	return &GraphService{core: core}
}

// Statistics returns counts, density and the degree summary.
func (s *GraphService) Statistics(_ context.Context) (*models.GraphStatistics, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	stats := s.core.graph.Statistics()

	return &stats, nil
}

// Neighbors returns the nodes adjacent to the given node, in edge insertion
// order.
func (s *GraphService) Neighbors(_ context.Context, id int) ([]*models.Node, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	if !s.core.graph.HasNode(id) {
		return nil, models.ErrNodeNotFound
	}

	ids := s.core.graph.Neighbors(id)

	out := make([]*models.Node, 0, len(ids))
	for _, nid := range ids {
		if node, ok := s.core.graph.Node(nid); ok {
			out = append(out, node)
		}
	}

	return out, nil
}

// AdjacencyList returns neighbor ids per node.
func (s *GraphService) AdjacencyList(_ context.Context) (map[int][]int, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	return s.core.graph.AdjacencyList(), nil
}

// AdjacencyMatrix returns the weight-valued adjacency matrix with its node id
// ordering.
func (s *GraphService) AdjacencyMatrix(_ context.Context) (*models.AdjacencyMatrixResult, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	matrix, ids := s.core.graph.AdjacencyMatrix()

	return &models.AdjacencyMatrixResult{NodeIDs: ids, Matrix: matrix}, nil
}

// Similarity reports the attribute-space relation of two nodes regardless of
// whether an edge connects them.
func (s *GraphService) Similarity(_ context.Context, a, b int) (*models.SimilarityResult, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	na, ok := s.core.graph.Node(a)
	if !ok {
		return nil, models.ErrNodeNotFound
	}

	nb, ok := s.core.graph.Node(b)
	if !ok {
		return nil, models.ErrNodeNotFound
	}

	w := graph.Weight(na, nb)

	return &models.SimilarityResult{
		Source:     a,
		Target:     b,
		Weight:     w,
		Cost:       1 / w,
		Similarity: graph.Similarity(na, nb),
	}, nil
}

// GenerateRandom replaces the graph with an Erdős–Rényi style demo graph:
// n randomized nodes, then each unordered pair connected with the given
// probability.
func (s *GraphService) GenerateRandom(_ context.Context, req models.RandomGraphRequest) (*models.GraphStatistics, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	s.core.graph.Clear()

	ids := make([]int, 0, req.Nodes)
	for i := 0; i < req.Nodes; i++ {
		node := s.core.graph.AddNode(s.core.randomNode(models.CreateNodeRequest{}))
		ids = append(ids, node.ID)
	}

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if s.core.rng.Float64() < req.EdgeProbability {
				if _, err := s.core.graph.AddEdge(ids[i], ids[j]); err != nil {
					return nil, err
				}
			}
		}
	}

	s.core.updateGauges()
	s.core.notifyGraphChanged()

	stats := s.core.graph.Statistics()

	s.core.log.WithFields(logrus.Fields{
		"nodes": stats.NodeCount,
		"edges": stats.EdgeCount,
	}).Info("random graph generated")

	return &stats, nil
}

// ClearGraph removes every node and edge.
func (s *GraphService) ClearGraph(_ context.Context) error {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	s.core.graph.Clear()
	s.core.updateGauges()
	s.core.notifyGraphChanged()

	s.core.log.Info("graph cleared")

	return nil
}

// ClearHighlights removes highlight flags from all nodes and edges.
func (s *GraphService) ClearHighlights(_ context.Context) error {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	s.core.graph.ClearHighlights()
	s.core.notifyGraphChanged()

	return nil
}
