package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/domain"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// Compile-time check: *EdgeService must satisfy domain.EdgeService.
var _ domain.EdgeService = (*EdgeService)(nil)

// EdgeService wraps the graph's edge operations.
type EdgeService struct {
	core *Core
}

// NewEdgeService creates an EdgeService.
func NewEdgeService(core *Core) *EdgeService {
	return &EdgeService{core: core}
}

// ListEdges returns every edge in insertion order.
func (s *EdgeService) ListEdges(_ context.Context) ([]*models.Edge, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	return s.core.graph.Edges(), nil
}

// CreateEdge connects two existing nodes. Creating an edge that already
// exists returns it unchanged.
func (s *EdgeService) CreateEdge(_ context.Context, req models.CreateEdgeRequest) (*models.Edge, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	edge, err := s.core.graph.AddEdge(req.Source, req.Target)
	if err != nil {
		return nil, err
	}

	s.core.updateGauges()
	s.core.notifyGraphChanged()

	s.core.log.WithFields(logrus.Fields{
		"source_id": edge.Source,
		"target_id": edge.Target,
		"weight":    edge.Weight,
	}).Debug("edge created")

	return edge, nil
}

// DeleteEdge removes the edge between two nodes.
func (s *EdgeService) DeleteEdge(_ context.Context, source, target int) error {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	if !s.core.graph.RemoveEdge(source, target) {
		return models.ErrEdgeNotFound
	}

	s.core.updateGauges()
	s.core.notifyGraphChanged()

	s.core.log.WithFields(logrus.Fields{
		"source_id": source,
		"target_id": target,
	}).Debug("edge deleted")

	return nil
}
