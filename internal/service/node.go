package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/domain"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// Compile-time check: *NodeService must satisfy domain.NodeService.
var _ domain.NodeService = (*NodeService)(nil)

// NodeService wraps the graph's node operations with randomized defaults,
// gauge updates and change notifications.
type NodeService struct {
	core *Core
}

// NewNodeService creates a NodeService.
func NewNodeService(core *Core) *NodeService {
	return &NodeService{core: core}
}

// ListNodes returns every node in ascending id order.
func (s *NodeService) ListNodes(_ context.Context) ([]*models.Node, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	return s.core.graph.Nodes(), nil
}

// GetNode returns a single node by id.
func (s *NodeService) GetNode(_ context.Context, id int) (*models.Node, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	node, ok := s.core.graph.Node(id)
	if !ok {
		return nil, models.ErrNodeNotFound
	}

	return node, nil
}

// CreateNode creates a node. Unset position and attribute fields are
// randomized so hand-built demo graphs spread out immediately.
func (s *NodeService) CreateNode(_ context.Context, req models.CreateNodeRequest) (*models.Node, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	node := s.core.graph.AddNode(s.core.randomNode(req))

	s.core.updateGauges()
	s.core.notifyGraphChanged()

	s.core.log.WithFields(logrus.Fields{
		"node_id": node.ID,
		"name":    node.Name,
	}).Debug("node created")

	return node, nil
}

// UpdateNode applies a partial update. Changing activity or interaction
// recomputes the weight of every incident edge.
func (s *NodeService) UpdateNode(_ context.Context, id int, req models.UpdateNodeRequest) (*models.Node, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	if !s.core.graph.UpdateNode(id, req) {
		return nil, models.ErrNodeNotFound
	}

	node, _ := s.core.graph.Node(id)

	s.core.notifyGraphChanged()

	s.core.log.WithField("node_id", id).Debug("node updated")

	return node, nil
}

// DeleteNode removes a node and every incident edge.
func (s *NodeService) DeleteNode(_ context.Context, id int) error {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	if !s.core.graph.RemoveNode(id) {
		return models.ErrNodeNotFound
	}

	s.core.updateGauges()
	s.core.notifyGraphChanged()

	s.core.log.WithField("node_id", id).Debug("node deleted")

	return nil
}
