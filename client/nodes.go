package client

import (
	"context"
	"strconv"
)

// NodeService handles node CRUD operations.
type NodeService struct {
	c *Client
}

// nodeListResponse wraps the node list response.
type nodeListResponse struct {
	Nodes []Node `json:"nodes"`
	Count int    `json:"count"`
}

// List returns every node in ascending id order.
func (s *NodeService) List(ctx context.Context) ([]Node, error) {
	var resp nodeListResponse
	if err := s.c.get(ctx, "/api/v1/nodes", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Nodes, nil
}

// Get returns a single node by id.
func (s *NodeService) Get(ctx context.Context, id int) (*Node, error) {
	var node Node
	if err := s.c.get(ctx, "/api/v1/nodes/"+strconv.Itoa(id), nil, &node); err != nil {
		return nil, err
	}
	return &node, nil
}

// Create creates a new node.
func (s *NodeService) Create(ctx context.Context, req *CreateNodeRequest) (*Node, error) {
	var node Node
	if err := s.c.post(ctx, "/api/v1/nodes", req, &node); err != nil {
		return nil, err
	}
	return &node, nil
}

// Update applies a partial node update.
func (s *NodeService) Update(ctx context.Context, id int, req *UpdateNodeRequest) (*Node, error) {
	var node Node
	if err := s.c.put(ctx, "/api/v1/nodes/"+strconv.Itoa(id), req, &node); err != nil {
		return nil, err
	}
	return &node, nil
}

// Delete removes a node and its incident edges.
func (s *NodeService) Delete(ctx context.Context, id int) error {
	return s.c.del(ctx, "/api/v1/nodes/"+strconv.Itoa(id), nil)
}
