package client

import (
	"context"
	"fmt"
)

// EdgeService handles edge operations.
type EdgeService struct {
	c *Client
}

// edgeListResponse wraps the edge list response.
type edgeListResponse struct {
	Edges []Edge `json:"edges"`
	Count int    `json:"count"`
}

// List returns every edge in insertion order.
func (s *EdgeService) List(ctx context.Context) ([]Edge, error) {
	var resp edgeListResponse
	if err := s.c.get(ctx, "/api/v1/edges", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Edges, nil
}

// Create connects two existing nodes.
func (s *EdgeService) Create(ctx context.Context, source, target int) (*Edge, error) {
	var edge Edge
	req := CreateEdgeRequest{Source: source, Target: target}
	if err := s.c.post(ctx, "/api/v1/edges", &req, &edge); err != nil {
		return nil, err
	}
	return &edge, nil
}

// Delete removes the edge between two nodes.
func (s *EdgeService) Delete(ctx context.Context, source, target int) error {
	return s.c.del(ctx, fmt.Sprintf("/api/v1/edges/%d/%d", source, target), nil)
}
