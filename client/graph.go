package client

import (
	"context"
	"fmt"
	"strconv"
)

// GraphService handles whole-graph queries and mutations.
type GraphService struct {
	c *Client
}

// neighborsResponse wraps the neighbors response.
type neighborsResponse struct {
	NodeID    int    `json:"node_id"`
	Neighbors []Node `json:"neighbors"`
	Count     int    `json:"count"`
}

// Neighbors returns the nodes adjacent to the given node.
func (s *GraphService) Neighbors(ctx context.Context, id int) ([]Node, error) {
	var resp neighborsResponse
	if err := s.c.get(ctx, "/api/v1/graph/neighbors/"+strconv.Itoa(id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Neighbors, nil
}

// adjacencyResponse wraps the adjacency list response.
type adjacencyResponse struct {
	Adjacency map[int][]int `json:"adjacency"`
}

// AdjacencyList returns neighbor ids per node.
func (s *GraphService) AdjacencyList(ctx context.Context) (map[int][]int, error) {
	var resp adjacencyResponse
	if err := s.c.get(ctx, "/api/v1/graph/adjacency", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Adjacency, nil
}

// AdjacencyMatrix returns the weight-valued adjacency matrix.
func (s *GraphService) AdjacencyMatrix(ctx context.Context) (*AdjacencyMatrixResult, error) {
	var resp AdjacencyMatrixResult
	if err := s.c.get(ctx, "/api/v1/graph/matrix", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Similarity reports the attribute-space relation of two nodes.
func (s *GraphService) Similarity(ctx context.Context, a, b int) (*SimilarityResult, error) {
	var resp SimilarityResult
	if err := s.c.get(ctx, fmt.Sprintf("/api/v1/graph/similarity/%d/%d", a, b), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GenerateRandom replaces the graph with a randomized demo graph.
func (s *GraphService) GenerateRandom(ctx context.Context, nodes int, edgeProbability float64) (*GraphStatistics, error) {
	var resp GraphStatistics
	req := RandomGraphRequest{Nodes: nodes, EdgeProbability: edgeProbability}
	if err := s.c.post(ctx, "/api/v1/graph/random", &req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Clear removes every node and edge.
func (s *GraphService) Clear(ctx context.Context) error {
	return s.c.del(ctx, "/api/v1/graph", nil)
}

// ClearHighlights removes highlight flags from all nodes and edges.
func (s *GraphService) ClearHighlights(ctx context.Context) error {
	return s.c.del(ctx, "/api/v1/graph/highlights", nil)
}
