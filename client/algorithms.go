package client

import "context"

// AlgorithmService handles algorithm execution.
type AlgorithmService struct {
	c *Client
}

// algorithmListResponse wraps the algorithm list response.
type algorithmListResponse struct {
	Algorithms []string `json:"algorithms"`
}

// List returns the available algorithm names.
func (s *AlgorithmService) List(ctx context.Context) ([]string, error) {
	var resp algorithmListResponse
	if err := s.c.get(ctx, "/api/v1/algorithms", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Algorithms, nil
}

// Run executes the named algorithm. A result with Success=false means the
// graph could not satisfy the request (missing start node, no path); the
// reason is in Message.
func (s *AlgorithmService) Run(ctx context.Context, req *RunAlgorithmRequest) (*AlgorithmResult, error) {
	var resp AlgorithmResult
	if err := s.c.post(ctx, "/api/v1/algorithms/run", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
