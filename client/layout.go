package client

import "context"

// LayoutService controls the server-side layout solver.
type LayoutService struct {
	c *Client
}

// Start begins a background layout run.
func (s *LayoutService) Start(ctx context.Context) error {
	return s.c.post(ctx, "/api/v1/layout/start", nil, nil)
}

// Stop requests a cooperative stop of the active run.
func (s *LayoutService) Stop(ctx context.Context) error {
	return s.c.post(ctx, "/api/v1/layout/stop", nil, nil)
}

// Reset zeroes node velocities and restores the annealing temperature.
func (s *LayoutService) Reset(ctx context.Context) error {
	return s.c.post(ctx, "/api/v1/layout/reset", nil, nil)
}

// Reheat raises the temperature so a settled layout moves again.
func (s *LayoutService) Reheat(ctx context.Context) error {
	return s.c.post(ctx, "/api/v1/layout/reheat", nil, nil)
}

// stepResponse wraps the step response.
type stepResponse struct {
	Steps int `json:"steps"`
}

// Step advances the simulation synchronously and returns the number of steps
// taken. Zero iterations means "use the configured budget".
func (s *LayoutService) Step(ctx context.Context, iterations int) (int, error) {
	var resp stepResponse
	req := map[string]int{"iterations": iterations}
	if err := s.c.post(ctx, "/api/v1/layout/step", req, &resp); err != nil {
		return 0, err
	}
	return resp.Steps, nil
}

// Params returns the current solver configuration and run state.
func (s *LayoutService) Params(ctx context.Context) (*LayoutParams, error) {
	var resp LayoutParams
	if err := s.c.get(ctx, "/api/v1/layout/params", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetParams applies the non-zero fields of cfg as overrides and returns the
// resulting configuration.
func (s *LayoutService) SetParams(ctx context.Context, cfg *LayoutConfig) (*LayoutParams, error) {
	var resp LayoutParams
	if err := s.c.put(ctx, "/api/v1/layout/params", cfg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
