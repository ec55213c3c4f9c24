package client

import "context"

// ExportService moves whole graphs in and out of the server.
type ExportService struct {
	c *Client
}

// Export returns the full graph export.
func (s *ExportService) Export(ctx context.Context) (*ExportFormat, error) {
	var resp ExportFormat
	if err := s.c.get(ctx, "/api/v1/export", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Import replaces the server's graph with the payload.
func (s *ExportService) Import(ctx context.Context, data *ExportFormat) (*ImportResult, error) {
	var resp ImportResult
	if err := s.c.post(ctx, "/api/v1/import", data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// validateResponse wraps the validation response.
type validateResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate checks a payload for consistency errors without importing it.
func (s *ExportService) Validate(ctx context.Context, data *ExportFormat) (bool, []string, error) {
	var resp validateResponse
	if err := s.c.post(ctx, "/api/v1/import/validate", data, &resp); err != nil {
		return false, nil, err
	}
	return resp.Valid, resp.Errors, nil
}
