package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/domain"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/export"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// Compile-time check: *ExportService must satisfy domain.ExportService.
var _ domain.ExportService = (*ExportService)(nil)

// ExportService moves whole graphs in and out of the engine.
type ExportService struct {
	core *Core
}

// NewExportService creates an ExportService.
func NewExportService(core *Core) *ExportService {
	return &ExportService{core: core}
}

// Export flattens the graph into the portable format.
func (s *ExportService) Export(_ context.Context) (*models.ExportFormat, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	return export.Snapshot(s.core.graph), nil
}

// Import replaces the graph with the payload. Validation failures are
// reported in the result without touching the graph.
func (s *ExportService) Import(_ context.Context, data *models.ExportFormat) (*models.ImportResult, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	result, err := export.Restore(s.core.graph, data)
	if err != nil {
		return nil, err
	}

	if len(result.Errors) == 0 {
		s.core.updateGauges()
		s.core.notifyGraphChanged()

		s.core.log.WithFields(logrus.Fields{
			"nodes": result.NodesCreated,
			"edges": result.EdgesCreated,
		}).Info("graph imported")
	}

	return result, nil
}
