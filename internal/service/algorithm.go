package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/algorithms"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/domain"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/metrics"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// Compile-time check: *AlgorithmService must satisfy domain.AlgorithmService.
var _ domain.AlgorithmService = (*AlgorithmService)(nil)

// colorPalette maps 1-based coloring indices onto display colors. Indices
// beyond the palette wrap around.
var colorPalette = []string{
	"#ff6b6b", "#4ecdc4", "#ffe66d", "#95e1d3",
	"#f38181", "#aa96da", "#fcbad3", "#a8d8ea",
}

// AlgorithmService runs analysis algorithms and applies their visual side
// effects (highlights, colors) to the graph.
type AlgorithmService struct {
	core *Core
}

// NewAlgorithmService creates an AlgorithmService.
func NewAlgorithmService(core *Core) *AlgorithmService {
	return &AlgorithmService{core: core}
}

// Algorithms returns the registered algorithm names in sorted order.
func (s *AlgorithmService) Algorithms(_ context.Context) []string {
	return s.core.engine.Names()
}

// RunAlgorithm executes the named algorithm against the current graph.
// Successful path results highlight the path; coloring results repaint the
// nodes. Failures inside an algorithm (missing start node, no path) are
// reported in the result, not as an error.
func (s *AlgorithmService) RunAlgorithm(_ context.Context, req models.RunAlgorithmRequest) (*models.AlgorithmResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := algorithms.Params{TopK: req.TopK}
	if req.StartID != nil {
		p.StartID = *req.StartID
	}
	if req.TargetID != nil {
		p.TargetID = *req.TargetID
	}

	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	started := time.Now()

	result, err := s.core.engine.Run(req.Algorithm, s.core.graph, p)
	if err != nil {
		metrics.AlgorithmRuns.WithLabelValues(req.Algorithm, "unknown").Inc()

		return nil, err
	}

	metrics.AlgorithmDuration.WithLabelValues(req.Algorithm).Observe(time.Since(started).Seconds())

	outcome := "failure"
	if result.Success {
		outcome = "success"
		s.applyVisuals(result)
		s.core.notifyGraphChanged()
	}
	metrics.AlgorithmRuns.WithLabelValues(req.Algorithm, outcome).Inc()
	s.core.notifyAlgorithmDone(result)

	s.core.log.WithFields(logrus.Fields{
		"algorithm":  req.Algorithm,
		"success":    result.Success,
		"elapsed_ms": result.ElapsedMS,
	}).Debug("algorithm executed")

	return result, nil
}

// applyVisuals projects a successful result back onto the graph. Callers
// hold the core mutex.
func (s *AlgorithmService) applyVisuals(result *models.AlgorithmResult) {
	g := s.core.graph

	g.ClearHighlights()

	switch {
	case len(result.Path) > 0:
		for _, id := range result.Path {
			if node, ok := g.Node(id); ok {
				node.Highlighted = true
			}
		}
		for i := 0; i+1 < len(result.Path); i++ {
			if edge, ok := g.Edge(result.Path[i], result.Path[i+1]); ok {
				edge.Highlighted = true
			}
		}

	case len(result.Coloring) > 0:
		for id, color := range result.Coloring {
			if node, ok := g.Node(id); ok {
				node.Color = colorPalette[(color-1)%len(colorPalette)]
			}
		}

	case len(result.VisitOrder) > 0:
		for _, id := range result.VisitOrder {
			if node, ok := g.Node(id); ok {
				node.Highlighted = true
			}
		}
	}
}
