package api

import "github.com/EmircanDemirTR/social-network-analyzer/internal/domain"

// Handler dependencies are the canonical domain interfaces; aliases keep the
// handler signatures short without re-declaring equivalent method sets.
type (
	NodeService      = domain.NodeService
	EdgeService      = domain.EdgeService
	GraphService     = domain.GraphService
	AlgorithmService = domain.AlgorithmService
	LayoutService    = domain.LayoutService
	ExportService    = domain.ExportService
)
