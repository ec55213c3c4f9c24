// Package domain defines the canonical service interfaces shared across API
// layers (REST, client, CLI). Consumers should depend on these interfaces
// rather than re-declaring equivalent ones.
package domain

import (
	"context"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/layout"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// NodeService defines all node operations.
type NodeService interface {
	ListNodes(ctx context.Context) ([]*models.Node, error)
	GetNode(ctx context.Context, id int) (*models.Node, error)
	CreateNode(ctx context.Context, req models.CreateNodeRequest) (*models.Node, error)
	UpdateNode(ctx context.Context, id int, req models.UpdateNodeRequest) (*models.Node, error)
	DeleteNode(ctx context.Context, id int) error
}

// EdgeService defines all edge operations.
type EdgeService interface {
	ListEdges(ctx context.Context) ([]*models.Edge, error)
	CreateEdge(ctx context.Context, req models.CreateEdgeRequest) (*models.Edge, error)
	DeleteEdge(ctx context.Context, source, target int) error
}

// GraphService defines whole-graph queries and mutations.
type GraphService interface {
	Statistics(ctx context.Context) (*models.GraphStatistics, error)
	Neighbors(ctx context.Context, id int) ([]*models.Node, error)
	AdjacencyList(ctx context.Context) (map[int][]int, error)
	AdjacencyMatrix(ctx context.Context) (*models.AdjacencyMatrixResult, error)
	Similarity(ctx context.Context, a, b int) (*models.SimilarityResult, error)
	GenerateRandom(ctx context.Context, req models.RandomGraphRequest) (*models.GraphStatistics, error)
	ClearGraph(ctx context.Context) error
	ClearHighlights(ctx context.Context) error
}

// AlgorithmService runs graph algorithms and reports which are available.
type AlgorithmService interface {
	RunAlgorithm(ctx context.Context, req models.RunAlgorithmRequest) (*models.AlgorithmResult, error)
	Algorithms(ctx context.Context) []string
}

// LayoutService controls the force-directed layout solver.
type LayoutService interface {
	StartLayout(ctx context.Context) error
	StopLayout(ctx context.Context) error
	ResetLayout(ctx context.Context) error
	ReheatLayout(ctx context.Context) error
	StepLayout(ctx context.Context, iterations int) (int, error)
	LayoutParams(ctx context.Context) (layout.Config, bool, error)
	SetLayoutParams(ctx context.Context, cfg layout.Config) (layout.Config, error)
}

// ExportService moves whole graphs in and out of the engine.
type ExportService interface {
	Export(ctx context.Context) (*models.ExportFormat, error)
	Import(ctx context.Context, data *models.ExportFormat) (*models.ImportResult, error)
}
