package api_test

import (
	"context"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/layout"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

type mockNodeService struct {
	listFn   func(ctx context.Context) ([]*models.Node, error)
	getFn    func(ctx context.Context, id int) (*models.Node, error)
	createFn func(ctx context.Context, req models.CreateNodeRequest) (*models.Node, error)
	updateFn func(ctx context.Context, id int, req models.UpdateNodeRequest) (*models.Node, error)
	deleteFn func(ctx context.Context, id int) error
}

func (m *mockNodeService) ListNodes(ctx context.Context) ([]*models.Node, error) {
	return m.listFn(ctx)
}

func (m *mockNodeService) GetNode(ctx context.Context, id int) (*models.Node, error) {
	return m.getFn(ctx, id)
}

func (m *mockNodeService) CreateNode(ctx context.Context, req models.CreateNodeRequest) (*models.Node, error) {
	return m.createFn(ctx, req)
}

func (m *mockNodeService) UpdateNode(ctx context.Context, id int, req models.UpdateNodeRequest) (*models.Node, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockNodeService) DeleteNode(ctx context.Context, id int) error {
	return m.deleteFn(ctx, id)
}

type mockEdgeService struct {
	listFn   func(ctx context.Context) ([]*models.Edge, error)
	createFn func(ctx context.Context, req models.CreateEdgeRequest) (*models.Edge, error)
	deleteFn func(ctx context.Context, source, target int) error
}

func (m *mockEdgeService) ListEdges(ctx context.Context) ([]*models.Edge, error) {
	return m.listFn(ctx)
}

func (m *mockEdgeService) CreateEdge(ctx context.Context, req models.CreateEdgeRequest) (*models.Edge, error) {
	return m.createFn(ctx, req)
}

func (m *mockEdgeService) DeleteEdge(ctx context.Context, source, target int) error {
	return m.deleteFn(ctx, source, target)
}

type mockGraphService struct {
	statsFn      func(ctx context.Context) (*models.GraphStatistics, error)
	neighborsFn  func(ctx context.Context, id int) ([]*models.Node, error)
	adjListFn    func(ctx context.Context) (map[int][]int, error)
	adjMatrixFn  func(ctx context.Context) (*models.AdjacencyMatrixResult, error)
	similarityFn func(ctx context.Context, a, b int) (*models.SimilarityResult, error)
	randomFn     func(ctx context.Context, req models.RandomGraphRequest) (*models.GraphStatistics, error)
	clearFn      func(ctx context.Context) error
	clearHLFn    func(ctx context.Context) error
}

func (m *mockGraphService) Statistics(ctx context.Context) (*models.GraphStatistics, error) {
	return m.statsFn(ctx)
}

func (m *mockGraphService) Neighbors(ctx context.Context, id int) ([]*models.Node, error) {
	return m.neighborsFn(ctx, id)
}

func (m *mockGraphService) AdjacencyList(ctx context.Context) (map[int][]int, error) {
	return m.adjListFn(ctx)
}

func (m *mockGraphService) AdjacencyMatrix(ctx context.Context) (*models.AdjacencyMatrixResult, error) {
	return m.adjMatrixFn(ctx)
}

func (m *mockGraphService) Similarity(ctx context.Context, a, b int) (*models.SimilarityResult, error) {
	return m.similarityFn(ctx, a, b)
}

func (m *mockGraphService) GenerateRandom(ctx context.Context, req models.RandomGraphRequest) (*models.GraphStatistics, error) {
	return m.randomFn(ctx, req)
}

func (m *mockGraphService) ClearGraph(ctx context.Context) error {
	return m.clearFn(ctx)
}

func (m *mockGraphService) ClearHighlights(ctx context.Context) error {
	return m.clearHLFn(ctx)
}

type mockAlgorithmService struct {
	runFn   func(ctx context.Context, req models.RunAlgorithmRequest) (*models.AlgorithmResult, error)
	namesFn func(ctx context.Context) []string
}

func (m *mockAlgorithmService) RunAlgorithm(ctx context.Context, req models.RunAlgorithmRequest) (*models.AlgorithmResult, error) {
	return m.runFn(ctx, req)
}

func (m *mockAlgorithmService) Algorithms(ctx context.Context) []string {
	return m.namesFn(ctx)
}

type mockLayoutService struct {
	startFn     func(ctx context.Context) error
	stopFn      func(ctx context.Context) error
	resetFn     func(ctx context.Context) error
	reheatFn    func(ctx context.Context) error
	stepFn      func(ctx context.Context, iterations int) (int, error)
	paramsFn    func(ctx context.Context) (layout.Config, bool, error)
	setParamsFn func(ctx context.Context, cfg layout.Config) (layout.Config, error)
}

func (m *mockLayoutService) StartLayout(ctx context.Context) error {
	return m.startFn(ctx)
}

func (m *mockLayoutService) StopLayout(ctx context.Context) error {
	return m.stopFn(ctx)
}

func (m *mockLayoutService) ResetLayout(ctx context.Context) error {
	return m.resetFn(ctx)
}

func (m *mockLayoutService) ReheatLayout(ctx context.Context) error {
	return m.reheatFn(ctx)
}

func (m *mockLayoutService) StepLayout(ctx context.Context, iterations int) (int, error) {
	return m.stepFn(ctx, iterations)
}

func (m *mockLayoutService) LayoutParams(ctx context.Context) (layout.Config, bool, error) {
	return m.paramsFn(ctx)
}

func (m *mockLayoutService) SetLayoutParams(ctx context.Context, cfg layout.Config) (layout.Config, error) {
	return m.setParamsFn(ctx, cfg)
}

type mockExportService struct {
	exportFn func(ctx context.Context) (*models.ExportFormat, error)
	importFn func(ctx context.Context, data *models.ExportFormat) (*models.ImportResult, error)
}

func (m *mockExportService) Export(ctx context.Context) (*models.ExportFormat, error) {
	return m.exportFn(ctx)
}

func (m *mockExportService) Import(ctx context.Context, data *models.ExportFormat) (*models.ImportResult, error) {
	return m.importFn(ctx, data)
}
