package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

func TestGraphService_Statistics(t *testing.T) {
	t.Parallel()

	core, _ := newTestCore(t)
	nodes := NewNodeService(core)
	edges := NewEdgeService(core)
	svc := NewGraphService(core)

	ids := seedNodes(t, nodes, 3)
	if _, err := edges.CreateEdge(context.Background(), models.CreateEdgeRequest{
		Source: ids[0], Target: ids[1],
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats, err := svc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.NodeCount != 3 || stats.EdgeCount != 1 {
		t.Errorf("stats = %+v, want 3 nodes, 1 edge", stats)
	}
}

func TestGraphService_Neighbors(t *testing.T) {
	t.Parallel()

	core, _ := newTestCore(t)
	nodes := NewNodeService(core)
	edges := NewEdgeService(core)
	svc := NewGraphService(core)

	ids := seedNodes(t, nodes, 3)
	for _, target := range ids[1:] {
		if _, err := edges.CreateEdge(context.Background(), models.CreateEdgeRequest{
			Source: ids[0], Target: target,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got, err := svc.Neighbors(context.Background(), ids[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("neighbor count = %d, want 2", len(got))
	}
	if got[0].ID != ids[1] || got[1].ID != ids[2] {
		t.Errorf("neighbors = %d, %d, want %d, %d", got[0].ID, got[1].ID, ids[1], ids[2])
	}

	if _, err := svc.Neighbors(context.Background(), 99); !errors.Is(err, models.ErrNodeNotFound) {
		t.Errorf("error = %v, want ErrNodeNotFound", err)
	}
}

func TestGraphService_Similarity(t *testing.T) {
	t.Parallel()

	core, _ := newTestCore(t)
	nodes := NewNodeService(core)
	svc := NewGraphService(core)

	// No edge between the two nodes; similarity works on attributes alone.
	ids := seedNodes(t, nodes, 2)

	res, err := svc.Similarity(context.Background(), ids[0], ids[1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Identical attribute triples: weight 1, cost 1, similarity 100%.
	if res.Weight != 1 || res.Cost != 1 {
		t.Errorf("weight/cost = %f/%f, want 1/1", res.Weight, res.Cost)
	}
	if math.Abs(res.Similarity-100) > 1e-9 {
		t.Errorf("similarity = %f, want 100", res.Similarity)
	}

	if _, err := svc.Similarity(context.Background(), ids[0], 99); !errors.Is(err, models.ErrNodeNotFound) {
		t.Errorf("error = %v, want ErrNodeNotFound", err)
	}
}

func TestGraphService_AdjacencyMatrix(t *testing.T) {
	t.Parallel()

	core, _ := newTestCore(t)
	nodes := NewNodeService(core)
	edges := NewEdgeService(core)
	svc := NewGraphService(core)

	ids := seedNodes(t, nodes, 2)
	if _, err := edges.CreateEdge(context.Background(), models.CreateEdgeRequest{
		Source: ids[0], Target: ids[1],
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := svc.AdjacencyMatrix(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.NodeIDs) != 2 || len(res.Matrix) != 2 {
		t.Fatalf("matrix shape = %d ids, %d rows", len(res.NodeIDs), len(res.Matrix))
	}
	if res.Matrix[0][1] == 0 || res.Matrix[0][1] != res.Matrix[1][0] {
		t.Errorf("matrix = %v, want symmetric nonzero off-diagonal", res.Matrix)
	}
}

func TestGraphService_GenerateRandom(t *testing.T) {
	t.Parallel()

	core, _ := newTestCore(t)
	nodes := NewNodeService(core)
	svc := NewGraphService(core)

	// Existing content is replaced, not appended to.
	seedNodes(t, nodes, 3)

	stats, err := svc.GenerateRandom(context.Background(), models.RandomGraphRequest{
		Nodes:           10,
		EdgeProbability: 1.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.NodeCount != 10 {
		t.Errorf("node count = %d, want 10", stats.NodeCount)
	}
	// Probability 1 connects every pair.
	if want := 45; stats.EdgeCount != want {
		t.Errorf("edge count = %d, want %d", stats.EdgeCount, want)
	}
}

func TestGraphService_GenerateRandom_Invalid(t *testing.T) {
	t.Parallel()

	core, _ := newTestCore(t)
	svc := NewGraphService(core)

	tests := []struct {
		name string
		req  models.RandomGraphRequest
	}{
		{"zero nodes", models.RandomGraphRequest{Nodes: 0, EdgeProbability: 0.5}},
		{"too many nodes", models.RandomGraphRequest{Nodes: 20000, EdgeProbability: 0.5}},
		{"probability above one", models.RandomGraphRequest{Nodes: 5, EdgeProbability: 1.5}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := svc.GenerateRandom(context.Background(), tt.req); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestGraphService_ClearGraph(t *testing.T) {
	t.Parallel()

	core, _ := newTestCore(t)
	nodes := NewNodeService(core)
	svc := NewGraphService(core)

	seedNodes(t, nodes, 3)

	if err := svc.ClearGraph(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, _ := nodes.ListNodes(context.Background())
	if len(list) != 0 {
		t.Errorf("node count = %d after clear, want 0", len(list))
	}
}
