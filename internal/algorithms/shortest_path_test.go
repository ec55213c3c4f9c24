package algorithms

import (
	"math"
	"reflect"
	"testing"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/graph"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

func TestDijkstra_LineGraph(t *testing.T) {
	t.Parallel()

	g := testGraph(t, 4, [][2]int{{1, 2}, {2, 3}, {3, 4}})

	res := (&Dijkstra{}).Run(g, Params{StartID: 1, TargetID: 4})

	if !res.Success {
		t.Fatalf("failed: %s", res.Message)
	}

	wantPath := []int{1, 2, 3, 4}
	if !reflect.DeepEqual(res.Path, wantPath) {
		t.Errorf("path = %v, want %v", res.Path, wantPath)
	}

	// Endpoint degrees are 1, interior degrees 2, so the outer edges cost
	// 1/(1/(1+1)) = 2 and the middle edge costs 1.
	wantCost := 5.0
	if math.Abs(res.TotalCost-wantCost) > 1e-9 {
		t.Errorf("total cost = %f, want %f", res.TotalCost, wantCost)
	}
}

func TestDijkstra_CostMatchesEdgeCosts(t *testing.T) {
	t.Parallel()

	g := testGraph(t, 5, [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {1, 5}})

	res := (&Dijkstra{}).Run(g, Params{StartID: 2, TargetID: 5})
	if !res.Success {
		t.Fatalf("failed: %s", res.Message)
	}

	sum := 0.0
	for i := 0; i+1 < len(res.Path); i++ {
		edge, ok := g.Edge(res.Path[i], res.Path[i+1])
		if !ok {
			t.Fatalf("path %v uses nonexistent edge %d-%d", res.Path, res.Path[i], res.Path[i+1])
		}
		sum += edge.Cost()
	}

	if math.Abs(res.TotalCost-sum) > 1e-9 {
		t.Errorf("total cost = %f, edge sum = %f", res.TotalCost, sum)
	}
}

func TestDijkstra_TrivialPath(t *testing.T) {
	t.Parallel()

	g := testGraph(t, 1, nil)

	res := (&Dijkstra{}).Run(g, Params{StartID: 1, TargetID: 1})

	if !res.Success {
		t.Fatalf("failed: %s", res.Message)
	}
	if !reflect.DeepEqual(res.Path, []int{1}) || res.TotalCost != 0 {
		t.Errorf("path = %v cost %f, want [1] cost 0", res.Path, res.TotalCost)
	}
}

func TestDijkstra_NoPath(t *testing.T) {
	t.Parallel()

	g := testGraph(t, 4, [][2]int{{1, 2}, {3, 4}})

	res := (&Dijkstra{}).Run(g, Params{StartID: 1, TargetID: 4})

	if res.Success {
		t.Fatal("expected failure")
	}
	if want := "no path between 1 and 4"; res.Message != want {
		t.Errorf("message = %q, want %q", res.Message, want)
	}
}

func TestDijkstra_MissingEndpoints(t *testing.T) {
	t.Parallel()

	g := testGraph(t, 1, nil)

	if res := (&Dijkstra{}).Run(g, Params{StartID: 7, TargetID: 1}); res.Success {
		t.Error("missing start accepted")
	}
	if res := (&Dijkstra{}).Run(g, Params{StartID: 1, TargetID: 7}); res.Success {
		t.Error("missing target accepted")
	}
}

func TestAStar_MatchesDijkstraCost(t *testing.T) {
	t.Parallel()

	// Positions close together keep the scaled heuristic well under any edge
	// cost, preserving admissibility.
	g := graph.New()
	coords := [][2]float64{{100, 100}, {150, 100}, {150, 150}, {200, 150}, {200, 200}, {100, 200}}
	activity, interaction := 0.5, 10.0
	for _, c := range coords {
		x, y := c[0], c[1]
		g.AddNode(models.CreateNodeRequest{
			X: &x, Y: &y,
			Activity:    &activity,
			Interaction: &interaction,
		})
	}
	for _, e := range [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {1, 6}, {6, 5}, {2, 5}} {
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("adding edge %v: %v", e, err)
		}
	}

	dij := (&Dijkstra{}).Run(g, Params{StartID: 1, TargetID: 5})
	ast := (&AStar{}).Run(g, Params{StartID: 1, TargetID: 5})

	if !dij.Success || !ast.Success {
		t.Fatalf("dijkstra success=%v, astar success=%v", dij.Success, ast.Success)
	}
	if math.Abs(dij.TotalCost-ast.TotalCost) > 1e-9 {
		t.Errorf("astar cost = %f, dijkstra cost = %f; must agree", ast.TotalCost, dij.TotalCost)
	}
}

func TestAStar_NoPath(t *testing.T) {
	t.Parallel()

	g := testGraph(t, 2, nil)

	res := (&AStar{}).Run(g, Params{StartID: 1, TargetID: 2})

	if res.Success {
		t.Fatal("expected failure")
	}
}

func TestAStar_DefaultScale(t *testing.T) {
	t.Parallel()

	a := &AStar{}
	if got := a.scale(); got != DefaultHeuristicScale {
		t.Errorf("scale = %f, want %f", got, DefaultHeuristicScale)
	}

	a.Scale = 0.5
	if got := a.scale(); got != 0.5 {
		t.Errorf("scale = %f, want 0.5", got)
	}
}
