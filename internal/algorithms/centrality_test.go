package algorithms

import (
	"math"
	"testing"
)

func TestDegreeCentrality_StarGraph(t *testing.T) {
	t.Parallel()

	// Node 1 connected to everything else.
	g := testGraph(t, 5, [][2]int{{1, 2}, {1, 3}, {1, 4}, {1, 5}})

	res := (&DegreeCentrality{}).Run(g, Params{})

	if !res.Success {
		t.Fatalf("failed: %s", res.Message)
	}
	if len(res.Ranking) != 5 {
		t.Fatalf("ranking length = %d, want 5", len(res.Ranking))
	}

	top := res.Ranking[0]
	if top.NodeID != 1 || top.Degree != 4 {
		t.Errorf("top = node %d degree %d, want node 1 degree 4", top.NodeID, top.Degree)
	}
	if top.Centrality != 1.0 {
		t.Errorf("hub centrality = %f, want 1.0", top.Centrality)
	}

	for _, rank := range res.Ranking[1:] {
		want := 1.0 / 4.0
		if math.Abs(rank.Centrality-want) > 1e-12 {
			t.Errorf("leaf %d centrality = %f, want %f", rank.NodeID, rank.Centrality, want)
		}
	}

	if want := "most central node: 1 (degree 4)"; res.Message != want {
		t.Errorf("message = %q, want %q", res.Message, want)
	}
}

func TestDegreeCentrality_TiesByNodeID(t *testing.T) {
	t.Parallel()

	g := testGraph(t, 4, [][2]int{{3, 4}, {1, 2}})

	res := (&DegreeCentrality{}).Run(g, Params{})

	for i, want := range []int{1, 2, 3, 4} {
		if res.Ranking[i].NodeID != want {
			t.Errorf("ranking[%d] = node %d, want %d", i, res.Ranking[i].NodeID, want)
		}
	}
}

func TestDegreeCentrality_TopK(t *testing.T) {
	t.Parallel()

	g := testGraph(t, 5, [][2]int{{1, 2}, {1, 3}, {1, 4}, {1, 5}})

	res := (&DegreeCentrality{}).Run(g, Params{TopK: 2})

	if !res.Success {
		t.Fatalf("failed: %s", res.Message)
	}
	if len(res.Ranking) != 2 {
		t.Fatalf("ranking length = %d with top_k=2, want 2", len(res.Ranking))
	}
	if res.Ranking[0].NodeID != 1 {
		t.Errorf("top node = %d, want 1", res.Ranking[0].NodeID)
	}
	// The headline message reflects the full ranking, not the truncation.
	if want := "most central node: 1 (degree 4)"; res.Message != want {
		t.Errorf("message = %q, want %q", res.Message, want)
	}
}

func TestDegreeCentrality_TopKLargerThanGraph(t *testing.T) {
	t.Parallel()

	g := testGraph(t, 3, [][2]int{{1, 2}})

	res := (&DegreeCentrality{}).Run(g, Params{TopK: 10})

	if len(res.Ranking) != 3 {
		t.Errorf("ranking length = %d, want 3", len(res.Ranking))
	}
}

func TestDegreeCentrality_EmptyGraph(t *testing.T) {
	t.Parallel()

	res := (&DegreeCentrality{}).Run(testGraph(t, 0, nil), Params{})

	if !res.Success {
		t.Fatalf("failed: %s", res.Message)
	}
	if want := "graph is empty"; res.Message != want {
		t.Errorf("message = %q, want %q", res.Message, want)
	}
}

func TestDegreeCentrality_SingleNode(t *testing.T) {
	t.Parallel()

	res := (&DegreeCentrality{}).Run(testGraph(t, 1, nil), Params{})

	if !res.Success {
		t.Fatalf("failed: %s", res.Message)
	}
	if res.Ranking[0].Centrality != 0 {
		t.Errorf("single-node centrality = %f, want 0", res.Ranking[0].Centrality)
	}
}
