package algorithms

import (
	"reflect"
	"testing"
)

func TestBFS_LevelsAndOrder(t *testing.T) {
	t.Parallel()

	// 1 - 2 - 4
	//   \ 3 - 5
	g := testGraph(t, 5, [][2]int{{1, 2}, {1, 3}, {2, 4}, {3, 5}})

	res := (&BFS{}).Run(g, Params{StartID: 1})

	if !res.Success {
		t.Fatalf("failed: %s", res.Message)
	}

	wantOrder := []int{1, 2, 3, 4, 5}
	if !reflect.DeepEqual(res.VisitOrder, wantOrder) {
		t.Errorf("visit order = %v, want %v", res.VisitOrder, wantOrder)
	}

	wantLevels := map[int]int{1: 0, 2: 1, 3: 1, 4: 2, 5: 2}
	if !reflect.DeepEqual(res.Levels, wantLevels) {
		t.Errorf("levels = %v, want %v", res.Levels, wantLevels)
	}
}

func TestBFS_TieBreakByInsertionOrder(t *testing.T) {
	t.Parallel()

	// Edges added out of id order; neighbors of 1 are [3, 2].
	g := testGraph(t, 3, [][2]int{{1, 3}, {1, 2}})

	res := (&BFS{}).Run(g, Params{StartID: 1})

	want := []int{1, 3, 2}
	if !reflect.DeepEqual(res.VisitOrder, want) {
		t.Errorf("visit order = %v, want %v", res.VisitOrder, want)
	}
}

func TestBFS_UnreachableExcluded(t *testing.T) {
	t.Parallel()

	g := testGraph(t, 4, [][2]int{{1, 2}})

	res := (&BFS{}).Run(g, Params{StartID: 1})

	if len(res.VisitOrder) != 2 {
		t.Errorf("visit order = %v, want only the reachable pair", res.VisitOrder)
	}
}

func TestBFS_MissingStart(t *testing.T) {
	t.Parallel()

	g := testGraph(t, 1, nil)

	res := (&BFS{}).Run(g, Params{StartID: 42})

	if res.Success {
		t.Fatal("expected failure")
	}
	if want := "start node 42 not found"; res.Message != want {
		t.Errorf("message = %q, want %q", res.Message, want)
	}
}

func TestDFS_DepthFirstOrder(t *testing.T) {
	t.Parallel()

	// 1 - 2 - 4
	//   \ 3
	g := testGraph(t, 4, [][2]int{{1, 2}, {1, 3}, {2, 4}})

	res := (&DFS{}).Run(g, Params{StartID: 1})

	if !res.Success {
		t.Fatalf("failed: %s", res.Message)
	}

	// First neighbor explored to full depth before the second.
	want := []int{1, 2, 4, 3}
	if !reflect.DeepEqual(res.VisitOrder, want) {
		t.Errorf("visit order = %v, want %v", res.VisitOrder, want)
	}
}

func TestDFS_VisitsEachNodeOnce(t *testing.T) {
	t.Parallel()

	// Cycle: every node reachable via two routes.
	g := testGraph(t, 4, [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}})

	res := (&DFS{}).Run(g, Params{StartID: 1})

	seen := make(map[int]bool)
	for _, id := range res.VisitOrder {
		if seen[id] {
			t.Fatalf("node %d visited twice in %v", id, res.VisitOrder)
		}
		seen[id] = true
	}
	if len(seen) != 4 {
		t.Errorf("visited %d nodes, want 4", len(seen))
	}
}

func TestDFS_MissingStart(t *testing.T) {
	t.Parallel()

	res := (&DFS{}).Run(testGraph(t, 1, nil), Params{StartID: 9})

	if res.Success {
		t.Fatal("expected failure")
	}
}
