package algorithms

import (
	"github.com/EmircanDemirTR/social-network-analyzer/internal/graph"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// BFS explores the reachable subgraph level by level from a start node.
// Each node is enqueued at most once, the moment it is first discovered, and
// its level is the edge count from the start. Ties among same-level nodes
// resolve in neighbor insertion order.
type BFS struct{}

// Name returns the canonical algorithm name.
func (*BFS) Name() string { return models.AlgorithmBFS }

// Run executes the search from p.StartID.
func (*BFS) Run(g *graph.Graph, p Params) *models.AlgorithmResult {
	r := start(models.AlgorithmBFS)

	if !g.HasNode(p.StartID) {
		return r.fail("start node %d not found", p.StartID)
	}

	type entry struct {
		id    int
		level int
	}

	visited := map[int]bool{p.StartID: true}
	levels := make(map[int]int)
	var order []int

	queue := []entry{{id: p.StartID, level: 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		order = append(order, cur.id)
		levels[cur.id] = cur.level
		r.step(models.Step{Type: "visit", NodeID: cur.id, Level: cur.level})

		for _, nid := range g.Neighbors(cur.id) {
			if visited[nid] {
				continue
			}

			visited[nid] = true
			queue = append(queue, entry{id: nid, level: cur.level + 1})
			r.step(models.Step{Type: "discover", NodeID: nid, FromID: cur.id, Level: cur.level + 1})
		}
	}

	return r.finish(&models.AlgorithmResult{
		VisitOrder: order,
		Levels:     levels,
	}, "visited %d nodes", len(order))
}

// DFS explores as deep as possible before backtracking, using an explicit
// stack rather than recursion to bound stack depth on large graphs. A node is
// marked visited at pop time, not push time, so it may sit on the stack more
// than once but is processed exactly once.
type DFS struct{}

// Name returns the canonical algorithm name.
func (*DFS) Name() string { return models.AlgorithmDFS }

// Run executes the search from p.StartID.
func (*DFS) Run(g *graph.Graph, p Params) *models.AlgorithmResult {
	r := start(models.AlgorithmDFS)

	if !g.HasNode(p.StartID) {
		return r.fail("start node %d not found", p.StartID)
	}

	type frame struct {
		id    int
		depth int
	}

	visited := make(map[int]bool)
	var order []int

	stack := []frame{{id: p.StartID, depth: 0}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[cur.id] {
			continue
		}

		visited[cur.id] = true
		order = append(order, cur.id)
		r.step(models.Step{Type: "visit", NodeID: cur.id, Level: cur.depth})

		// Push in reverse so the first neighbor in insertion order is
		// popped first, matching the recursive visitation order.
		neighbors := g.Neighbors(cur.id)
		for i := len(neighbors) - 1; i >= 0; i-- {
			if !visited[neighbors[i]] {
				stack = append(stack, frame{id: neighbors[i], depth: cur.depth + 1})
			}
		}
	}

	return r.finish(&models.AlgorithmResult{
		VisitOrder: order,
	}, "visited %d nodes", len(order))
}
