package algorithms

import (
	"container/heap"
	"math"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/graph"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// frontierItem is one entry of the shortest-path priority frontier.
// priority is the heap key (distance for Dijkstra, f-score for A*);
// secondary breaks priority ties (g-score for A*, zero for Dijkstra);
// seq breaks remaining ties by insertion order, keeping extraction
// deterministic for a given mutation history.
type frontierItem struct {
	id        int
	priority  float64
	secondary float64
	seq       int
}

type frontier struct {
	items []frontierItem
	seq   int
}

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.secondary != b.secondary {
		return a.secondary < b.secondary
	}

	return a.seq < b.seq
}

func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier) Push(x any) {
	item := x.(frontierItem)
	item.seq = f.seq
	f.seq++
	f.items = append(f.items, item)
}

func (f *frontier) Pop() any {
	old := f.items
	n := len(old)
	item := old[n-1]
	f.items = old[:n-1]

	return item
}

// reversePath reverses a node-id trail in place.
func reversePath(path []int) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}

// Dijkstra finds the minimum-cost path between two nodes, where cost is the
// reciprocal of edge weight. Costs are strictly positive, so the search
// terminates with the optimal path or a clean "no path" failure.
type Dijkstra struct{}

// Name returns the canonical algorithm name.
func (*Dijkstra) Name() string { return models.AlgorithmDijkstra }

// Run executes the search from p.StartID to p.TargetID.
func (*Dijkstra) Run(g *graph.Graph, p Params) *models.AlgorithmResult {
	r := start(models.AlgorithmDijkstra)

	if !g.HasNode(p.StartID) {
		return r.fail("start node %d not found", p.StartID)
	}
	if !g.HasNode(p.TargetID) {
		return r.fail("target node %d not found", p.TargetID)
	}

	if p.StartID == p.TargetID {
		return r.finish(&models.AlgorithmResult{
			Path:      []int{p.StartID},
			TotalCost: 0,
		}, "trivial path: start equals target")
	}

	dist := map[int]float64{p.StartID: 0}
	prev := make(map[int]int)
	visited := make(map[int]bool)

	pq := &frontier{}
	heap.Push(pq, frontierItem{id: p.StartID, priority: 0})

	found := false
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(frontierItem)
		if visited[cur.id] {
			continue
		}

		visited[cur.id] = true
		r.step(models.Step{Type: "visit", NodeID: cur.id, Cost: cur.priority})

		if cur.id == p.TargetID {
			found = true

			break
		}

		for _, nid := range g.Neighbors(cur.id) {
			if visited[nid] {
				continue
			}

			edge, ok := g.Edge(cur.id, nid)
			if !ok {
				continue
			}

			candidate := cur.priority + edge.Cost()
			best, known := dist[nid]
			if !known || candidate < best {
				dist[nid] = candidate
				prev[nid] = cur.id
				heap.Push(pq, frontierItem{id: nid, priority: candidate})
				r.step(models.Step{Type: "update", NodeID: nid, FromID: cur.id, Cost: candidate})
			}
		}
	}

	if !found {
		return r.fail("%v between %d and %d", models.ErrNoPath, p.StartID, p.TargetID)
	}

	path := []int{p.TargetID}
	for cur := p.TargetID; cur != p.StartID; {
		cur = prev[cur]
		path = append(path, cur)
	}
	reversePath(path)

	return r.finish(&models.AlgorithmResult{
		Path:      path,
		TotalCost: dist[p.TargetID],
	}, "path found: %d nodes, cost %.3f", len(path), dist[p.TargetID])
}

// AStar is Dijkstra with a heuristic frontier key f = g + h, where h is the
// Euclidean distance between layout positions scaled by Scale. With an
// admissible h it returns optimal paths while exploring fewer nodes.
type AStar struct {
	// Scale tunes the position heuristic. The default is calibrated for the
	// default coordinate space; it must never make h overestimate the real
	// remaining cost if optimality is required.
	Scale float64
}

// Name returns the canonical algorithm name.
func (*AStar) Name() string { return models.AlgorithmAStar }

func (a *AStar) heuristic(g *graph.Graph, fromID, toID int) float64 {
	from, ok := g.Node(fromID)
	if !ok {
		return math.Inf(1)
	}
	to, ok := g.Node(toID)
	if !ok {
		return math.Inf(1)
	}

	dx := from.X - to.X
	dy := from.Y - to.Y

	return math.Sqrt(dx*dx+dy*dy) * a.scale()
}

func (a *AStar) scale() float64 {
	if a.Scale <= 0 {
		return DefaultHeuristicScale
	}

	return a.Scale
}

// Run executes the search from p.StartID to p.TargetID.
func (a *AStar) Run(g *graph.Graph, p Params) *models.AlgorithmResult {
	r := start(models.AlgorithmAStar)

	if !g.HasNode(p.StartID) {
		return r.fail("start node %d not found", p.StartID)
	}
	if !g.HasNode(p.TargetID) {
		return r.fail("target node %d not found", p.TargetID)
	}

	if p.StartID == p.TargetID {
		return r.finish(&models.AlgorithmResult{
			Path:      []int{p.StartID},
			TotalCost: 0,
		}, "trivial path: start equals target")
	}

	gScore := map[int]float64{p.StartID: 0}
	cameFrom := make(map[int]int)
	closed := make(map[int]bool)

	pq := &frontier{}
	heap.Push(pq, frontierItem{
		id:       p.StartID,
		priority: a.heuristic(g, p.StartID, p.TargetID),
	})

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(frontierItem)
		if closed[cur.id] {
			continue
		}

		r.step(models.Step{Type: "visit", NodeID: cur.id, Cost: gScore[cur.id]})

		if cur.id == p.TargetID {
			path := []int{p.TargetID}
			for node := p.TargetID; node != p.StartID; {
				node = cameFrom[node]
				path = append(path, node)
			}
			reversePath(path)

			return r.finish(&models.AlgorithmResult{
				Path:      path,
				TotalCost: gScore[p.TargetID],
			}, "path found: %d nodes, cost %.3f", len(path), gScore[p.TargetID])
		}

		closed[cur.id] = true

		for _, nid := range g.Neighbors(cur.id) {
			if closed[nid] {
				continue
			}

			edge, ok := g.Edge(cur.id, nid)
			if !ok {
				continue
			}

			tentative := gScore[cur.id] + edge.Cost()
			best, known := gScore[nid]
			if !known || tentative < best {
				gScore[nid] = tentative
				cameFrom[nid] = cur.id
				heap.Push(pq, frontierItem{
					id:        nid,
					priority:  tentative + a.heuristic(g, nid, p.TargetID),
					secondary: tentative,
				})
				r.step(models.Step{Type: "update", NodeID: nid, FromID: cur.id, Cost: tentative})
			}
		}
	}

	return r.fail("%v between %d and %d", models.ErrNoPath, p.StartID, p.TargetID)
}
