package algorithms

import (
	"sort"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/graph"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// ConnectedComponents partitions all nodes into maximal mutually-reachable
// sets. Components are returned sorted by descending size, ties broken by
// ascending minimum node id, so output is deterministic for any input.
type ConnectedComponents struct{}

// Name returns the canonical algorithm name.
func (*ConnectedComponents) Name() string { return models.AlgorithmComponents }

// Run sweeps every node in ascending id order, collecting one component per
// unvisited node via BFS.
func (*ConnectedComponents) Run(g *graph.Graph, _ Params) *models.AlgorithmResult {
	r := start(models.AlgorithmComponents)

	visited := make(map[int]bool)
	var components [][]int

	for _, id := range g.NodeIDs() {
		if visited[id] {
			continue
		}

		component := []int{id}
		visited[id] = true
		queue := []int{id}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			r.step(models.Step{Type: "visit", NodeID: cur, Component: len(components)})

			for _, nid := range g.Neighbors(cur) {
				if visited[nid] {
					continue
				}

				visited[nid] = true
				component = append(component, nid)
				queue = append(queue, nid)
			}
		}

		components = append(components, component)
	}

	sort.SliceStable(components, func(i, j int) bool {
		if len(components[i]) != len(components[j]) {
			return len(components[i]) > len(components[j])
		}

		return minID(components[i]) < minID(components[j])
	})

	return r.finish(&models.AlgorithmResult{
		Components: components,
	}, "%d connected components found", len(components))
}

func minID(ids []int) int {
	m := ids[0]
	for _, id := range ids[1:] {
		if id < m {
			m = id
		}
	}

	return m
}
