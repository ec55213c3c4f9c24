// Package graph implements the in-memory store for the social network graph:
// node and edge ownership, mutation operations, adjacency queries, and the
// eager edge-weight bookkeeping that keeps traversal costs consistent.
//
// The store is deliberately lock-free: the design assumes a single active
// mutator, and serialization is the caller's responsibility.
package graph

import (
	"fmt"
	"sort"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// edgeKey is the normalized unordered identity of an edge (low id first).
type edgeKey struct {
	a, b int
}

func keyFor(source, target int) edgeKey {
	if source > target {
		source, target = target, source
	}

	return edgeKey{a: source, b: target}
}

// Graph owns the complete set of nodes and edges for a session. Node ids are
// assigned at creation and never reused after deletion within the session.
type Graph struct {
	nodes     map[int]*models.Node
	adjacency map[int][]int // neighbor ids in edge insertion order
	edges     []*models.Edge
	edgeIndex map[edgeKey]*models.Edge
	nextID    int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:     make(map[int]*models.Node),
		adjacency: make(map[int][]int),
		edgeIndex: make(map[edgeKey]*models.Edge),
		nextID:    1,
	}
}

// AddNode creates a node from the request and returns it. Unset optional
// fields default to zero; randomized defaults are a caller concern.
func (g *Graph) AddNode(req models.CreateNodeRequest) *models.Node {
	node := &models.Node{
		ID:    g.nextID,
		Name:  req.Name,
		Color: models.DefaultNodeColor,
	}
	g.nextID++

	if node.Name == "" {
		node.Name = fmt.Sprintf("User_%d", node.ID)
	}

	if req.X != nil {
		node.X = *req.X
	}
	if req.Y != nil {
		node.Y = *req.Y
	}
	if req.Activity != nil {
		node.Activity = *req.Activity
	}
	if req.Interaction != nil {
		node.Interaction = *req.Interaction
	}

	g.nodes[node.ID] = node
	g.adjacency[node.ID] = nil
	g.resetColors()

	return node
}

// ImportNode inserts a node with an explicit id, used when rebuilding a graph
// from exported records. Fails with ErrDuplicateNode if the id is taken.
func (g *Graph) ImportNode(rec models.ExportNode) (*models.Node, error) {
	if _, exists := g.nodes[rec.ID]; exists {
		return nil, models.ErrDuplicateNode
	}

	node := &models.Node{
		ID:          rec.ID,
		Name:        rec.Name,
		X:           rec.X,
		Y:           rec.Y,
		Activity:    rec.Activity,
		Interaction: rec.Interaction,
		Color:       models.DefaultNodeColor,
	}

	if node.Name == "" {
		node.Name = fmt.Sprintf("User_%d", node.ID)
	}

	g.nodes[node.ID] = node
	g.adjacency[node.ID] = nil

	if rec.ID >= g.nextID {
		g.nextID = rec.ID + 1
	}

	return node, nil
}

// RemoveNode deletes a node and cascades removal of all incident edges,
// decrementing former neighbors' connection counts. Returns false if the id
// is absent.
func (g *Graph) RemoveNode(id int) bool {
	if _, exists := g.nodes[id]; !exists {
		return false
	}

	neighbors := append([]int(nil), g.adjacency[id]...)
	for _, nid := range neighbors {
		g.detachEdge(id, nid)
	}

	delete(g.adjacency, id)
	delete(g.nodes, id)

	// Degree changes ripple into the weights of the survivors' other edges.
	for _, nid := range neighbors {
		g.recomputeIncident(nid)
	}

	g.resetColors()

	return true
}

// UpdateNode applies a partial update to a node. Returns false if the id is
// absent. If activity or interaction changed, every incident edge's weight is
// recomputed immediately so traversal costs never go stale.
func (g *Graph) UpdateNode(id int, req models.UpdateNodeRequest) bool {
	node, exists := g.nodes[id]
	if !exists {
		return false
	}

	attrsChanged := false

	if req.Name != nil {
		node.Name = *req.Name
	}
	if req.X != nil {
		node.X = *req.X
	}
	if req.Y != nil {
		node.Y = *req.Y
	}
	if req.Activity != nil && *req.Activity != node.Activity {
		node.Activity = *req.Activity
		attrsChanged = true
	}
	if req.Interaction != nil && *req.Interaction != node.Interaction {
		node.Interaction = *req.Interaction
		attrsChanged = true
	}
	if req.Selected != nil {
		node.Selected = *req.Selected
	}
	if req.Highlighted != nil {
		node.Highlighted = *req.Highlighted
	}

	if attrsChanged {
		g.recomputeIncident(id)
	}

	return true
}

// AddEdge creates an undirected edge between two existing, distinct nodes.
// Adding an edge that already exists returns the existing edge unchanged.
func (g *Graph) AddEdge(source, target int) (*models.Edge, error) {
	if source == target {
		return nil, models.ErrSelfLoop
	}

	src, ok := g.nodes[source]
	if !ok {
		return nil, fmt.Errorf("source %d: %w", source, models.ErrNodeNotFound)
	}

	tgt, ok := g.nodes[target]
	if !ok {
		return nil, fmt.Errorf("target %d: %w", target, models.ErrNodeNotFound)
	}

	if edge, exists := g.edgeIndex[keyFor(source, target)]; exists {
		return edge, nil
	}

	edge := &models.Edge{Source: source, Target: target}
	g.edges = append(g.edges, edge)
	g.edgeIndex[keyFor(source, target)] = edge
	g.adjacency[source] = append(g.adjacency[source], target)
	g.adjacency[target] = append(g.adjacency[target], source)
	src.ConnectionCount = len(g.adjacency[source])
	tgt.ConnectionCount = len(g.adjacency[target])

	// Both endpoints' degrees changed, so all their edges need fresh weights.
	g.recomputeIncident(source)
	g.recomputeIncident(target)

	g.resetColors()

	return edge, nil
}

// RemoveEdge deletes the edge between two nodes. Returns false if no such
// edge exists.
func (g *Graph) RemoveEdge(source, target int) bool {
	if _, exists := g.edgeIndex[keyFor(source, target)]; !exists {
		return false
	}

	g.detachEdge(source, target)
	g.recomputeIncident(source)
	g.recomputeIncident(target)
	g.resetColors()

	return true
}

// detachEdge removes an edge from all bookkeeping and refreshes the endpoint
// connection counts. Weight recomputation is the caller's job.
func (g *Graph) detachEdge(source, target int) {
	delete(g.edgeIndex, keyFor(source, target))

	for i, e := range g.edges {
		if e.Contains(source) && e.Contains(target) {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)

			break
		}
	}

	g.adjacency[source] = removeID(g.adjacency[source], target)
	g.adjacency[target] = removeID(g.adjacency[target], source)

	if n, ok := g.nodes[source]; ok {
		n.ConnectionCount = len(g.adjacency[source])
	}
	if n, ok := g.nodes[target]; ok {
		n.ConnectionCount = len(g.adjacency[target])
	}
}

// recomputeIncident refreshes the weight of every edge touching nodeID.
func (g *Graph) recomputeIncident(nodeID int) {
	node, ok := g.nodes[nodeID]
	if !ok {
		return
	}

	for _, nid := range g.adjacency[nodeID] {
		edge, exists := g.edgeIndex[keyFor(nodeID, nid)]
		if !exists {
			continue
		}

		if other, ok := g.nodes[edge.Other(nodeID)]; ok {
			edge.Weight = Weight(node, other)
		}
	}
}

func removeID(ids []int, id int) []int {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}

// resetColors restores the neutral display color on every node after a
// topology mutation, per the display-state contract.
func (g *Graph) resetColors() {
	for _, node := range g.nodes {
		node.Color = models.DefaultNodeColor
	}
}

// ResetColors restores the neutral display color on every node.
func (g *Graph) ResetColors() {
	g.resetColors()
}

// ClearHighlights clears all node and edge highlight flags.
func (g *Graph) ClearHighlights() {
	for _, node := range g.nodes {
		node.Highlighted = false
	}
	for _, edge := range g.edges {
		edge.Highlighted = false
	}
}

// Clear removes all nodes and edges. The id counter is not reset: ids are
// never reused within a session.
func (g *Graph) Clear() {
	g.nodes = make(map[int]*models.Node)
	g.adjacency = make(map[int][]int)
	g.edges = nil
	g.edgeIndex = make(map[edgeKey]*models.Edge)
}

// Node returns the node with the given id.
func (g *Graph) Node(id int) (*models.Node, bool) {
	node, ok := g.nodes[id]

	return node, ok
}

// HasNode reports whether a node with the given id exists.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns all nodes in ascending id order.
func (g *Graph) Nodes() []*models.Node {
	out := make([]*models.Node, 0, len(g.nodes))
	for _, id := range g.NodeIDs() {
		out = append(out, g.nodes[id])
	}

	return out
}

// NodeIDs returns all node ids in ascending order.
func (g *Graph) NodeIDs() []int {
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*models.Edge {
	return append([]*models.Edge(nil), g.edges...)
}

// Edge returns the edge between two nodes, in either direction.
func (g *Graph) Edge(source, target int) (*models.Edge, bool) {
	edge, ok := g.edgeIndex[keyFor(source, target)]

	return edge, ok
}

// HasEdge reports whether an edge exists between two nodes.
func (g *Graph) HasEdge(source, target int) bool {
	_, ok := g.edgeIndex[keyFor(source, target)]

	return ok
}

// Neighbors returns the ids of all nodes adjacent to nodeID, in edge
// insertion order. Traversal tie-breaking is defined by this order.
func (g *Graph) Neighbors(nodeID int) []int {
	return append([]int(nil), g.adjacency[nodeID]...)
}

// Degree returns the number of edges incident to nodeID.
func (g *Graph) Degree(nodeID int) int {
	return len(g.adjacency[nodeID])
}

// AdjacencyList returns a copy of the full adjacency structure.
func (g *Graph) AdjacencyList() map[int][]int {
	out := make(map[int][]int, len(g.adjacency))
	for id, neighbors := range g.adjacency {
		out[id] = append([]int(nil), neighbors...)
	}

	return out
}

// AdjacencyMatrix returns a symmetric weight-valued matrix over the nodes in
// ascending id order, with 0 where no edge exists, plus that id order.
func (g *Graph) AdjacencyMatrix() ([][]float64, []int) {
	ids := g.NodeIDs()
	index := make(map[int]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	matrix := make([][]float64, len(ids))
	for i := range matrix {
		matrix[i] = make([]float64, len(ids))
	}

	for _, edge := range g.edges {
		i, j := index[edge.Source], index[edge.Target]
		matrix[i][j] = edge.Weight
		matrix[j][i] = edge.Weight
	}

	return matrix, ids
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Density returns 2E / (V * (V-1)), zero for fewer than two nodes.
func (g *Graph) Density() float64 {
	n := len(g.nodes)
	if n <= 1 {
		return 0
	}

	return 2 * float64(len(g.edges)) / (float64(n) * float64(n-1))
}

// AverageDegree returns the mean node degree, zero for an empty graph.
func (g *Graph) AverageDegree() float64 {
	if len(g.nodes) == 0 {
		return 0
	}

	total := 0
	for _, neighbors := range g.adjacency {
		total += len(neighbors)
	}

	return float64(total) / float64(len(g.nodes))
}

// Statistics returns the aggregate topology summary.
func (g *Graph) Statistics() models.GraphStatistics {
	stats := models.GraphStatistics{
		NodeCount:     len(g.nodes),
		EdgeCount:     len(g.edges),
		Density:       g.Density(),
		AverageDegree: g.AverageDegree(),
	}

	first := true
	for id := range g.nodes {
		d := len(g.adjacency[id])
		if first || d > stats.MaxDegree {
			stats.MaxDegree = d
		}
		if first || d < stats.MinDegree {
			stats.MinDegree = d
		}
		first = false
	}

	return stats
}
