package models

// Edge represents an undirected, weighted connection between two nodes.
//
// The pair (Source, Target) is unordered identity: an edge between 3 and 7 is
// the same edge as one between 7 and 3. Weight is derived from the endpoints'
// attribute triples and lies in (0, 1]; it is recomputed by the graph store
// whenever either endpoint's relevant attributes change.
type Edge struct {
	Source      int     `json:"source_id"`
	Target      int     `json:"target_id"`
	Weight      float64 `json:"weight"`
	Highlighted bool    `json:"highlighted"`
}

// Cost returns the traversal cost used by shortest-path algorithms.
// Similar endpoints (weight near 1) are cheap to traverse between.
func (e *Edge) Cost() float64 {
	return 1.0 / e.Weight
}

// Contains reports whether nodeID is one of the edge's endpoints.
func (e *Edge) Contains(nodeID int) bool {
	return e.Source == nodeID || e.Target == nodeID
}

// Other returns the opposite endpoint of nodeID, or -1 if nodeID is not part
// of this edge.
func (e *Edge) Other(nodeID int) int {
	switch nodeID {
	case e.Source:
		return e.Target
	case e.Target:
		return e.Source
	default:
		return -1
	}
}

// CreateEdgeRequest is the payload for creating a new edge.
type CreateEdgeRequest struct {
	Source int `json:"source_id"`
	Target int `json:"target_id"`
}

// Validate checks CreateEdgeRequest fields.
func (r *CreateEdgeRequest) Validate() error {
	if r.Source == r.Target {
		return ErrSelfLoop
	}

	return nil
}
