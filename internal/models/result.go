package models

// Canonical algorithm names accepted by the engine.
const (
	AlgorithmBFS        = "bfs"
	AlgorithmDFS        = "dfs"
	AlgorithmDijkstra   = "dijkstra"
	AlgorithmAStar      = "astar"
	AlgorithmComponents = "components"
	AlgorithmCentrality = "degree-centrality"
	AlgorithmColoring   = "welsh-powell"
)

// Step is a single entry in an algorithm's animation log. It is an
// append-only artifact for optional external replay, never a control-flow
// mechanism; callers are free to ignore it.
type Step struct {
	Type       string  `json:"type"`
	NodeID     int     `json:"node_id,omitempty"`
	FromID     int     `json:"from_id,omitempty"`
	Level      int     `json:"level,omitempty"`
	Cost       float64 `json:"cost,omitempty"`
	ColorIndex int     `json:"color_index,omitempty"`
	Component  int     `json:"component,omitempty"`
}

// CentralityRank is one entry of the degree-centrality ranking.
type CentralityRank struct {
	NodeID     int     `json:"node_id"`
	Degree     int     `json:"degree"`
	Centrality float64 `json:"centrality"`
}

// AlgorithmResult is the uniform output of any algorithm invocation.
// Exactly one payload group is populated depending on the algorithm; a failed
// run carries only Algorithm, Success=false, ElapsedMS and Message. Results
// are always complete or cleanly failed, never partial.
type AlgorithmResult struct {
	Algorithm string  `json:"algorithm"`
	Success   bool    `json:"success"`
	ElapsedMS float64 `json:"elapsed_ms"`
	Message   string  `json:"message"`
	Steps     []Step  `json:"steps,omitempty"`

	// Traversal payload (bfs, dfs).
	VisitOrder []int       `json:"visit_order,omitempty"`
	Levels     map[int]int `json:"levels,omitempty"`

	// Shortest-path payload (dijkstra, astar).
	Path      []int   `json:"path,omitempty"`
	TotalCost float64 `json:"total_cost,omitempty"`

	// Components payload.
	Components [][]int `json:"components,omitempty"`

	// Centrality payload.
	Ranking []CentralityRank `json:"ranking,omitempty"`

	// Coloring payload. Color indices are 1-based.
	Coloring       map[int]int `json:"coloring,omitempty"`
	ChromaticCount int         `json:"chromatic_count,omitempty"`
}

// RunAlgorithmRequest is the payload for invoking an algorithm by name.
type RunAlgorithmRequest struct {
	Algorithm string `json:"algorithm"`
	StartID   *int   `json:"start_id,omitempty"`
	TargetID  *int   `json:"target_id,omitempty"`
	TopK      int    `json:"top_k,omitempty"`
}

// Validate checks RunAlgorithmRequest fields.
func (r *RunAlgorithmRequest) Validate() error {
	if r.Algorithm == "" {
		return ErrUnknownAlgorithm
	}

	return nil
}
