package client

import "time"

// Node represents a person in the social network graph.
type Node struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	Activity        float64 `json:"activity"`
	Interaction     float64 `json:"interaction"`
	ConnectionCount int     `json:"connection_count"`
	Color           string  `json:"color"`
	Selected        bool    `json:"selected"`
	Highlighted     bool    `json:"highlighted"`
}

// Edge represents an undirected relationship between two nodes.
type Edge struct {
	Source      int     `json:"source_id"`
	Target      int     `json:"target_id"`
	Weight      float64 `json:"weight"`
	Highlighted bool    `json:"highlighted"`
}

// CreateNodeRequest is the payload for creating a node. Unset optional
// fields are randomized server-side.
type CreateNodeRequest struct {
	Name        string   `json:"name,omitempty"`
	X           *float64 `json:"x,omitempty"`
	Y           *float64 `json:"y,omitempty"`
	Activity    *float64 `json:"activity,omitempty"`
	Interaction *float64 `json:"interaction,omitempty"`
}

// UpdateNodeRequest is the payload for a partial node update.
type UpdateNodeRequest struct {
	Name        *string  `json:"name,omitempty"`
	X           *float64 `json:"x,omitempty"`
	Y           *float64 `json:"y,omitempty"`
	Activity    *float64 `json:"activity,omitempty"`
	Interaction *float64 `json:"interaction,omitempty"`
	Selected    *bool    `json:"selected,omitempty"`
	Highlighted *bool    `json:"highlighted,omitempty"`
}

// CreateEdgeRequest is the payload for creating an edge.
type CreateEdgeRequest struct {
	Source int `json:"source_id"`
	Target int `json:"target_id"`
}

// GraphStatistics summarises the current graph topology.
type GraphStatistics struct {
	NodeCount     int     `json:"node_count"`
	EdgeCount     int     `json:"edge_count"`
	Density       float64 `json:"density"`
	AverageDegree float64 `json:"average_degree"`
	MaxDegree     int     `json:"max_degree"`
	MinDegree     int     `json:"min_degree"`
}

// SimilarityResult describes the attribute-space relation of two nodes.
type SimilarityResult struct {
	Source     int     `json:"source_id"`
	Target     int     `json:"target_id"`
	Weight     float64 `json:"weight"`
	Cost       float64 `json:"cost"`
	Similarity float64 `json:"similarity_percent"`
}

// AdjacencyMatrixResult pairs a weight-valued adjacency matrix with the node
// id order of its rows and columns.
type AdjacencyMatrixResult struct {
	NodeIDs []int       `json:"node_ids"`
	Matrix  [][]float64 `json:"matrix"`
}

// RandomGraphRequest is the payload for generating a demo graph.
type RandomGraphRequest struct {
	Nodes           int     `json:"nodes"`
	EdgeProbability float64 `json:"edge_probability"`
}

// RunAlgorithmRequest is the payload for invoking an algorithm by name.
type RunAlgorithmRequest struct {
	Algorithm string `json:"algorithm"`
	StartID   *int   `json:"start_id,omitempty"`
	TargetID  *int   `json:"target_id,omitempty"`
	TopK      int    `json:"top_k,omitempty"`
}

// Step is one frame of an algorithm's animation playback.
type Step struct {
	Type       string  `json:"type"`
	NodeID     int     `json:"node_id"`
	FromID     int     `json:"from_id,omitempty"`
	Level      int     `json:"level,omitempty"`
	Cost       float64 `json:"cost,omitempty"`
	ColorIndex int     `json:"color_index,omitempty"`
	Component  int     `json:"component,omitempty"`
}

// CentralityRank is one row of a degree centrality ranking.
type CentralityRank struct {
	NodeID     int     `json:"node_id"`
	Degree     int     `json:"degree"`
	Centrality float64 `json:"centrality"`
}

// AlgorithmResult is the uniform envelope of every algorithm run.
type AlgorithmResult struct {
	Algorithm      string           `json:"algorithm"`
	Success        bool             `json:"success"`
	ElapsedMS      float64          `json:"elapsed_ms"`
	Message        string           `json:"message"`
	Steps          []Step           `json:"steps,omitempty"`
	VisitOrder     []int            `json:"visit_order,omitempty"`
	Levels         map[int]int      `json:"levels,omitempty"`
	Path           []int            `json:"path,omitempty"`
	TotalCost      float64          `json:"total_cost,omitempty"`
	Components     [][]int          `json:"components,omitempty"`
	Ranking        []CentralityRank `json:"ranking,omitempty"`
	Coloring       map[int]int      `json:"coloring,omitempty"`
	ChromaticCount int              `json:"chromatic_count,omitempty"`
}

// LayoutConfig is the tunable parameter set of the layout solver.
type LayoutConfig struct {
	Repulsion   float64 `json:"repulsion,omitempty"`
	Attraction  float64 `json:"attraction,omitempty"`
	Damping     float64 `json:"damping,omitempty"`
	MinDistance float64 `json:"min_distance,omitempty"`
	MaxVelocity float64 `json:"max_velocity,omitempty"`
	Gravity     float64 `json:"gravity,omitempty"`
	CoolingRate float64 `json:"cooling_rate,omitempty"`
	Iterations  int     `json:"iterations,omitempty"`
}

// LayoutParams pairs the solver configuration with its run state.
type LayoutParams struct {
	Params  LayoutConfig `json:"params"`
	Running bool         `json:"running"`
}

// ExportStats summarises the contents of an export.
type ExportStats struct {
	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`
}

// ExportNode is the portable representation of a node.
type ExportNode struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	Activity        float64 `json:"activity"`
	Interaction     float64 `json:"interaction"`
	ConnectionCount int     `json:"connection_count"`
}

// ExportEdge is the portable representation of an edge.
type ExportEdge struct {
	Source int     `json:"source_id"`
	Target int     `json:"target_id"`
	Weight float64 `json:"weight"`
}

// ExportFormat is the top-level structure of a graph export file.
type ExportFormat struct {
	ExportedAt time.Time    `json:"exported_at"`
	Stats      ExportStats  `json:"stats"`
	Nodes      []ExportNode `json:"nodes"`
	Edges      []ExportEdge `json:"edges"`
}

// ImportResult summarises the outcome of an import operation.
type ImportResult struct {
	NodesCreated int      `json:"nodes_created"`
	EdgesCreated int      `json:"edges_created"`
	Errors       []string `json:"errors,omitempty"`
}

// HealthResponse is the liveness check payload.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	WSClients     int     `json:"ws_clients"`
}
