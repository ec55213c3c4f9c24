package models

import "time"

// ExportFormat is the top-level structure of a graph export file. It carries
// exactly the plain node/edge records of the data contract; derived state
// (connection counts, weights) is included for inspection but recomputed on
// import so a round trip is always internally consistent.
type ExportFormat struct {
	ExportedAt time.Time    `json:"exported_at"`
	Stats      ExportStats  `json:"stats"`
	Nodes      []ExportNode `json:"nodes"`
	Edges      []ExportEdge `json:"edges"`
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

// ImportResult summarises the outcome of an import operation.
type ImportResult struct {
	NodesCreated int      `json:"nodes_created"`
	EdgesCreated int      `json:"edges_created"`
	Errors       []string `json:"errors,omitempty"`
}
