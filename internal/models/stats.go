package models

// GraphStatistics summarises the current graph topology.
// Density is 2E / (V * (V-1)); zero for graphs with fewer than two nodes.
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

// Validate checks RandomGraphRequest fields.
func (r *RandomGraphRequest) Validate() error {
	if r.Nodes < 1 || r.Nodes > 10000 {
		return ErrFieldOutOfRange("nodes", 1, 10000)
	}

	if r.EdgeProbability < 0 || r.EdgeProbability > 1 {
		return ErrFieldOutOfRange("edge_probability", 0, 1)
	}

	return nil
}
