package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

var (
	csvNodeHeader = []string{"id", "name", "x", "y", "activity", "interaction", "connection_count"}
	csvEdgeHeader = []string{"source_id", "target_id", "weight"}
)

// WriteCSV renders an export as two CSV sections separated by a blank line:
// a node table followed by an edge table, each with its own header row.
func WriteCSV(w io.Writer, data *models.ExportFormat) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvNodeHeader); err != nil {
		return fmt.Errorf("writing node header: %w", err)
	}
	for _, node := range data.Nodes {
		row := []string{
			strconv.Itoa(node.ID),
			node.Name,
			formatFloat(node.X),
			formatFloat(node.Y),
			formatFloat(node.Activity),
			formatFloat(node.Interaction),
			strconv.Itoa(node.ConnectionCount),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing node %d: %w", node.ID, err)
		}
	}

	if err := cw.Write([]string{""}); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	if err := cw.Write(csvEdgeHeader); err != nil {
		return fmt.Errorf("writing edge header: %w", err)
	}
	for _, edge := range data.Edges {
		row := []string{
			strconv.Itoa(edge.Source),
			strconv.Itoa(edge.Target),
			formatFloat(edge.Weight),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing edge %d-%d: %w", edge.Source, edge.Target, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// ReadCSV parses the two-section CSV layout produced by WriteCSV.
func ReadCSV(r io.Reader) (*models.ExportFormat, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv payload is empty")
	}
	if !matchesHeader(rows[0], csvNodeHeader) {
		return nil, fmt.Errorf("unexpected node header %v", rows[0])
	}

	data := &models.ExportFormat{}

	i := 1
	for ; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			i++

			break
		}
		// The reader drops the blank separator line entirely, so the edge
		// header may follow the last node row directly.
		if matchesHeader(row, csvEdgeHeader) {
			break
		}
		if len(row) != len(csvNodeHeader) {
			return nil, fmt.Errorf("node row %d has %d fields, want %d", i+1, len(row), len(csvNodeHeader))
		}

		node, err := parseNodeRow(row)
		if err != nil {
			return nil, fmt.Errorf("node row %d: %w", i+1, err)
		}
		data.Nodes = append(data.Nodes, node)
	}

	if i < len(rows) {
		if !matchesHeader(rows[i], csvEdgeHeader) {
			return nil, fmt.Errorf("unexpected edge header %v", rows[i])
		}
		i++
	}

	for ; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}
		if len(row) != len(csvEdgeHeader) {
			return nil, fmt.Errorf("edge row %d has %d fields, want %d", i+1, len(row), len(csvEdgeHeader))
		}

		edge, err := parseEdgeRow(row)
		if err != nil {
			return nil, fmt.Errorf("edge row %d: %w", i+1, err)
		}
		data.Edges = append(data.Edges, edge)
	}

	data.Stats = models.ExportStats{
		NodeCount: len(data.Nodes),
		EdgeCount: len(data.Edges),
	}

	return data, nil
}

func parseNodeRow(row []string) (models.ExportNode, error) {
	var (
		node models.ExportNode
		err  error
	)

	if node.ID, err = strconv.Atoi(row[0]); err != nil {
		return node, fmt.Errorf("id %q: %w", row[0], err)
	}
	node.Name = row[1]
	if node.X, err = strconv.ParseFloat(row[2], 64); err != nil {
		return node, fmt.Errorf("x %q: %w", row[2], err)
	}
	if node.Y, err = strconv.ParseFloat(row[3], 64); err != nil {
		return node, fmt.Errorf("y %q: %w", row[3], err)
	}
	if node.Activity, err = strconv.ParseFloat(row[4], 64); err != nil {
		return node, fmt.Errorf("activity %q: %w", row[4], err)
	}
	if node.Interaction, err = strconv.ParseFloat(row[5], 64); err != nil {
		return node, fmt.Errorf("interaction %q: %w", row[5], err)
	}
	if node.ConnectionCount, err = strconv.Atoi(row[6]); err != nil {
		return node, fmt.Errorf("connection_count %q: %w", row[6], err)
	}

	return node, nil
}

func parseEdgeRow(row []string) (models.ExportEdge, error) {
	var (
		edge models.ExportEdge
		err  error
	)

	if edge.Source, err = strconv.Atoi(row[0]); err != nil {
		return edge, fmt.Errorf("source_id %q: %w", row[0], err)
	}
	if edge.Target, err = strconv.Atoi(row[1]); err != nil {
		return edge, fmt.Errorf("target_id %q: %w", row[1], err)
	}
	if edge.Weight, err = strconv.ParseFloat(row[2], 64); err != nil {
		return edge, fmt.Errorf("weight %q: %w", row[2], err)
	}

	return edge, nil
}

func matchesHeader(row, header []string) bool {
	if len(row) != len(header) {
		return false
	}
	for i := range header {
		if row[i] != header[i] {
			return false
		}
	}

	return true
}

func isBlank(row []string) bool {
	for _, field := range row {
		if field != "" {
			return false
		}
	}

	return true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
