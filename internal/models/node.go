// Package models defines data types for the social network graph.
package models

import "fmt"

// DefaultNodeColor is the neutral display color assigned to nodes at creation
// and restored whenever the graph mutates or colors are reset.
const DefaultNodeColor = "#00d9ff"

// Node represents a user (vertex) in the social network graph.
//
// X/Y are the layout position; VX/VY are the layout velocity and are zero
// outside a layout run. Activity and Interaction are user-set domain scores
// consumed by edge-weight derivation. ConnectionCount is derived state equal
// to the node's current degree; it is maintained by the graph store and never
// settable by callers.
type Node struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	VX              float64 `json:"-"`
	VY              float64 `json:"-"`
	Activity        float64 `json:"activity"`
	Interaction     float64 `json:"interaction"`
	ConnectionCount int     `json:"connection_count"`
	Color           string  `json:"color"`
	Selected        bool    `json:"selected"`
	Highlighted     bool    `json:"highlighted"`
}

// CreateNodeRequest is the payload for creating a new node.
// Position and scores are optional; unset values are filled with defaults or
// randomized by the service layer.
type CreateNodeRequest struct {
	Name        string   `json:"name"`
	X           *float64 `json:"x,omitempty"`
	Y           *float64 `json:"y,omitempty"`
	Activity    *float64 `json:"activity,omitempty"`
	Interaction *float64 `json:"interaction,omitempty"`
}

// Validate checks CreateNodeRequest fields.
func (r *CreateNodeRequest) Validate() error {
	if len(r.Name) > 255 {
		return ErrFieldTooLong("name", 255)
	}

	if r.Activity != nil && (*r.Activity < 0 || *r.Activity > 1) {
		return fmt.Errorf("activity must be between 0 and 1")
	}

	if r.Interaction != nil && *r.Interaction < 0 {
		return fmt.Errorf("interaction must be non-negative")
	}

	return nil
}

// UpdateNodeRequest is the payload for updating an existing node.
// Nil fields are left unchanged. Changing Activity or Interaction triggers
// recomputation of every incident edge's weight.
type UpdateNodeRequest struct {
	Name        *string  `json:"name,omitempty"`
	X           *float64 `json:"x,omitempty"`
	Y           *float64 `json:"y,omitempty"`
	Activity    *float64 `json:"activity,omitempty"`
	Interaction *float64 `json:"interaction,omitempty"`
	Selected    *bool    `json:"selected,omitempty"`
	Highlighted *bool    `json:"highlighted,omitempty"`
}

// Validate checks UpdateNodeRequest fields.
func (r *UpdateNodeRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if r.Name != nil && len(*r.Name) > 255 {
		return ErrFieldTooLong("name", 255)
	}

	if r.Activity != nil && (*r.Activity < 0 || *r.Activity > 1) {
		return fmt.Errorf("activity must be between 0 and 1")
	}

	if r.Interaction != nil && *r.Interaction < 0 {
		return fmt.Errorf("interaction must be non-negative")
	}

	return nil
}
