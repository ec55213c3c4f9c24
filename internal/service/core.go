// Package service provides business logic between API handlers and the
// in-memory graph engine. The graph, algorithm engine and layout solver are
// all single-threaded by design; Core serializes every access behind one
// mutex so handlers and the layout runner never race.
package service

import (
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/algorithms"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/config"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/graph"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/layout"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/metrics"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/ws"
)

// Notifier pushes typed events to connected clients. *ws.Hub satisfies it;
// tests substitute a recorder.
type Notifier interface {
	BroadcastEvent(eventType string, data json.RawMessage)
}

// Core owns the graph and everything that operates on it. All exported
// services share one Core and take its mutex around every engine access.
type Core struct {
	mu     sync.Mutex
	graph  *graph.Graph
	sim    *layout.Simulator
	engine *algorithms.Engine
	hub    Notifier
	log    *logrus.Logger
	rng    *rand.Rand

	// layoutDone is closed when the active background layout runner exits.
	layoutDone chan struct{}
}

// NewCore assembles the engine from configuration. Layout overrides of zero
// fall back to the solver defaults.
func NewCore(cfg *config.Config, hub Notifier, log *logrus.Logger) *Core {
	lc := layout.DefaultConfig()
	if cfg.LayoutRepulsion > 0 {
		lc.Repulsion = cfg.LayoutRepulsion
	}
	if cfg.LayoutAttraction > 0 {
		lc.Attraction = cfg.LayoutAttraction
	}
	if cfg.LayoutDamping > 0 && cfg.LayoutDamping < 1 {
		lc.Damping = cfg.LayoutDamping
	}
	if cfg.LayoutIterations > 0 {
		lc.Iterations = cfg.LayoutIterations
	}

	return &Core{
		graph:  graph.New(),
		sim:    layout.New(lc),
		engine: algorithms.NewEngine(cfg.AStarHeuristicScale),
		hub:    hub,
		log:    log,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// updateGauges refreshes the node and edge count gauges. Callers hold c.mu.
func (c *Core) updateGauges() {
	metrics.NodeCount.Set(float64(c.graph.NodeCount()))
	metrics.EdgeCount.Set(float64(c.graph.EdgeCount()))
}

// notifyGraphChanged broadcasts a graph.changed event with fresh statistics.
// Callers hold c.mu.
func (c *Core) notifyGraphChanged() {
	if c.hub == nil {
		return
	}

	stats := c.graph.Statistics()

	data, err := json.Marshal(stats)
	if err != nil {
		c.log.WithError(err).Error("failed to marshal graph stats")

		return
	}

	c.hub.BroadcastEvent(ws.EventGraphChanged, data)
}

// algorithmDone is the payload of an algorithm.done event.
type algorithmDone struct {
	Algorithm string  `json:"algorithm"`
	Success   bool    `json:"success"`
	ElapsedMS float64 `json:"elapsed_ms"`
	Message   string  `json:"message"`
}

// notifyAlgorithmDone broadcasts an algorithm.done event after a run
// completes, successful or not. Callers hold c.mu.
func (c *Core) notifyAlgorithmDone(result *models.AlgorithmResult) {
	if c.hub == nil {
		return
	}

	data, err := json.Marshal(algorithmDone{
		Algorithm: result.Algorithm,
		Success:   result.Success,
		ElapsedMS: result.ElapsedMS,
		Message:   result.Message,
	})
	if err != nil {
		c.log.WithError(err).Error("failed to marshal algorithm result")

		return
	}

	c.hub.BroadcastEvent(ws.EventAlgorithmDone, data)
}

// nodePosition is the per-node payload of a layout tick event.
type nodePosition struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// snapshotPositions captures current node coordinates. Callers hold c.mu.
func (c *Core) snapshotPositions() []nodePosition {
	nodes := c.graph.Nodes()

	out := make([]nodePosition, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, nodePosition{ID: n.ID, X: n.X, Y: n.Y})
	}

	return out
}

// randomNode fills unset node attributes with the conventional demo ranges:
// x in [100, 700), y in [100, 500), activity in [0.1, 1.0), interaction in
// [1, 20). Callers hold c.mu.
func (c *Core) randomNode(req models.CreateNodeRequest) models.CreateNodeRequest {
	if req.X == nil {
		x := 100 + c.rng.Float64()*600
		req.X = &x
	}
	if req.Y == nil {
		y := 100 + c.rng.Float64()*400
		req.Y = &y
	}
	if req.Activity == nil {
		a := 0.1 + c.rng.Float64()*0.9
		req.Activity = &a
	}
	if req.Interaction == nil {
		i := 1 + c.rng.Float64()*19
		req.Interaction = &i
	}

	return req
}
