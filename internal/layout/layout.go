// Package layout implements the force-directed placement solver. Nodes repel
// each other with an inverse-square force while edges pull their endpoints
// together like springs; damping bleeds kinetic energy each step so the
// simulation settles instead of oscillating.
package layout

import (
	"context"
	"math"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/graph"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// Config holds the physics parameters of the simulation.
type Config struct {
	// Repulsion is the Coulomb-style constant of the pairwise push force.
	Repulsion float64 `json:"repulsion,omitempty"`
	// Attraction is the spring constant of the per-edge pull force. The pull
	// is modulated by edge weight, so similar endpoints settle nearer.
	Attraction float64 `json:"attraction,omitempty"`
	// Damping scales velocity each step; must be below 1 for convergence.
	Damping float64 `json:"damping,omitempty"`
	// MinDistance clamps the repulsion distance to avoid extreme forces on
	// near-coincident nodes.
	MinDistance float64 `json:"min_distance,omitempty"`
	// MaxVelocity caps per-step node speed.
	MaxVelocity float64 `json:"max_velocity,omitempty"`
	// Gravity is the weak centering force that keeps components on screen.
	Gravity float64 `json:"gravity,omitempty"`
	// CoolingRate shrinks the annealing temperature each step.
	CoolingRate float64 `json:"cooling_rate,omitempty"`
	// Iterations is the default step budget of a full run.
	Iterations int `json:"iterations,omitempty"`
}

// DefaultConfig returns the reference parameter set.
func DefaultConfig() Config {
	return Config{
		Repulsion:   15000,
		Attraction:  0.04,
		Damping:     0.85,
		MinDistance: 80,
		MaxVelocity: 50,
		Gravity:     0.1,
		CoolingRate: 0.999,
		Iterations:  150,
	}
}

// minTemperature is the annealing floor; the simulation keeps creeping at
// this temperature rather than freezing entirely.
const minTemperature = 0.01

// Simulator mutates node positions in place, one step at a time. Positions
// and velocities persist across Stop/Start so a paused layout can resume;
// only Reset discards kinetic state. Not safe for concurrent use: the caller
// serializes stepping against graph mutation.
type Simulator struct {
	cfg         Config
	temperature float64
	running     bool
}

// New creates a Simulator with the given configuration.
func New(cfg Config) *Simulator {
	return &Simulator{cfg: cfg, temperature: 1.0}
}

// Config returns the current parameter set.
func (s *Simulator) Config() Config {
	return s.cfg
}

// SetParams updates the tunable force parameters. Non-positive values leave
// the existing setting unchanged.
func (s *Simulator) SetParams(repulsion, attraction, damping float64) {
	if repulsion > 0 {
		s.cfg.Repulsion = repulsion
	}
	if attraction > 0 {
		s.cfg.Attraction = attraction
	}
	if damping > 0 && damping < 1 {
		s.cfg.Damping = damping
	}
}

// SetIterations changes the default step budget of a run. Non-positive
// values leave the existing setting unchanged.
func (s *Simulator) SetIterations(n int) {
	if n > 0 {
		s.cfg.Iterations = n
	}
}

// Running reports whether a run is active.
func (s *Simulator) Running() bool {
	return s.running
}

// Start marks the simulation as running. Kinetic state is preserved.
func (s *Simulator) Start() {
	s.running = true
}

// Stop requests a cooperative stop; the flag is honored between steps, never
// mid-step.
func (s *Simulator) Stop() {
	s.running = false
}

// Reset zeroes all node velocities and restores the annealing temperature.
func (s *Simulator) Reset(g *graph.Graph) {
	s.temperature = 1.0
	for _, node := range g.Nodes() {
		node.VX = 0
		node.VY = 0
	}
}

// Reheat raises the temperature to let a settled layout move again.
func (s *Simulator) Reheat() {
	s.temperature = math.Min(1.0, s.temperature+0.3)
}

// Run steps the simulation up to iterations times, stopping early when Stop
// is called or the context is cancelled. Returns the number of steps taken.
func (s *Simulator) Run(ctx context.Context, g *graph.Graph, iterations int) int {
	if iterations <= 0 {
		iterations = s.cfg.Iterations
	}

	s.running = true
	steps := 0

	for ; steps < iterations; steps++ {
		if !s.running || ctx.Err() != nil {
			break
		}

		s.Step(g)
	}

	s.running = false

	return steps
}

// Step advances the simulation by one tick: accumulate pairwise repulsion,
// per-edge attraction and center gravity into per-node forces, fold them into
// damped velocities, then integrate velocity into position.
func (s *Simulator) Step(g *graph.Graph) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return
	}

	fx := make(map[int]float64, len(nodes))
	fy := make(map[int]float64, len(nodes))

	for i, a := range nodes {
		for _, b := range nodes[i+1:] {
			s.applyRepulsion(a, b, fx, fy)
		}
	}

	for _, edge := range g.Edges() {
		a, okA := g.Node(edge.Source)
		b, okB := g.Node(edge.Target)
		if !okA || !okB {
			continue
		}

		// Spring pull scaled by weight: high-similarity edges settle shorter.
		dx := b.X - a.X
		dy := b.Y - a.Y
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			continue
		}

		force := s.cfg.Attraction * dist * edge.Weight
		fx[a.ID] += force * dx / dist
		fy[a.ID] += force * dy / dist
		fx[b.ID] -= force * dx / dist
		fy[b.ID] -= force * dy / dist
	}

	// Weak pull toward the centroid keeps disconnected components in view.
	var cx, cy float64
	for _, node := range nodes {
		cx += node.X
		cy += node.Y
	}
	cx /= float64(len(nodes))
	cy /= float64(len(nodes))

	for _, node := range nodes {
		dx := cx - node.X
		dy := cy - node.Y
		dist := math.Hypot(dx, dy)
		if dist > 0 {
			gravity := s.cfg.Gravity * s.temperature
			fx[node.ID] += gravity * dx / dist
			fy[node.ID] += gravity * dy / dist
		}
	}

	for _, node := range nodes {
		node.VX = (node.VX + fx[node.ID]) * s.cfg.Damping
		node.VY = (node.VY + fy[node.ID]) * s.cfg.Damping

		speed := math.Hypot(node.VX, node.VY)
		if speed > s.cfg.MaxVelocity {
			node.VX = node.VX / speed * s.cfg.MaxVelocity
			node.VY = node.VY / speed * s.cfg.MaxVelocity
		}

		node.X += node.VX * s.temperature
		node.Y += node.VY * s.temperature
	}

	s.temperature = math.Max(minTemperature, s.temperature*s.cfg.CoolingRate)
}

// applyRepulsion pushes two nodes apart with force Repulsion / d². Coincident
// nodes get a deterministic perturbation derived from their id order so the
// direction is always well-defined.
func (s *Simulator) applyRepulsion(a, b *models.Node, fx, fy map[int]float64) {
	dx := a.X - b.X
	dy := a.Y - b.Y

	if dx == 0 && dy == 0 {
		// Lower id nudges left, higher id right; never a zero direction.
		dx = 0.1 * float64(a.ID-b.ID)
	}

	dist := math.Hypot(dx, dy)
	ux := dx / dist
	uy := dy / dist

	if dist < s.cfg.MinDistance {
		dist = s.cfg.MinDistance
	}

	force := s.cfg.Repulsion / (dist * dist)

	fx[a.ID] += force * ux
	fy[a.ID] += force * uy
	fx[b.ID] -= force * ux
	fy[b.ID] -= force * uy
}
