package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/domain"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/layout"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/metrics"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/ws"
)

// Compile-time check: *LayoutService must satisfy domain.LayoutService.
var _ domain.LayoutService = (*LayoutService)(nil)

// tickInterval paces the background layout runner; roughly 30 steps/second.
const tickInterval = 33 * time.Millisecond

// LayoutService controls the force-directed solver. Start spawns a single
// background runner that steps the simulation under the core mutex, so HTTP
// requests interleave with layout ticks instead of waiting for a full run.
type LayoutService struct {
	core *Core
}

// NewLayoutService creates a LayoutService.
func NewLayoutService(core *Core) *LayoutService {
	return &LayoutService{core: core}
}

// StartLayout begins a background layout run. Starting an active run is a
// no-op; kinetic state carries over from any previous run.
func (s *LayoutService) StartLayout(_ context.Context) error {
	s.core.mu.Lock()
	if s.core.sim.Running() {
		s.core.mu.Unlock()

		return nil
	}
	prev := s.core.layoutDone
	s.core.mu.Unlock()

	// Wait for a stopping runner to exit so two runners never step at once.
	if prev != nil {
		<-prev
	}

	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	if s.core.sim.Running() {
		return nil
	}

	s.core.sim.Start()

	done := make(chan struct{})
	s.core.layoutDone = done

	go s.run(done)

	s.core.log.Info("layout started")

	return nil
}

// run is the background stepping loop. It exits when the step budget is
// spent or Stop flips the running flag; the flag is only honored between
// steps.
func (s *LayoutService) run(done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	s.core.mu.Lock()
	budget := s.core.sim.Config().Iterations
	s.core.mu.Unlock()

	for steps := 0; ; steps++ {
		<-ticker.C

		s.core.mu.Lock()

		if !s.core.sim.Running() || steps >= budget {
			s.core.sim.Stop()
			s.core.mu.Unlock()
			s.notifyStopped(steps)

			return
		}

		s.core.sim.Step(s.core.graph)
		metrics.LayoutIterations.Inc()
		positions := s.core.snapshotPositions()

		s.core.mu.Unlock()

		s.notifyTick(positions)
	}
}

func (s *LayoutService) notifyTick(positions []nodePosition) {
	if s.core.hub == nil {
		return
	}

	data, err := json.Marshal(positions)
	if err != nil {
		s.core.log.WithError(err).Error("failed to marshal layout tick")

		return
	}

	s.core.hub.BroadcastEvent(ws.EventLayoutTick, data)
}

func (s *LayoutService) notifyStopped(steps int) {
	s.core.log.WithField("steps", steps).Info("layout stopped")

	if s.core.hub == nil {
		return
	}

	data, err := json.Marshal(map[string]int{"steps": steps})
	if err != nil {
		return
	}

	s.core.hub.BroadcastEvent(ws.EventLayoutStopped, data)
}

// StopLayout requests a cooperative stop. The current step always completes.
func (s *LayoutService) StopLayout(_ context.Context) error {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	s.core.sim.Stop()

	return nil
}

// ResetLayout zeroes node velocities and restores the annealing temperature.
func (s *LayoutService) ResetLayout(_ context.Context) error {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	s.core.sim.Reset(s.core.graph)
	s.core.notifyGraphChanged()

	return nil
}

// ReheatLayout raises the temperature so a settled layout moves again.
func (s *LayoutService) ReheatLayout(_ context.Context) error {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	s.core.sim.Reheat()

	return nil
}

// StepLayout advances the simulation synchronously. It refuses while a
// background run is active. Returns the number of steps actually taken.
func (s *LayoutService) StepLayout(ctx context.Context, iterations int) (int, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	if s.core.sim.Running() {
		return 0, models.ErrLayoutRunning
	}

	steps := s.core.sim.Run(ctx, s.core.graph, iterations)
	metrics.LayoutIterations.Add(float64(steps))
	s.core.notifyGraphChanged()

	return steps, nil
}

// LayoutParams returns the current solver configuration and whether a run is
// active.
func (s *LayoutService) LayoutParams(_ context.Context) (layout.Config, bool, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	return s.core.sim.Config(), s.core.sim.Running(), nil
}

// SetLayoutParams applies the positive fields of cfg as overrides and returns
// the resulting configuration. Zero fields leave settings unchanged.
func (s *LayoutService) SetLayoutParams(_ context.Context, cfg layout.Config) (layout.Config, error) {
	if cfg.Damping >= 1 {
		return layout.Config{}, models.ErrFieldOutOfRange("damping", 0, 1)
	}

	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	s.core.sim.SetParams(cfg.Repulsion, cfg.Attraction, cfg.Damping)
	s.core.sim.SetIterations(cfg.Iterations)

	return s.core.sim.Config(), nil
}

// Shutdown stops any active layout run and waits for the runner to exit.
func (c *Core) Shutdown() {
	c.mu.Lock()
	c.sim.Stop()
	done := c.layoutDone
	c.mu.Unlock()

	if done != nil {
		<-done
	}
}
