package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/config"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

// eventRecorder captures broadcast event types. The layout runner broadcasts
// from its own goroutine, so access is locked.
type eventRecorder struct {
	mu     sync.Mutex
	events []string
}

func (r *eventRecorder) BroadcastEvent(eventType string, _ json.RawMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, eventType)
}

func (r *eventRecorder) has(eventType string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.events {
		if e == eventType {
			return true
		}
	}

	return false
}

func (r *eventRecorder) count(eventType string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, e := range r.events {
		if e == eventType {
			n++
		}
	}

	return n
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	return log
}

func newTestCore(t *testing.T) (*Core, *eventRecorder) {
	t.Helper()

	rec := &eventRecorder{}
	cfg := &config.Config{AStarHeuristicScale: 0.01}

	return NewCore(cfg, rec, testLogger()), rec
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

// seedNodes creates n nodes with identical fixed attributes and returns their
// ids, keeping derived weights predictable.
func seedNodes(t *testing.T, svc *NodeService, n int) []int {
	t.Helper()

	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		node, err := svc.CreateNode(context.Background(), models.CreateNodeRequest{
			X: floatPtr(100), Y: floatPtr(100),
			Activity:    floatPtr(0.5),
			Interaction: floatPtr(10),
		})
		if err != nil {
			t.Fatalf("creating node: %v", err)
		}
		ids = append(ids, node.ID)
	}

	return ids
}
