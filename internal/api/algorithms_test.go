package api_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/api"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

func TestAlgorithms_List(t *testing.T) {
	t.Parallel()

	svc := &mockAlgorithmService{
		namesFn: func(context.Context) []string {
			return []string{"astar", "bfs", "components", "degree-centrality", "dfs", "dijkstra", "welsh-powell"}
		},
	}
	router := newTestRouter(api.RouterDeps{Algorithms: svc})

	w := doRequest(t, router, http.MethodGet, "/api/v1/algorithms", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Algorithms []string `json:"algorithms"`
	}
	decodeBody(t, w, &resp)
	if len(resp.Algorithms) != 7 {
		t.Errorf("algorithms = %v", resp.Algorithms)
	}
}

func TestAlgorithms_Run(t *testing.T) {
	t.Parallel()

	svc := &mockAlgorithmService{
		runFn: func(_ context.Context, req models.RunAlgorithmRequest) (*models.AlgorithmResult, error) {
			return &models.AlgorithmResult{
				Algorithm:  req.Algorithm,
				Success:    true,
				VisitOrder: []int{1, 2, 3},
				Message:    "visited 3 nodes",
			}, nil
		},
	}
	router := newTestRouter(api.RouterDeps{Algorithms: svc})

	w := doRequest(t, router, http.MethodPost, "/api/v1/algorithms/run", `{"algorithm":"bfs","start_id":1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var result models.AlgorithmResult
	decodeBody(t, w, &result)
	if result.Algorithm != "bfs" || !result.Success {
		t.Errorf("result = %+v", result)
	}
}

// A run that fails inside the algorithm is still a 200: the request was
// valid, the graph just could not satisfy it.
func TestAlgorithms_Run_FailedResult(t *testing.T) {
	t.Parallel()

	svc := &mockAlgorithmService{
		runFn: func(context.Context, models.RunAlgorithmRequest) (*models.AlgorithmResult, error) {
			return &models.AlgorithmResult{
				Algorithm: "dijkstra",
				Success:   false,
				Message:   "no path between 1 and 4",
			}, nil
		},
	}
	router := newTestRouter(api.RouterDeps{Algorithms: svc})

	w := doRequest(t, router, http.MethodPost, "/api/v1/algorithms/run",
		`{"algorithm":"dijkstra","start_id":1,"target_id":4}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var result models.AlgorithmResult
	decodeBody(t, w, &result)
	if result.Success {
		t.Error("expected failed result")
	}
}

func TestAlgorithms_Run_Unknown(t *testing.T) {
	t.Parallel()

	svc := &mockAlgorithmService{
		runFn: func(_ context.Context, req models.RunAlgorithmRequest) (*models.AlgorithmResult, error) {
			return nil, fmt.Errorf("%q: %w", req.Algorithm, models.ErrUnknownAlgorithm)
		},
	}
	router := newTestRouter(api.RouterDeps{Algorithms: svc})

	w := doRequest(t, router, http.MethodPost, "/api/v1/algorithms/run", `{"algorithm":"pagerank"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAlgorithms_Run_MissingName(t *testing.T) {
	t.Parallel()

	router := newTestRouter(api.RouterDeps{Algorithms: &mockAlgorithmService{}})

	w := doRequest(t, router, http.MethodPost, "/api/v1/algorithms/run", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
