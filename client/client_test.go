package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestServer returns a server routing each method+path to a canned
// handler, plus a client pointed at it.
func newTestServer(t *testing.T, routes map[string]http.HandlerFunc) *Client {
	t.Helper()

	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, handler)
	}

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return New(srv.URL)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encoding response: %v", err)
	}
}

func TestNodes_CRUD(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/nodes": func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{
				"nodes": []Node{{ID: 1, Name: "User_1"}},
				"count": 1,
			})
		},
		"POST /api/v1/nodes": func(w http.ResponseWriter, r *http.Request) {
			var req CreateNodeRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decoding request: %v", err)
			}
			writeJSON(t, w, http.StatusCreated, Node{ID: 2, Name: req.Name})
		},
		"DELETE /api/v1/nodes/2": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
	})

	nodes, err := c.Nodes.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Name != "User_1" {
		t.Errorf("nodes = %+v", nodes)
	}

	created, err := c.Nodes.Create(context.Background(), &CreateNodeRequest{Name: "Alice"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 2 || created.Name != "Alice" {
		t.Errorf("created = %+v", created)
	}

	if err := c.Nodes.Delete(context.Background(), 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestAPIError(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/nodes/99": func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusNotFound, map[string]string{
				"code":       "not_found",
				"message":    "node not found",
				"request_id": "abc123",
			})
		},
	})

	_, err := c.Nodes.Get(context.Background(), 99)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound = false for %v", err)
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.Code != "not_found" || apiErr.RequestID != "abc123" {
		t.Errorf("error = %+v", apiErr)
	}
}

func TestAPIError_NonJSONBody(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/stats": func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		},
	})

	_, err := c.Stats(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway || apiErr.Code != "unknown" {
		t.Errorf("error = %+v", apiErr)
	}
}

func TestAlgorithms_Run(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/algorithms/run": func(w http.ResponseWriter, r *http.Request) {
			var req RunAlgorithmRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decoding request: %v", err)
			}
			if req.Algorithm != "bfs" || req.StartID == nil || *req.StartID != 1 {
				t.Errorf("request = %+v", req)
			}
			writeJSON(t, w, http.StatusOK, AlgorithmResult{
				Algorithm:  "bfs",
				Success:    true,
				VisitOrder: []int{1, 2},
			})
		},
	})

	start := 1
	result, err := c.Algorithms.Run(context.Background(), &RunAlgorithmRequest{
		Algorithm: "bfs",
		StartID:   &start,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !result.Success || len(result.VisitOrder) != 2 {
		t.Errorf("result = %+v", result)
	}
}

func TestLayout_Params(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/layout/params": func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusOK, LayoutParams{
				Params:  LayoutConfig{Repulsion: 15000, Damping: 0.85},
				Running: true,
			})
		},
	})

	params, err := c.Layout.Params(context.Background())
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	if !params.Running || params.Params.Repulsion != 15000 {
		t.Errorf("params = %+v", params)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/health": func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusOK, HealthResponse{Status: "ok", Version: "1.0.0"})
		},
	})

	health, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if health.Status != "ok" || health.Version != "1.0.0" {
		t.Errorf("health = %+v", health)
	}
}
