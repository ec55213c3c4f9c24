package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/api"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/layout"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/models"
)

func TestLayout_StartStop(t *testing.T) {
	t.Parallel()

	svc := &mockLayoutService{
		startFn: func(context.Context) error { return nil },
		stopFn:  func(context.Context) error { return nil },
	}
	router := newTestRouter(api.RouterDeps{Layout: svc})

	w := doRequest(t, router, http.MethodPost, "/api/v1/layout/start", "")
	if w.Code != http.StatusOK {
		t.Fatalf("start status = %d, want 200", w.Code)
	}

	var resp map[string]string
	decodeBody(t, w, &resp)
	if resp["status"] != "running" {
		t.Errorf("status = %q, want %q", resp["status"], "running")
	}

	w = doRequest(t, router, http.MethodPost, "/api/v1/layout/stop", "")
	if w.Code != http.StatusOK {
		t.Fatalf("stop status = %d, want 200", w.Code)
	}
	decodeBody(t, w, &resp)
	if resp["status"] != "stopped" {
		t.Errorf("status = %q, want %q", resp["status"], "stopped")
	}
}

func TestLayout_Step(t *testing.T) {
	t.Parallel()

	var gotIterations int
	svc := &mockLayoutService{
		stepFn: func(_ context.Context, iterations int) (int, error) {
			gotIterations = iterations

			return 42, nil
		},
	}
	router := newTestRouter(api.RouterDeps{Layout: svc})

	w := doRequest(t, router, http.MethodPost, "/api/v1/layout/step", `{"iterations":42}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotIterations != 42 {
		t.Errorf("service got %d iterations, want 42", gotIterations)
	}

	var resp map[string]int
	decodeBody(t, w, &resp)
	if resp["steps"] != 42 {
		t.Errorf("steps = %d, want 42", resp["steps"])
	}
}

// An empty body means "use the configured iteration budget".
func TestLayout_Step_EmptyBody(t *testing.T) {
	t.Parallel()

	svc := &mockLayoutService{
		stepFn: func(_ context.Context, iterations int) (int, error) {
			if iterations != 0 {
				t.Errorf("iterations = %d, want 0", iterations)
			}

			return 150, nil
		},
	}
	router := newTestRouter(api.RouterDeps{Layout: svc})

	w := doRequest(t, router, http.MethodPost, "/api/v1/layout/step", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestLayout_Step_Conflict(t *testing.T) {
	t.Parallel()

	svc := &mockLayoutService{
		stepFn: func(context.Context, int) (int, error) {
			return 0, models.ErrLayoutRunning
		},
	}
	router := newTestRouter(api.RouterDeps{Layout: svc})

	w := doRequest(t, router, http.MethodPost, "/api/v1/layout/step", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	if e := decodeError(t, w); e.Code != "conflict" {
		t.Errorf("error code = %q, want %q", e.Code, "conflict")
	}
}

func TestLayout_GetParams(t *testing.T) {
	t.Parallel()

	svc := &mockLayoutService{
		paramsFn: func(context.Context) (layout.Config, bool, error) {
			return layout.DefaultConfig(), true, nil
		},
	}
	router := newTestRouter(api.RouterDeps{Layout: svc})

	w := doRequest(t, router, http.MethodGet, "/api/v1/layout/params", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Params  layout.Config `json:"params"`
		Running bool          `json:"running"`
	}
	decodeBody(t, w, &resp)
	if !resp.Running {
		t.Error("running = false, want true")
	}
	if resp.Params.Repulsion != layout.DefaultConfig().Repulsion {
		t.Errorf("repulsion = %f", resp.Params.Repulsion)
	}
}

func TestLayout_SetParams(t *testing.T) {
	t.Parallel()

	svc := &mockLayoutService{
		setParamsFn: func(_ context.Context, cfg layout.Config) (layout.Config, error) {
			if cfg.Damping >= 1 {
				return layout.Config{}, models.ErrFieldOutOfRange("damping", 0, 1)
			}
			out := layout.DefaultConfig()
			out.Damping = cfg.Damping

			return out, nil
		},
	}
	router := newTestRouter(api.RouterDeps{Layout: svc})

	w := doRequest(t, router, http.MethodPut, "/api/v1/layout/params", `{"damping":0.9}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	w = doRequest(t, router, http.MethodPut, "/api/v1/layout/params", `{"damping":1.2}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
