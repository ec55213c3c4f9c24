package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/api"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	return log
}

// newTestRouter builds a router around whatever mock services the test
// supplies; unset services stay nil and must not be reached.
func newTestRouter(deps api.RouterDeps) http.Handler {
	if deps.Log == nil {
		deps.Log = testLogger()
	}
	if deps.CORSOrigins == nil {
		deps.CORSOrigins = []string{"http://localhost:3000"}
	}
	if deps.MaxBodySize == 0 {
		deps.MaxBodySize = 1 << 20
	}
	if deps.Version == "" {
		deps.Version = "test"
	}

	return api.NewRouter(context.Background(), &deps)
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
}

// errorBody is the standardized error response shape.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var e errorBody
	decodeBody(t, w, &e)

	return e
}
