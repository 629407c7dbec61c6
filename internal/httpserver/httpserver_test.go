package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selection-assistant/internal/credential"
	"selection-assistant/internal/middleware"
	"selection-assistant/internal/model"
	"selection-assistant/internal/router"
	"selection-assistant/pkg/log"
	"selection-assistant/pkg/response"
)

type stubUseCase struct {
	status credential.Status
}

func (s stubUseCase) Submit(context.Context, model.TaskRequest) model.TaskResult {
	return model.NewSuccess("done")
}

func (s stubUseCase) Preview(context.Context, model.TaskRequest) (model.ModelQuery, *model.Failure) {
	return model.ModelQuery{}, nil
}

func (s stubUseCase) SetCredential(context.Context, string) error { return nil }

func (s stubUseCase) CredentialStatus(context.Context) credential.Status { return s.status }

func (s stubUseCase) Actions(context.Context) []router.ActionInfo { return router.New().Actions() }

func newTestServer(t *testing.T, metricsEnabled bool) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:         l,
		Port:           8080,
		Mode:           "test",
		Environment:    "development",
		MetricsEnabled: metricsEnabled,
		Middleware:     middleware.New(l, middleware.Config{AllowedOrigins: []string{"chrome-extension://*"}}),
		AssistantUC:    stubUseCase{status: credential.Status{Configured: true, Source: credential.SourceStore}},
	})
	require.NoError(t, err)
	return srv
}

func TestNew_Validate(t *testing.T) {
	l := log.NewNop()

	_, err := New(l, Config{Mode: "test", Port: 8080})
	assert.Error(t, err, "missing usecase must be rejected")

	_, err = New(l, Config{Mode: "test", AssistantUC: stubUseCase{}})
	assert.Error(t, err, "missing port must be rejected")
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, true)

	for _, path := range []string{"/health", "/ready", "/live", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
		})
	}
}

func TestReady_ReportsCredential(t *testing.T) {
	srv := newTestServer(t, false)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp.Data.(map[string]interface{})["credential_configured"])
}

func TestMetrics_Disabled(t *testing.T) {
	srv := newTestServer(t, false)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPIRoutes(t *testing.T) {
	srv := newTestServer(t, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(`{"action":"summarize","text":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/actions", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/tasks", nil)
	req.Header.Set("Origin", "chrome-extension://abc")
	req.Header.Set("Access-Control-Request-Method", "POST")
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "chrome-extension://abc", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRun_StopsOnCancel(t *testing.T) {
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:      l,
		Port:        18089,
		Mode:        "test",
		Middleware:  middleware.New(l, middleware.Config{}),
		AssistantUC: stubUseCase{},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	assert.NoError(t, <-done)
}
