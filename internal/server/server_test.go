// internal/server/server_test.go
package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington-activities/internal/common/config"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/notifications"
	"mergington-activities/internal/registry"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:      8000,
			StaticDir: "static",
		},
		Handlers: map[string]config.HandlerConfig{
			"list-activities": {Enabled: true, Timeout: 5000},
			"signup":          {Enabled: true, Timeout: 5000},
			"unregister":      {Enabled: true, Timeout: 5000},
		},
	}
}

func createTestServer(t *testing.T) (*Server, *registry.Registry) {
	reg := registry.NewDefault()
	srv := New(createTestConfig(), reg, notifications.NoopNotifier{}, logger.NewTestLogger(t), nil, nil)
	return srv, reg
}

func do(t *testing.T, srv *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

// ==========================
// Routing Tests
// ==========================

func TestRootRedirect(t *testing.T) {
	srv, _ := createTestServer(t)

	rec := do(t, srv, http.MethodGet, "/")

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/static/index.html")
}

func TestSignupRoute_PercentEncodedActivityName(t *testing.T) {
	srv, reg := createTestServer(t)

	rec := do(t, srv, http.MethodPost, "/activities/Chess%20Club/signup?email=newstudent@mergington.edu")

	assert.Equal(t, http.StatusOK, rec.Code)

	a, ok := reg.Get("Chess Club")
	require.True(t, ok)
	assert.Contains(t, a.Participants, "newstudent@mergington.edu")
}

func TestUnregisterRoute_PercentEncodedActivityName(t *testing.T) {
	srv, reg := createTestServer(t)

	rec := do(t, srv, http.MethodDelete, "/activities/Chess%20Club/unregister?email=michael@mergington.edu")

	assert.Equal(t, http.StatusOK, rec.Code)

	a, _ := reg.Get("Chess Club")
	assert.NotContains(t, a.Participants, "michael@mergington.edu")
}

func TestActivitiesRoute(t *testing.T) {
	srv, _ := createTestServer(t)

	rec := do(t, srv, http.MethodGet, "/activities")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]registry.Activity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 9)
}

func TestHealthEndpoints(t *testing.T) {
	srv, _ := createTestServer(t)

	for _, path := range []string{"/health", "/ready"} {
		rec := do(t, srv, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["status"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := createTestServer(t)

	rec := do(t, srv, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestIDHeader(t *testing.T) {
	srv, _ := createTestServer(t)

	rec := do(t, srv, http.MethodGet, "/activities")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestDisabledHandlerNotRouted(t *testing.T) {
	cfg := createTestConfig()
	cfg.Handlers["signup"] = config.HandlerConfig{Enabled: false, Timeout: 5000}

	srv := New(cfg, registry.NewDefault(), notifications.NoopNotifier{}, logger.NewTestLogger(t), nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup?email=a@b.edu", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
