// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/filmgourmet/internal/graph/pajek"
	"github.com/tomtom215/filmgourmet/internal/recommend"
	"github.com/tomtom215/filmgourmet/internal/watcher"
)

const catalogGraph = `*Vertices 8
1 "Moana"
2 "Frozen"
3 "Coco"
4 "Heat"
5 "m-Animation"
6 "m-Crime"
7 "m-N/A"
8 "Up"
*Edges
1 5
2 5
3 5
8 5
4 6
4 7
`

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

type fakeReloader struct {
	err   error
	calls int
}

func (f *fakeReloader) Reload(context.Context) error {
	f.calls++
	return f.err
}

func newEngine(t *testing.T, loaded bool) *recommend.Engine {
	t.Helper()
	e, err := recommend.NewEngine(recommend.DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	if loaded {
		require.NoError(t, e.Load(context.Background(), strings.NewReader(catalogGraph)))
	}
	return e
}

func newTestServer(t *testing.T, engine Engine, reloader Reloader, mw *ChiMiddlewareConfig) http.Handler {
	t.Helper()
	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.RateLimitDisabled = true
	}
	h := NewHandler(engine, reloader, HandlerConfig{RequestTimeout: 5 * time.Second, RandomK: 2, Version: "test"})
	return NewRouter(h, mw).SetupChi()
}

func do(t *testing.T, srv http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}

func TestRecommendations_Get(t *testing.T) {
	srv := newTestServer(t, newEngine(t, true), nil, nil)

	rec, env := do(t, srv, http.MethodGet, "/api/v1/recommendations?label=Moana&k=3", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, env.Success)
	require.NotNil(t, env.Meta)
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get("X-Request-Id"))

	var data RecommendationsData
	decodeData(t, env, &data)
	assert.Equal(t, []string{"Frozen", "Coco", "Up"}, data.Recommendations)
	assert.Empty(t, data.Items)
	assert.Nil(t, data.Metadata)
}

func TestRecommendations_GetMultipleLabels(t *testing.T) {
	srv := newTestServer(t, newEngine(t, true), nil, nil)

	q := url.Values{"label": {"Moana", "Heat"}, "verbose": {"true"}}
	rec, env := do(t, srv, http.MethodGet, "/api/v1/recommendations?"+q.Encode(), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var data RecommendationsData
	decodeData(t, env, &data)
	assert.ElementsMatch(t, []string{"Frozen", "Coco", "Up"}, data.Recommendations)
	require.NotNil(t, data.Metadata)
	assert.Equal(t, []string{"Moana", "Heat"}, data.Metadata.Labels)
	assert.Len(t, data.Items, 3)
}

func TestRecommendations_PostVerbose(t *testing.T) {
	srv := newTestServer(t, newEngine(t, true), nil, nil)

	rec, env := do(t, srv, http.MethodPost, "/api/v1/recommendations",
		`{"labels":["Moana"],"k":2,"alpha":0.5,"eps":0.0001,"verbose":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var data RecommendationsData
	decodeData(t, env, &data)
	assert.Equal(t, []string{"Frozen", "Coco"}, data.Recommendations)
	require.Len(t, data.Items, 2)
	assert.Greater(t, data.Items[0].Score, 0.0)
	require.NotNil(t, data.Metadata)
	assert.Equal(t, 2, data.Metadata.K)
	assert.InDelta(t, 0.5, data.Metadata.Alpha, 1e-12)
	assert.InDelta(t, 0.0001, data.Metadata.Epsilon, 1e-12)
	assert.Equal(t, int64(1), data.Metadata.GraphVersion)
}

func TestRecommendations_Errors(t *testing.T) {
	srv := newTestServer(t, newEngine(t, true), nil, nil)

	tooMany := url.Values{}
	for i := 0; i < 11; i++ {
		tooMany.Add("label", fmt.Sprintf("Movie %d", i))
	}

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		wantCode int
		wantErr  string
	}{
		{"unknown label", http.MethodGet, "/api/v1/recommendations?label=Zootopia", "", http.StatusNotFound, ErrCodeNotFound},
		{"no labels", http.MethodGet, "/api/v1/recommendations", "", http.StatusBadRequest, ErrCodeValidation},
		{"too many labels", http.MethodGet, "/api/v1/recommendations?" + tooMany.Encode(), "", http.StatusBadRequest, ErrCodeValidation},
		{"negative k", http.MethodGet, "/api/v1/recommendations?label=Moana&k=-1", "", http.StatusBadRequest, ErrCodeValidation},
		{"k above max", http.MethodGet, "/api/v1/recommendations?label=Moana&k=1000", "", http.StatusBadRequest, ErrCodeValidation},
		{"non-numeric k", http.MethodGet, "/api/v1/recommendations?label=Moana&k=ten", "", http.StatusBadRequest, ErrCodeBadRequest},
		{"alpha out of range", http.MethodGet, "/api/v1/recommendations?label=Moana&alpha=2", "", http.StatusBadRequest, ErrCodeValidation},
		{"zero eps", http.MethodGet, "/api/v1/recommendations?label=Moana&eps=0", "", http.StatusBadRequest, ErrCodeValidation},
		{"quote in label", http.MethodGet, "/api/v1/recommendations?label=" + url.QueryEscape(`Say "Hi"`), "", http.StatusBadRequest, ErrCodeValidation},
		{"empty body list", http.MethodPost, "/api/v1/recommendations", `{"labels":[]}`, http.StatusBadRequest, ErrCodeValidation},
		{"unknown field", http.MethodPost, "/api/v1/recommendations", `{"labels":["Moana"],"limit":3}`, http.StatusBadRequest, ErrCodeBadRequest},
		{"malformed body", http.MethodPost, "/api/v1/recommendations", `{"labels":`, http.StatusBadRequest, ErrCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, srv, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
			assert.NotEmpty(t, env.Error.RequestID)
		})
	}
}

func TestRecommendations_UnknownLabelDetails(t *testing.T) {
	srv := newTestServer(t, newEngine(t, true), nil, nil)

	_, env := do(t, srv, http.MethodGet, "/api/v1/recommendations?label=Zootopia", "")
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "Zootopia")
	assert.Equal(t, map[string]interface{}{"label": "Zootopia"}, env.Error.Details)
}

func TestEndpoints_NotReady(t *testing.T) {
	srv := newTestServer(t, newEngine(t, false), nil, nil)

	for _, target := range []string{
		"/api/v1/recommendations?label=Moana",
		"/api/v1/categories",
		"/api/v1/categories/names",
		"/api/v1/random",
		"/api/v1/nodes/find?label=Moana",
	} {
		t.Run(target, func(t *testing.T) {
			rec, env := do(t, srv, http.MethodGet, target, "")
			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, ErrCodeGraphNotLoaded, env.Error.Code)
			assert.Contains(t, env.Error.Message, "network not read")
		})
	}
}

func TestCategories(t *testing.T) {
	srv := newTestServer(t, newEngine(t, true), nil, nil)

	rec, env := do(t, srv, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all LabelsData
	decodeData(t, env, &all)
	assert.Equal(t, 8, all.Count)
	assert.Contains(t, all.Labels, "m-Crime")
	assert.IsIncreasing(t, all.Labels)

	rec, env = do(t, srv, http.MethodGet, "/api/v1/categories/names", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var names LabelsData
	decodeData(t, env, &names)
	assert.Equal(t, []string{"Animation", "Crime"}, names.Labels)
	assert.Equal(t, 2, names.Count)
}

func TestRecommendations_FromCategoryNames(t *testing.T) {
	srv := newTestServer(t, newEngine(t, true), nil, nil)

	rec, env := do(t, srv, http.MethodGet, "/api/v1/categories/names", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var names LabelsData
	decodeData(t, env, &names)

	body, err := json.Marshal(map[string]interface{}{"labels": names.Labels, "verbose": true})
	require.NoError(t, err)
	rec, env = do(t, srv, http.MethodPost, "/api/v1/recommendations", string(body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var data RecommendationsData
	decodeData(t, env, &data)
	assert.ElementsMatch(t, []string{"Moana", "Frozen", "Coco", "Heat", "Up"}, data.Recommendations)
	require.NotNil(t, data.Metadata)
	assert.Equal(t, []string{"m-Animation", "m-Crime"}, data.Metadata.Labels)

	rec, env = do(t, srv, http.MethodGet, "/api/v1/recommendations?label=Crime&k=1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeData(t, env, &data)
	assert.Equal(t, []string{"Heat"}, data.Recommendations)
}

func TestRandom(t *testing.T) {
	srv := newTestServer(t, newEngine(t, true), nil, nil)
	items := []string{"Moana", "Frozen", "Coco", "Heat", "Up"}

	t.Run("default k", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodGet, "/api/v1/random", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var data RandomData
		decodeData(t, env, &data)
		assert.Len(t, data.Items, 2)
	})

	t.Run("whole catalog", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodGet, "/api/v1/random?k=5", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var data RandomData
		decodeData(t, env, &data)
		assert.ElementsMatch(t, items, data.Items)
	})

	t.Run("larger than catalog", func(t *testing.T) {
		rec, env := do(t, srv, http.MethodGet, "/api/v1/random?k=6", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, ErrCodeValidation, env.Error.Code)
	})

	t.Run("bad k", func(t *testing.T) {
		rec, _ := do(t, srv, http.MethodGet, "/api/v1/random?k=x", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFindNode(t *testing.T) {
	srv := newTestServer(t, newEngine(t, true), nil, nil)

	rec, env := do(t, srv, http.MethodGet, "/api/v1/nodes/find?label=Heat", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var node NodeData
	decodeData(t, env, &node)
	assert.Equal(t, NodeData{Label: "Heat", ID: 3}, node)

	rec, _ = do(t, srv, http.MethodGet, "/api/v1/nodes/find?label=Zootopia", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = do(t, srv, http.MethodGet, "/api/v1/nodes/find", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeValidation, env.Error.Code)
}

func TestGraphStatus(t *testing.T) {
	srv := newTestServer(t, newEngine(t, false), nil, nil)
	rec, env := do(t, srv, http.MethodGet, "/api/v1/graph/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var data GraphStatusData
	decodeData(t, env, &data)
	assert.False(t, data.Graph.Loaded)
	assert.Nil(t, data.Reload)

	w, err := watcher.New("graph.net", &fakeLoader{}, watcher.Options{}, zerolog.Nop())
	require.NoError(t, err)
	srv = newTestServer(t, newEngine(t, true), w, nil)
	rec, env = do(t, srv, http.MethodGet, "/api/v1/graph/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, env, &data)
	assert.True(t, data.Graph.Loaded)
	assert.Equal(t, 8, data.Graph.Nodes)
	assert.Equal(t, 5, data.Graph.Items)
	assert.Equal(t, "undirected-multi", data.Graph.Kind)
	require.NotNil(t, data.Reload)
	assert.Equal(t, "closed", data.Reload.Breaker)
}

type fakeLoader struct{}

func (fakeLoader) LoadFile(context.Context, string) error { return nil }

func TestReloadGraph(t *testing.T) {
	formatErr := fmt.Errorf("load movies_graph.net: %w", &pajek.FormatError{Line: 3, Reason: pajek.ReasonBadNodeLine})

	tests := []struct {
		name     string
		reloader Reloader
		wantCode int
		wantErr  string
	}{
		{"success", &fakeReloader{}, http.StatusOK, ""},
		{"not configured", nil, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"malformed graph", &fakeReloader{err: formatErr}, http.StatusUnprocessableEntity, ErrCodeInvalidGraph},
		{"breaker open", &fakeReloader{err: fmt.Errorf("watcher: reload skipped: %w", gobreaker.ErrOpenState)}, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"missing file", &fakeReloader{err: os.ErrNotExist}, http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, newEngine(t, true), tt.reloader, nil)
			rec, env := do(t, srv, http.MethodPost, "/api/v1/graph/reload", "")
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantErr == "" {
				assert.True(t, env.Success)
				return
			}
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}
}

func TestReloadGraph_ThroughWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies_graph.net")
	require.NoError(t, os.WriteFile(path, []byte(catalogGraph), 0o600))

	engine := newEngine(t, false)
	w, err := watcher.New(path, engine, watcher.Options{FailureThreshold: 3, BreakerTimeout: time.Minute}, zerolog.Nop())
	require.NoError(t, err)
	srv := newTestServer(t, engine, w, nil)

	rec, env := do(t, srv, http.MethodPost, "/api/v1/graph/reload", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var status recommend.Status
	decodeData(t, env, &status)
	assert.True(t, status.Loaded)
	assert.Equal(t, int64(1), status.Version)

	// A broken file is reported and the loaded graph stays in service.
	require.NoError(t, os.WriteFile(path, []byte("*Vertices 2\n1 \"A\"\n2 \"B\"\n*Matrix\n1 2\n"), 0o600))
	rec, env = do(t, srv, http.MethodPost, "/api/v1/graph/reload", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeInvalidGraph, env.Error.Code)
	assert.Equal(t, map[string]interface{}{"line": float64(4), "reason": pajek.ReasonUnknownSection}, env.Error.Details)

	assert.Equal(t, int64(1), engine.Status().Version)
	rec, _ = do(t, srv, http.MethodGet, "/api/v1/recommendations?label=Moana&k=1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealth(t *testing.T) {
	t.Run("before load", func(t *testing.T) {
		srv := newTestServer(t, newEngine(t, false), nil, nil)

		rec, env := do(t, srv, http.MethodGet, "/api/v1/health", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var data HealthData
		decodeData(t, env, &data)
		assert.Equal(t, "degraded", data.Status)
		assert.Equal(t, "test", data.Version)
		assert.False(t, data.GraphLoaded)

		rec, env = do(t, srv, http.MethodGet, "/api/v1/health/ready", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.False(t, env.Success)

		rec, _ = do(t, srv, http.MethodGet, "/api/v1/health/live", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("after load", func(t *testing.T) {
		srv := newTestServer(t, newEngine(t, true), nil, nil)

		rec, env := do(t, srv, http.MethodGet, "/api/v1/health", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var data HealthData
		decodeData(t, env, &data)
		assert.Equal(t, "healthy", data.Status)
		assert.Equal(t, int64(1), data.GraphVersion)

		rec, env = do(t, srv, http.MethodGet, "/api/v1/health/ready", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
	})
}
