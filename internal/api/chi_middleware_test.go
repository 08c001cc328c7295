// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package api

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChiMiddleware_DefaultConfig(t *testing.T) {
	m := NewChiMiddleware(nil)
	require.NotNil(t, m.config)
	assert.Empty(t, m.config.CORSAllowedOrigins)
	assert.Equal(t, 86400, m.config.CORSMaxAge)
	assert.Equal(t, 100, m.config.RateLimitRequests)
}

func TestRateLimit(t *testing.T) {
	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitRequests = 2
	mw.RateLimitWindow = time.Minute
	srv := newTestServer(t, newEngine(t, true), nil, mw)

	for i := 0; i < 2; i++ {
		rec, _ := do(t, srv, http.MethodGet, "/api/v1/categories", "")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec, env := do(t, srv, http.MethodGet, "/api/v1/categories", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeTooManyRequests, env.Error.Code)

	// Probes are exempt.
	rec, _ = do(t, srv, http.MethodGet, "/api/v1/health/live", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitRequests = 1
	mw.RateLimitDisabled = true
	srv := newTestServer(t, newEngine(t, true), nil, mw)

	for i := 0; i < 5; i++ {
		rec, _ := do(t, srv, http.MethodGet, "/api/v1/categories", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	mw := DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = []string{"https://films.example.com"}
	mw.RateLimitDisabled = true
	srv := newTestServer(t, newEngine(t, true), nil, mw)

	tests := []struct {
		origin    string
		wantAllow string
	}{
		{"https://films.example.com", "https://films.example.com"},
		{"https://evil.example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommendations", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantAllow, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRequestIDWithLogging_KeepsClientID(t *testing.T) {
	srv := newTestServer(t, newEngine(t, true), nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nodes/find?label=Zootopia", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, "client-supplied-id", rec.Header().Get("X-Request-ID"))
	assert.Contains(t, rec.Body.String(), `"request_id":"client-supplied-id"`)
}

func TestAPISecurityHeaders(t *testing.T) {
	srv := newTestServer(t, newEngine(t, true), nil, nil)

	rec, _ := do(t, srv, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Contains(t, rec.Header().Get("Strict-Transport-Security"), "max-age=31536000")
}

func TestRouter_NotFoundAndMethod(t *testing.T) {
	srv := newTestServer(t, newEngine(t, true), nil, nil)

	rec, env := do(t, srv, http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeNotFound, env.Error.Code)

	rec, env = do(t, srv, http.MethodDelete, "/api/v1/recommendations", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeMethodNotAllowed, env.Error.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, newEngine(t, true), nil, nil)

	rec, _ := do(t, srv, http.MethodGet, "/api/v1/recommendations?label=Moana", "")
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	out := httptest.NewRecorder()
	srv.ServeHTTP(out, req)
	require.Equal(t, http.StatusOK, out.Code)

	body := out.Body.String()
	assert.Contains(t, body, "filmgourmet_api_requests_total")
	assert.Contains(t, body, `endpoint="/api/v1/recommendations"`)
	assert.Contains(t, body, "filmgourmet_recommend_requests_total")
}

func TestCompression(t *testing.T) {
	srv := newTestServer(t, newEngine(t, true), nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"m-Animation"`)

	// Health probes stay uncompressed.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
}
